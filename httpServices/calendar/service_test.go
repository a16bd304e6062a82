package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, calendarHandler http.HandlerFunc) *Client {
	t.Helper()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "refresh_token", r.FormValue("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-access-token"}`))
	}))
	t.Cleanup(tokenSrv.Close)

	calSrv := httptest.NewServer(calendarHandler)
	t.Cleanup(calSrv.Close)

	t.Setenv("GOOGLE_CALENDAR_BASE_URL", calSrv.URL)
	t.Setenv("GOOGLE_TOKEN_URL", tokenSrv.URL)
	t.Setenv("GOOGLE_CALENDAR_ID", "primary")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh-token")

	return NewClient()
}

func TestCreateEventSendsOneHourEventWithAttendees(t *testing.T) {
	var captured event
	var capturedPath, capturedAuth, capturedQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedQuery = r.URL.RawQuery
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	})

	err := client.CreateEvent(context.Background(), "user@example.com", "speaker@example.com", "2026-01-15", "09:00")

	require.NoError(t, err)
	assert.Equal(t, "/calendars/primary/events", capturedPath)
	assert.Equal(t, "sendUpdates=all", capturedQuery)
	assert.Equal(t, "Bearer test-access-token", capturedAuth)
	assert.Equal(t, "2026-01-15T09:00:00", captured.Start.DateTime)
	assert.Equal(t, "2026-01-15T10:00:00", captured.End.DateTime)
	require.Len(t, captured.Attendees, 2)
	assert.Equal(t, "user@example.com", captured.Attendees[0].Email)
	assert.Equal(t, "speaker@example.com", captured.Attendees[1].Email)
}

func TestCreateEventRejectedByAPI(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := client.CreateEvent(context.Background(), "user@example.com", "speaker@example.com", "2026-01-15", "09:00")

	assert.Error(t, err)
}

func TestCreateEventTokenEndpointFailure(t *testing.T) {
	var calendarCalled bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calendarCalled = true
	})
	// override the working token server with a failing one
	failSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(failSrv.Close)
	client.tokenURL = failSrv.URL

	err := client.CreateEvent(context.Background(), "user@example.com", "speaker@example.com", "2026-01-15", "09:00")

	assert.Error(t, err)
	assert.False(t, calendarCalled, "calendar API must not be called when the token exchange fails")
}
