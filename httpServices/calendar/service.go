package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client talks to the Google Calendar REST API using a pre-provisioned
// OAuth refresh token.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	refreshToken string
	calendarID   string
}

func NewClient() *Client {
	baseURL := os.Getenv("GOOGLE_CALENDAR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/calendar/v3"
	}
	tokenURL := os.Getenv("GOOGLE_TOKEN_URL")
	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	if calendarID == "" {
		calendarID = "primary"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      strings.TrimRight(baseURL, "/"),
		tokenURL:     tokenURL,
		clientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		clientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		refreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		calendarID:   calendarID,
	}
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type attendee struct {
	Email string `json:"email"`
}

type event struct {
	Summary     string     `json:"summary"`
	Description string     `json:"description"`
	Start       eventTime  `json:"start"`
	End         eventTime  `json:"end"`
	Attendees   []attendee `json:"attendees"`
}

// accessToken exchanges the refresh token for a short-lived access token.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"refresh_token": {c.refreshToken},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("token endpoint returned non-OK status: " + resp.Status)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("token endpoint returned empty access token")
	}
	return tokenResp.AccessToken, nil
}

// CreateEvent inserts a one hour calendar event covering the booked slot
// and invites both attendees.
func (c *Client) CreateEvent(ctx context.Context, userEmail, speakerEmail, date, timeSlot string) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain calendar access token: %w", err)
	}

	start, err := time.Parse("15:04", timeSlot)
	if err != nil {
		return fmt.Errorf("invalid time slot %q: %w", timeSlot, err)
	}

	ev := event{
		Summary:     "Speaker Session",
		Description: "Booked speaker session",
		Start: eventTime{
			DateTime: fmt.Sprintf("%sT%s:00", date, timeSlot),
			TimeZone: "UTC",
		},
		End: eventTime{
			DateTime: fmt.Sprintf("%sT%02d:00:00", date, start.Hour()+1),
			TimeZone: "UTC",
		},
		Attendees: []attendee{
			{Email: userEmail},
			{Email: speakerEmail},
		},
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	endpoint := c.baseURL + "/calendars/" + url.PathEscape(c.calendarID) + "/events?sendUpdates=all"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return errors.New("calendar API returned non-OK status: " + resp.Status)
	}
	return nil
}

// NotifyBooking satisfies the booking orchestrator's Notifier interface.
func (c *Client) NotifyBooking(ctx context.Context, userEmail, speakerEmail, date, timeSlot string) error {
	return c.CreateEvent(ctx, userEmail, speakerEmail, date, timeSlot)
}
