package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	speakerModel "speaker-booking/models/speaker"
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewStore(db), mock
}

// profileUpsertPattern is the statement shape both the first and every
// repeated profile write must take: a single insert whose user_id conflict
// resolves to an update of the replaceable columns.
const profileUpsertPattern = `INSERT INTO "speaker_profiles" .*ON CONFLICT \("user_id"\) DO UPDATE SET ` +
	`"expertise"=.*"price_per_session"=.*"updated_at"=.* RETURNING "id"`

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_session_bookings_speaker_date_slot"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create booking: %w", unique)))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestUpsertSpeakerProfileRepeatUpdatesInPlace(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(profileUpsertPattern).
		WithArgs(int64(7), "Go concurrency", 100.0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	first := &speakerModel.SpeakerProfile{UserID: 7, Expertise: "Go concurrency", PricePerSession: 100}
	require.NoError(t, store.UpsertSpeakerProfile(first))
	assert.Equal(t, uint(1), first.ID)

	// The repeat write with different values goes through the same
	// conflict-resolving statement and lands on the existing row, so the
	// table never grows past one profile per speaker.
	mock.ExpectQuery(profileUpsertPattern).
		WithArgs(int64(7), "Distributed systems", 150.0, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	second := &speakerModel.SpeakerProfile{UserID: 7, Expertise: "Distributed systems", PricePerSession: 150}
	require.NoError(t, store.UpsertSpeakerProfile(second))
	assert.Equal(t, uint(1), second.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSpeakerProfileStoreError(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(profileUpsertPattern).
		WillReturnError(errors.New("connection reset"))

	err := store.UpsertSpeakerProfile(&speakerModel.SpeakerProfile{UserID: 7, Expertise: "Go", PricePerSession: 100})

	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
