package database

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingModel "speaker-booking/models/booking"
	otpModel "speaker-booking/models/otp"
	speakerModel "speaker-booking/models/speaker"
	userModel "speaker-booking/models/user"
	"speaker-booking/services/slot"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint rejection.
const uniqueViolation = "23505"

// Store adapts GORM to the narrow interfaces the core services consume.
// It implements slot.BookingStore and otp.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// IsUniqueViolation reports whether err is the store rejecting a duplicate
// row via a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// BookedSlots returns the confirmed time slots for a speaker on a date,
// in grid order.
func (s *Store) BookedSlots(speakerID uint, date string) ([]string, error) {
	var slots []string
	err := s.db.Model(&bookingModel.SessionBooking{}).
		Where("speaker_id = ? AND booking_date = ? AND status = ?",
			speakerID, date, bookingModel.BookingStatusConfirmed).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// InsertBooking inserts the booking in a single statement. The unique index
// on (speaker_id, booking_date, time_slot) makes the check-and-insert
// atomic; a rejected duplicate surfaces as slot.ErrSlotTaken.
func (s *Store) InsertBooking(b *bookingModel.SessionBooking) error {
	if err := s.db.Create(b).Error; err != nil {
		if IsUniqueViolation(err) {
			return slot.ErrSlotTaken
		}
		return err
	}
	return nil
}

// UpsertSpeakerProfile creates the speaker's profile or replaces its values
// in place. The unique constraint on user_id holds it to one row per speaker,
// so repeating the call leaves that single row reflecting the latest values.
func (s *Store) UpsertSpeakerProfile(profile *speakerModel.SpeakerProfile) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"expertise", "price_per_session", "updated_at"}),
	}).Create(profile).Error
}

// CreateOTP stores a freshly issued code.
func (s *Store) CreateOTP(record *otpModel.OTP) error {
	return s.db.Create(record).Error
}

// LookupByEmail finds the newest unexpired code matching the owning user's
// email. Expired rows are filtered here, so stale rows in the table are
// indistinguishable from absent ones.
func (s *Store) LookupByEmail(email, code string) (*otpModel.OTP, error) {
	var record otpModel.OTP
	err := s.db.Joins("JOIN users ON users.id = otps.user_id").
		Where("users.email = ? AND otps.otp_code = ? AND otps.expires_at > ?",
			email, code, time.Now()).
		Order("otps.created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ConsumeOTP deletes the used record.
func (s *Store) ConsumeOTP(id uint) error {
	return s.db.Delete(&otpModel.OTP{}, id).Error
}

// SetUserVerified flips the verification flag. Setting it when already set
// is a no-op.
func (s *Store) SetUserVerified(userID uint) error {
	return s.db.Model(&userModel.User{}).
		Where("id = ?", userID).
		Update("is_verified", true).Error
}

// DeleteExpiredOTPs removes rows whose expiry has elapsed.
func (s *Store) DeleteExpiredOTPs() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&otpModel.OTP{}).Error
}
