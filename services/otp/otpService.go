package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	otpModel "speaker-booking/models/otp"
)

// ErrInvalidOTP is returned for every verification miss: wrong code,
// expired code, or unknown email. Keeping the error undifferentiated avoids
// leaking which accounts exist.
var ErrInvalidOTP = errors.New("invalid or expired OTP")

// otpValidity is how long an issued code gates verification.
const otpValidity = time.Hour

// Store is the slice of persistence the OTP lifecycle needs. The GORM
// implementation lives in the database package; tests substitute fakes.
type Store interface {
	CreateOTP(record *otpModel.OTP) error
	// LookupByEmail returns the unexpired OTP whose owning user has the
	// given email and whose code matches exactly, or nil when no such
	// record exists.
	LookupByEmail(email, code string) (*otpModel.OTP, error)
	// ConsumeOTP deletes the record; consumption is by deletion, not a flag.
	ConsumeOTP(id uint) error
	SetUserVerified(userID uint) error
	DeleteExpiredOTPs() error
}

// Service handles OTP operations
type Service struct {
	store Store
}

// NewOTPService creates a new OTP service
func NewOTPService(store Store) *Service {
	return &Service{store: store}
}

// GenerateCode generates a random 6-digit code, uniform over
// [100000, 999999].
func (s *Service) GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue generates a code for the user and stores it with a one hour expiry.
// Earlier codes for the same user are left untouched, so more than one code
// can be live at a time; product has not signed off on invalidating them.
func (s *Service) Issue(userID uint) (string, error) {
	code, err := s.GenerateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}

	record := &otpModel.OTP{
		UserID:    userID,
		OTPCode:   code,
		ExpiresAt: time.Now().Add(otpValidity),
	}
	if err := s.store.CreateOTP(record); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return code, nil
}

// Verify flips the owning user's verification flag and consumes the code.
// The flag flip is idempotent; every miss surfaces as the same
// ErrInvalidOTP.
func (s *Service) Verify(email, code string) error {
	record, err := s.store.LookupByEmail(email, code)
	if err != nil {
		return fmt.Errorf("failed to look up OTP: %w", err)
	}
	if record == nil || record.IsExpired() {
		return ErrInvalidOTP
	}

	if err := s.store.SetUserVerified(record.UserID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if err := s.store.ConsumeOTP(record.ID); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	return nil
}

// CleanupExpired removes expired OTP records from the database
func (s *Service) CleanupExpired() error {
	return s.store.DeleteExpiredOTPs()
}
