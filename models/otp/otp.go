package otp

import (
	"time"

	"speaker-booking/models/user"
)

// OTP represents a one-time verification code issued at signup.
// A record is consumed by deletion; expired rows may linger in the table
// but every lookup treats them as absent.
type OTP struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      user.User `gorm:"foreignKey:UserID" json:"-"`
	OTPCode   string    `gorm:"column:otp_code;type:varchar(6);not null" json:"otp_code"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// IsExpired checks if the OTP has expired
func (o *OTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}

// IsValid checks if the OTP can still gate a verification
func (o *OTP) IsValid() bool {
	return !o.IsExpired()
}
