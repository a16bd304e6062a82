package speaker

import (
	"time"

	"speaker-booking/models/user"
)

// SpeakerProfile holds the public listing data for a speaker. Exactly one
// profile exists per speaker user; the upsert replaces it in place.
type SpeakerProfile struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"not null;unique" json:"user_id"`
	User            user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Expertise       string    `gorm:"type:text;not null" json:"expertise"`
	PricePerSession float64   `gorm:"type:decimal(10,2);not null" json:"price_per_session"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
