package booking

import (
	"time"

	"speaker-booking/models/user"
)

// SessionBooking represents a confirmed session between a participant and a
// speaker. The (speaker_id, booking_date, time_slot) triple is unique at the
// store level; the slot allocator relies on that index for conflict
// detection instead of a read-then-write.
type SessionBooking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for the speaker side of the session
	SpeakerID uint      `gorm:"not null;index" json:"speaker_id"`
	Speaker   user.User `gorm:"foreignKey:SpeakerID" json:"speaker,omitempty"`

	// Foreign key for the participant side of the session
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	BookingDate string        `gorm:"type:date;not null" json:"booking_date"`
	TimeSlot    string        `gorm:"type:varchar(5);not null" json:"time_slot"`
	Status      BookingStatus `gorm:"type:varchar(50);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
