package user

import (
	"time"
)

// UserType distinguishes session participants from speakers.
type UserType string

const (
	UserTypeUser    UserType = "user"
	UserTypeSpeaker UserType = "speaker"
)

// IsValid checks if the user type is one of the supported roles
func (ut UserType) IsValid() bool {
	switch ut {
	case UserTypeUser, UserTypeSpeaker:
		return true
	default:
		return false
	}
}

func (ut UserType) String() string {
	return string(ut)
}

// User model for both session participants and speakers
type User struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid       string   `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	FirstName  string   `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string   `gorm:"type:varchar(255);not null" json:"last_name"`
	Email      string   `gorm:"type:varchar(255);not null;unique" json:"email"`
	Password   string   `gorm:"type:varchar(255);not null" json:"-"`
	UserType   UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	IsVerified bool     `gorm:"type:bool;default:false" json:"is_verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
