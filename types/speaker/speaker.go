package speaker

import (
	"fmt"
	"strings"
)

// ProfileUpsertRequest represents the request payload for creating or
// replacing a speaker profile
type ProfileUpsertRequest struct {
	Expertise       string  `json:"expertise"`
	PricePerSession float64 `json:"price_per_session"`
}

func (r ProfileUpsertRequest) Validate() error {
	if strings.TrimSpace(r.Expertise) == "" {
		return fmt.Errorf("expertise is required")
	}
	if r.PricePerSession < 0 {
		return fmt.Errorf("price_per_session must not be negative")
	}
	return nil
}

// SpeakerInfo is the public listing row joined from users and profiles
type SpeakerInfo struct {
	UserID          uint    `json:"user_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Expertise       string  `json:"expertise"`
	PricePerSession float64 `json:"price_per_session"`
}
