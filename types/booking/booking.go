package booking

import (
	"fmt"
	"regexp"

	"github.com/jinzhu/now"
)

// dateOnly gates ParseDate: jinzhu/now also accepts time-only strings and
// would resolve them against today's date, so anything without an explicit
// year-month-day component is rejected up front.
var dateOnly = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)

// BookSessionRequest represents the request payload for reserving a session
type BookSessionRequest struct {
	SpeakerID uint   `json:"speaker_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
}

func (r BookSessionRequest) Validate() error {
	if r.SpeakerID == 0 {
		return fmt.Errorf("speaker_id is required")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if r.TimeSlot == "" {
		return fmt.Errorf("time_slot is required")
	}
	return nil
}

// ParsedDate normalizes the requested date to its canonical YYYY-MM-DD form.
// Temporal validity (past dates and so on) is not checked here.
func (r BookSessionRequest) ParsedDate() (string, error) {
	return ParseDate(r.Date)
}

// ParseDate normalizes a YYYY-MM-DD date string to its canonical zero-padded
// form. Inputs with no date component fail instead of defaulting to today.
func ParseDate(date string) (string, error) {
	if !dateOnly.MatchString(date) {
		return "", fmt.Errorf("date must be in YYYY-MM-DD form")
	}
	t, err := now.Parse(date)
	if err != nil {
		return "", fmt.Errorf("date must be a valid calendar date: %w", err)
	}
	return t.Format("2006-01-02"), nil
}
