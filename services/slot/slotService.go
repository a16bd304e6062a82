package slot

import (
	"errors"
	"fmt"
	"time"

	bookingModel "speaker-booking/models/booking"
)

// Reservation outcomes callers are expected to branch on.
var (
	ErrSlotTaken   = errors.New("time slot already booked")
	ErrInvalidSlot = errors.New("time slot outside bookable hours")
)

// Daily grid bounds, start-of-hour slots inclusive.
const (
	gridStartHour = 9
	gridEndHour   = 16
)

// BookingStore is the slice of persistence the allocator needs. The GORM
// implementation lives in the database package; tests substitute fakes.
type BookingStore interface {
	// BookedSlots returns the time slots already confirmed for the speaker
	// on the given date.
	BookedSlots(speakerID uint, date string) ([]string, error)
	// InsertBooking atomically inserts the booking. It must return
	// ErrSlotTaken when another confirmed booking already holds the same
	// speaker/date/slot triple, with no state change.
	InsertBooking(b *bookingModel.SessionBooking) error
}

// Service computes availability and performs conflict-checked reservation
type Service struct {
	store BookingStore
}

func NewSlotService(store BookingStore) *Service {
	return &Service{store: store}
}

// Grid returns the fixed daily slot grid, one slot per hour from 09:00 to
// 16:00, in ascending order.
func Grid() []string {
	slots := make([]string, 0, gridEndHour-gridStartHour+1)
	for h := gridStartHour; h <= gridEndHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// ValidateSlot rejects slots that are malformed, off the hour, outside the
// published grid, or not in canonical HH:00 form.
func ValidateSlot(slot string) error {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return ErrInvalidSlot
	}
	if t.Minute() != 0 || t.Hour() < gridStartHour || t.Hour() > gridEndHour {
		return ErrInvalidSlot
	}
	if slot != fmt.Sprintf("%02d:00", t.Hour()) {
		return ErrInvalidSlot
	}
	return nil
}

// ListAvailable returns the grid minus the slots already confirmed for the
// speaker on that date, in grid order. The result is recomputed on every
// call and the call has no side effects.
func (s *Service) ListAvailable(speakerID uint, date string) ([]string, error) {
	booked, err := s.store.BookedSlots(speakerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	grid := Grid()
	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}

// Reserve validates the slot and performs a single atomic check-and-insert.
// Conflict detection is delegated to the store's uniqueness guarantee, so
// two concurrent calls for the same speaker/date/slot triple resolve to
// exactly one created booking and one ErrSlotTaken.
func (s *Service) Reserve(speakerID, userID uint, date, timeSlot string) (*bookingModel.SessionBooking, error) {
	if err := ValidateSlot(timeSlot); err != nil {
		return nil, err
	}

	b := &bookingModel.SessionBooking{
		SpeakerID:   speakerID,
		UserID:      userID,
		BookingDate: date,
		TimeSlot:    timeSlot,
		Status:      bookingModel.BookingStatusConfirmed,
	}

	if err := s.store.InsertBooking(b); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}
