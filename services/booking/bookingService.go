package booking

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"speaker-booking/logger"
	bookingModel "speaker-booking/models/booking"
	userModel "speaker-booking/models/user"
	"speaker-booking/services/slot"
)

// ErrNotificationFailed reports a degraded success: the booking exists, but
// at least one confirmation side effect was not delivered. Callers must not
// retry the booking itself.
var ErrNotificationFailed = errors.New("booking confirmed but notification delivery incomplete")

// Notifier delivers a booking confirmation out of band. The mail and
// calendar clients both satisfy it.
type Notifier interface {
	NotifyBooking(ctx context.Context, userEmail, speakerEmail, date, timeSlot string) error
}

// Service sequences a reservation with its confirmation side effects
type Service struct {
	slots     *slot.Service
	notifiers []Notifier
}

func NewBookingService(slots *slot.Service, notifiers ...Notifier) *Service {
	return &Service{slots: slots, notifiers: notifiers}
}

// Book reserves the slot and then fires the confirmation side effects
// concurrently. Conflict and invalid-slot outcomes are returned as-is with
// no side effects attempted. A notification failure is reported as
// ErrNotificationFailed alongside the created booking; the reservation is
// never rolled back.
func (s *Service) Book(ctx context.Context, speaker, participant *userModel.User, date, timeSlot string) (*bookingModel.SessionBooking, error) {
	created, err := s.slots.Reserve(speaker.ID, participant.ID, date, timeSlot)
	if err != nil {
		return nil, err
	}

	// Plain Group rather than WithContext: the notifications are
	// independent, one failing must not cancel the other.
	var g errgroup.Group
	for _, n := range s.notifiers {
		n := n
		g.Go(func() error {
			return n.NotifyBooking(ctx, participant.Email, speaker.Email, date, timeSlot)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Booking notification failed", err)
		return created, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return created, nil
}
