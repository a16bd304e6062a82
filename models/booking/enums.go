package booking

// BookingStatus is the lifecycle state of a session booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusCancelled is declared for cancellation flows; nothing
	// produces it yet.
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Helper methods for BookingStatus
func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusConfirmed,
		BookingStatusCancelled,
	}
}
