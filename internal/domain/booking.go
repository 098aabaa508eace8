package domain

import (
	"time"

	"github.com/waypartner/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of a time slot for a vehicle service
type Booking struct {
	ID                  int64
	VehicleRegistration string
	CustomerName        string
	CustomerPhone       string
	ServiceType         string
	ServiceDate         time.Time
	StartTime           types.TimeString
	CoinsRedeemed       int64
	Status              BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
// Отмена терминальна: повторное бронирование отменённой записи не допускается
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// HasRedeemedCoins returns true if coins were redeemed when the booking was created
func (b *Booking) HasRedeemedCoins() bool {
	return b.CoinsRedeemed > 0
}
