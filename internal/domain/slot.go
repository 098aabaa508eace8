package domain

import "github.com/waypartner/booking-service/pkg/types"

// SlotStatus represents the occupancy of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// IsValidSlotTime проверяет, что время входит в фиксированную дневную сетку
func IsValidSlotTime(startTime types.TimeString) bool {
	for _, t := range DailySlotTimes {
		if string(startTime) == t {
			return true
		}
	}
	return false
}
