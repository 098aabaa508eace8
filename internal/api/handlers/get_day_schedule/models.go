package get_day_schedule

import (
	"github.com/waypartner/booking-service/internal/domain"
	getDaySchedule "github.com/waypartner/booking-service/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	Date  string         `json:"date"` // "2025-08-20"
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse слот дневной сетки
type SlotResponse struct {
	StartTime string               `json:"startTime"` // "10:00"
	Status    string               `json:"status"`    // available | booked
	Booking   *SlotBookingResponse `json:"booking,omitempty"`
}

// SlotBookingResponse бронирование, занявшее слот
type SlotBookingResponse struct {
	ID                  int64  `json:"id"`
	VehicleRegistration string `json:"vehicleRegistration"`
	CustomerName        string `json:"customerName"`
	CustomerPhone       string `json:"customerPhone"`
	ServiceType         string `json:"serviceType"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	out := &DayScheduleResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		slotResp := SlotResponse{
			StartTime: slot.StartTime.String(),
			Status:    string(slot.Status),
		}

		if slot.Booking != nil {
			slotResp.Booking = &SlotBookingResponse{
				ID:                  slot.Booking.ID,
				VehicleRegistration: slot.Booking.VehicleRegistration,
				CustomerName:        slot.Booking.CustomerName,
				CustomerPhone:       slot.Booking.CustomerPhone,
				ServiceType:         slot.Booking.ServiceType,
			}
		}

		out.Slots = append(out.Slots, slotResp)
	}

	return out
}
