package models

import (
	"time"

	"github.com/waypartner/booking-service/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                  int64  `json:"id"`
	VehicleRegistration string `json:"vehicleRegistration"`
	CustomerName        string `json:"customerName"`
	CustomerPhone       string `json:"customerPhone"`
	ServiceType         string `json:"serviceType"`
	ServiceDate         string `json:"serviceDate"` // "2025-08-20"
	StartTime           string `json:"startTime"`   // "10:00"
	CoinsRedeemed       int64  `json:"coinsRedeemed"`
	Status              string `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                  b.ID,
		VehicleRegistration: b.VehicleRegistration,
		CustomerName:        b.CustomerName,
		CustomerPhone:       b.CustomerPhone,
		ServiceType:         b.ServiceType,
		ServiceDate:         b.ServiceDate.Format(domain.DateFormat),
		StartTime:           b.StartTime.String(),
		CoinsRedeemed:       b.CoinsRedeemed,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
