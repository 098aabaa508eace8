package create_booking

import (
	"time"

	"github.com/waypartner/booking-service/internal/domain"
	createBooking "github.com/waypartner/booking-service/internal/usecase/create_booking"
	"github.com/waypartner/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleRegistration string  `json:"vehicleRegistration"`
	CustomerName        string  `json:"customerName"`
	CustomerPhone       string  `json:"customerPhone"`
	ServiceType         string  `json:"serviceType"`
	VehicleType         *string `json:"vehicleType,omitempty"` // для автосоздания незарегистрированного автомобиля
	ServiceDate         string  `json:"serviceDate"`           // "2025-08-20"
	StartTime           string  `json:"startTime"`             // "10:00"
	CoinsToRedeem       int64   `json:"coinsToRedeem"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  int64  `json:"id"`
	VehicleRegistration string `json:"vehicleRegistration"`
	CustomerName        string `json:"customerName"`
	CustomerPhone       string `json:"customerPhone"`
	ServiceType         string `json:"serviceType"`
	ServiceDate         string `json:"serviceDate"`
	StartTime           string `json:"startTime"`
	CoinsRedeemed       int64  `json:"coinsRedeemed"`
	CoinBalance         int64  `json:"coinBalance"`
	Status              string `json:"status"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	serviceDate, err := time.Parse(domain.DateFormat, r.ServiceDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		VehicleRegistration: r.VehicleRegistration,
		CustomerName:        r.CustomerName,
		CustomerPhone:       r.CustomerPhone,
		ServiceType:         r.ServiceType,
		VehicleType:         r.VehicleType,
		Date:                serviceDate,
		StartTime:           startTime,
		CoinsToRedeem:       r.CoinsToRedeem,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                  resp.ID,
		VehicleRegistration: resp.VehicleRegistration,
		CustomerName:        resp.CustomerName,
		CustomerPhone:       resp.CustomerPhone,
		ServiceType:         resp.ServiceType,
		ServiceDate:         resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		CoinsRedeemed:       resp.CoinsRedeemed,
		CoinBalance:         resp.CoinBalance,
		Status:              resp.Status,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}
}
