package models

import (
	"time"

	"github.com/waypartner/booking-service/internal/domain"
)

// RegisterVehicleRequest запрос на регистрацию автомобиля
type RegisterVehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber"`
	OwnerName          string `json:"ownerName"`
	Phone              string `json:"phone"`
	VehicleType        string `json:"vehicleType"` // two_wheeler | four_wheeler
}

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	RegistrationNumber string `json:"registrationNumber"`
	OwnerName          string `json:"ownerName"`
	Phone              string `json:"phone"`
	VehicleType        string `json:"vehicleType"`
	CoinBalance        int64  `json:"coinBalance"`
	TotalKmDriven      int64  `json:"totalKmDriven"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		RegistrationNumber: v.RegistrationNumber,
		OwnerName:          v.OwnerName,
		Phone:              v.Phone,
		VehicleType:        string(v.VehicleType),
		CoinBalance:        v.CoinBalance,
		TotalKmDriven:      v.TotalKmDriven,
		CreatedAt:          v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          v.UpdatedAt.Format(time.RFC3339),
	}
}
