package create_booking

import (
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Номер должен быть нормализован до вызова
func validateRequest(req *Request) error {
	if req.VehicleRegistration == "" {
		return fmt.Errorf("%w: vehicle registration is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: service type is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: service type is too long", ErrInvalidInput)
	}

	if req.VehicleType != nil && !domain.VehicleType(*req.VehicleType).IsValid() {
		return fmt.Errorf("%w: vehicle type must be two_wheeler or four_wheeler", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время должно попадать в фиксированную дневную сетку
	if !domain.IsValidSlotTime(req.StartTime) {
		return ErrInvalidTimeSlot
	}

	if req.CoinsToRedeem < 0 {
		return fmt.Errorf("%w: coinsToRedeem must not be negative", ErrInvalidInput)
	}

	return nil
}
