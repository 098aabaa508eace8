package register_vehicle

import (
	"context"

	"github.com/waypartner/booking-service/internal/service/vehicles/models"
)

type VehicleService interface {
	Register(ctx context.Context, req *models.RegisterVehicleRequest) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
