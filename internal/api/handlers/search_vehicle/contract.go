package search_vehicle

import (
	"context"

	"github.com/waypartner/booking-service/internal/service/vehicles/models"
)

type VehicleService interface {
	Search(ctx context.Context, registration string) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
