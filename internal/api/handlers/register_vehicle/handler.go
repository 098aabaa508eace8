package register_vehicle

import (
	"errors"
	"net/http"

	"github.com/waypartner/booking-service/internal/api/handlers"
	"github.com/waypartner/booking-service/internal/service/vehicles"
	"github.com/waypartner/booking-service/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "registration number, owner name, phone and vehicle type are required"
	msgVehicleExists      = "vehicle with this registration number is already registered"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Validation failed: registration=%s, error=%v", req.RegistrationNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vehicles.ErrVehicleExists):
			h.logger.Warn("POST /vehicles - Vehicle already exists: registration=%s", req.RegistrationNumber)
			handlers.RespondConflict(w, msgVehicleExists)

		default:
			h.logger.Error("POST /vehicles - Failed to register vehicle: registration=%s, error=%v",
				req.RegistrationNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle registered successfully: registration=%s", vehicle.RegistrationNumber)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}
