package search_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/waypartner/booking-service/internal/api/handlers"
	"github.com/waypartner/booking-service/internal/service/vehicles"
)

const (
	msgMissingRegistration = "registration number is required"
	msgVehicleNotFound     = "vehicle not found"
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

// Handle GET /api/v1/vehicles/{registration}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("GET /vehicles/{registration} - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	vehicle, err := h.service.Search(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{registration} - Vehicle not found: registration=%s", registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{registration} - Invalid registration: %s", registration)
			handlers.RespondBadRequest(w, msgMissingRegistration)

		default:
			h.logger.Error("GET /vehicles/{registration} - Failed to search vehicle: registration=%s, error=%v",
				registration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{registration} - Vehicle found: registration=%s", vehicle.RegistrationNumber)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
