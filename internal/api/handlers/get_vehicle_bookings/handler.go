package get_vehicle_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/waypartner/booking-service/internal/api/handlers"
)

const (
	msgMissingRegistration = "registration number is required"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{registration}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("GET /vehicles/{registration}/bookings - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	result, err := h.service.GetVehicleBookings(r.Context(), registration)
	if err != nil {
		h.logger.Error("GET /vehicles/{registration}/bookings - Failed to get bookings: registration=%s, error=%v",
			registration, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles/{registration}/bookings - Retrieved %d bookings: registration=%s",
		len(result.Bookings), registration)
	handlers.RespondJSON(w, http.StatusOK, result)
}
