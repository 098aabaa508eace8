package add_kilometers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/waypartner/booking-service/internal/api/handlers"
	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/internal/service/coins"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgMissingRegistration = "registration number is required"
	msgInvalidKilometers   = "kilometers must be between 1 and 10000"
	msgVehicleNotFound     = "vehicle not found"
)

type Handler struct {
	service CoinService
	logger  Logger
}

func NewHandler(service CoinService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{registration}/kilometers
// Начисляет монеты за пробег по курсу 1 км = 1 монета
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("POST /vehicles/{registration}/kilometers - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	var req AddKilometersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{registration}/kilometers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	balance, err := h.service.AddKilometers(r.Context(), registration, req.Kilometers)
	if err != nil {
		switch {
		case errors.Is(err, coins.ErrInvalidKilometers):
			h.logger.Warn("POST /vehicles/{registration}/kilometers - Invalid kilometers: registration=%s, km=%d",
				registration, req.Kilometers)
			handlers.RespondBadRequest(w, msgInvalidKilometers)

		case errors.Is(err, coins.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{registration}/kilometers - Vehicle not found: registration=%s", registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /vehicles/{registration}/kilometers - Failed to add kilometers: registration=%s, error=%v",
				registration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := AddKilometersResponse{
		VehicleRegistration: domain.NormalizeRegistration(registration),
		CoinsEarned:         req.Kilometers,
		CoinBalance:         balance,
	}

	h.logger.Info("POST /vehicles/{registration}/kilometers - Coins earned: registration=%s, km=%d, balance=%d",
		response.VehicleRegistration, req.Kilometers, balance)
	handlers.RespondJSON(w, http.StatusOK, response)
}
