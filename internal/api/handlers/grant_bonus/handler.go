package grant_bonus

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
	msgInvalidAmount       = "bonus amount must be positive"
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

// Handle POST /api/v1/vehicles/{registration}/coins/bonus
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("POST /vehicles/{registration}/coins/bonus - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	var req GrantBonusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{registration}/coins/bonus - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	balance, err := h.service.GrantBonus(r.Context(), registration, req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, coins.ErrInvalidAmount):
			h.logger.Warn("POST /vehicles/{registration}/coins/bonus - Invalid amount: registration=%s, amount=%d",
				registration, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, coins.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{registration}/coins/bonus - Vehicle not found: registration=%s", registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /vehicles/{registration}/coins/bonus - Failed to grant bonus: registration=%s, error=%v",
				registration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := GrantBonusResponse{
		VehicleRegistration: domain.NormalizeRegistration(registration),
		CoinsGranted:        req.Amount,
		CoinBalance:         balance,
	}

	h.logger.Info("POST /vehicles/{registration}/coins/bonus - Bonus granted: registration=%s, amount=%d, balance=%d",
		response.VehicleRegistration, req.Amount, balance)
	handlers.RespondJSON(w, http.StatusOK, response)
}
