package get_coin_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/waypartner/booking-service/internal/api/handlers"
	"github.com/waypartner/booking-service/internal/service/coins"
)

const (
	msgMissingRegistration = "registration number is required"
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

// Handle GET /api/v1/vehicles/{registration}/coins/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("GET /vehicles/{registration}/coins/history - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	entries, err := h.service.GetHistory(r.Context(), registration)
	if err != nil {
		switch {
		case errors.Is(err, coins.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{registration}/coins/history - Vehicle not found: registration=%s", registration)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{registration}/coins/history - Failed to get history: registration=%s, error=%v",
				registration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainTransactions(entries)

	h.logger.Info("GET /vehicles/{registration}/coins/history - Retrieved %d transactions: registration=%s",
		len(response.Transactions), registration)
	handlers.RespondJSON(w, http.StatusOK, response)
}
