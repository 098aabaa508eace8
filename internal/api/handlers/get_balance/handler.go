package get_balance

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/waypartner/booking-service/internal/api/handlers"
	"github.com/waypartner/booking-service/internal/domain"
)

const (
	msgMissingRegistration = "registration number is required"
)

// BalanceResponse HTTP response model
type BalanceResponse struct {
	VehicleRegistration string `json:"vehicleRegistration"`
	CoinBalance         int64  `json:"coinBalance"`
	Redeemable          bool   `json:"redeemable"` // баланс достиг минимума для списания
}

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

// Handle GET /api/v1/vehicles/{registration}/balance
// Для незарегистрированного автомобиля возвращается нулевой баланс
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registration := vars["registration"]
	if registration == "" {
		h.logger.Warn("GET /vehicles/{registration}/balance - Missing registration number")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	balance, err := h.service.GetBalance(r.Context(), registration)
	if err != nil {
		h.logger.Error("GET /vehicles/{registration}/balance - Failed to get balance: registration=%s, error=%v",
			registration, err)
		handlers.RespondInternalError(w)
		return
	}

	response := BalanceResponse{
		VehicleRegistration: domain.NormalizeRegistration(registration),
		CoinBalance:         balance,
		Redeemable:          balance >= domain.MinRedeemableBalance,
	}

	h.logger.Info("GET /vehicles/{registration}/balance - Balance retrieved: registration=%s, balance=%d",
		response.VehicleRegistration, balance)
	handlers.RespondJSON(w, http.StatusOK, response)
}
