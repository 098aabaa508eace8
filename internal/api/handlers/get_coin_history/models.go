package get_coin_history

import (
	"time"

	"github.com/waypartner/booking-service/internal/domain"
)

// CoinTransactionResponse запись журнала операций с монетами
type CoinTransactionResponse struct {
	ID                  int64   `json:"id"`
	VehicleRegistration string  `json:"vehicleRegistration"`
	Delta               int64   `json:"delta"` // положительное - начисление, отрицательное - списание
	Reason              string  `json:"reason"`
	Note                *string `json:"note,omitempty"`
	CreatedAt           string  `json:"createdAt"`
}

// CoinHistoryResponse HTTP response model
type CoinHistoryResponse struct {
	Transactions []CoinTransactionResponse `json:"transactions"`
}

// FromDomainTransactions конвертирует записи журнала в HTTP response
func FromDomainTransactions(entries []*domain.CoinTransaction) *CoinHistoryResponse {
	resp := &CoinHistoryResponse{
		Transactions: make([]CoinTransactionResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		resp.Transactions = append(resp.Transactions, CoinTransactionResponse{
			ID:                  entry.ID,
			VehicleRegistration: entry.VehicleRegistration,
			Delta:               entry.Delta,
			Reason:              string(entry.Reason),
			Note:                entry.Note,
			CreatedAt:           entry.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
