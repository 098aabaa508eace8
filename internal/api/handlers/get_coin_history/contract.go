package get_coin_history

import (
	"context"

	"github.com/waypartner/booking-service/internal/domain"
)

type CoinService interface {
	GetHistory(ctx context.Context, registration string) ([]*domain.CoinTransaction, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
