package coins

import (
	"context"

	"github.com/waypartner/booking-service/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error)
	AddCoins(ctx context.Context, registration string, amount int64) (int64, error)
	DeductCoins(ctx context.Context, registration string, amount int64) (int64, error)
	AddKilometers(ctx context.Context, registration string, km int64) (int64, error)
}

// LedgerRepository интерфейс репозитория журнала монет
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.CoinTransaction) (*domain.CoinTransaction, error)
	GetByVehicle(ctx context.Context, registration string) ([]*domain.CoinTransaction, error)
	SumByVehicle(ctx context.Context, registration string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
