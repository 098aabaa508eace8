package create_booking

import (
	"context"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/internal/integrations/whatsapp"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByRegistration(ctx context.Context, registration string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}

// CoinLedger интерфейс сервиса Green Coins
// Списание монет идет только через Redeem - usecase не пишет баланс напрямую
type CoinLedger interface {
	Redeem(ctx context.Context, registration string, amount int64) (int64, error)
}

// Notifier интерфейс отправки уведомлений (fire-and-forget)
type Notifier interface {
	NotifyAsync(phone string, template whatsapp.TemplateKind, data map[string]string)
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
