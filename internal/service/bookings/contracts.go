package bookings

import (
	"context"
	"time"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/internal/integrations/whatsapp"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByVehicle(ctx context.Context, registration string) ([]*domain.Booking, error)
	GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// CoinLedger интерфейс сервиса Green Coins
// Аллокатор не трогает баланс напрямую - возврат монет идет через Credit
type CoinLedger interface {
	Credit(ctx context.Context, registration string, amount int64, note *string) (int64, error)
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
