package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypartner/booking-service/internal/domain"
	bookingRepo "github.com/waypartner/booking-service/internal/infra/storage/booking"
	"github.com/waypartner/booking-service/internal/integrations/whatsapp"
	"github.com/waypartner/booking-service/pkg/types"
)

// fakeBookingRepo in-memory репозиторий бронирований
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByVehicle(_ context.Context, registration string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.VehicleRegistration == registration {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetConfirmedByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ServiceDate.Equal(date) && b.Status == domain.StatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

// Cancel повторяет семантику условного UPDATE: переход выполняется
// только из confirmed, повторный вызов возвращает false
func (r *fakeBookingRepo) Cancel(_ context.Context, id int64) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusConfirmed {
		return false, nil
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	return true, nil
}

// fakeCoinLedger считает возвраты монет
type fakeCoinLedger struct {
	credits map[string]int64
	calls   int
}

func (l *fakeCoinLedger) Credit(_ context.Context, registration string, amount int64, _ *string) (int64, error) {
	if l.credits == nil {
		l.credits = make(map[string]int64)
	}
	l.credits[registration] += amount
	l.calls++
	return l.credits[registration], nil
}

// fakeNotifier запоминает отправленные уведомления
type fakeNotifier struct {
	sent []whatsapp.TemplateKind
}

func (n *fakeNotifier) NotifyAsync(_ string, template whatsapp.TemplateKind, _ map[string]string) {
	n.sent = append(n.sent, template)
}

type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id int64, coinsRedeemed int64) *domain.Booking {
	return &domain.Booking{
		ID:                  id,
		VehicleRegistration: "TS09EA1234",
		CustomerName:        "Ravi Kumar",
		CustomerPhone:       "+919876543210",
		ServiceType:         "general service",
		ServiceDate:         time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		StartTime:           types.TimeString("10:00"),
		CoinsRedeemed:       coinsRedeemed,
		Status:              domain.StatusConfirmed,
	}
}

func TestService_Cancel_RefundsRedeemedCoins(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 100))
	ledger := &fakeCoinLedger{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, ledger, notifier, &fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.NotNil(t, repo.bookings[1].CancelledAt)
	assert.Equal(t, int64(100), ledger.credits["TS09EA1234"])
	assert.Equal(t, []whatsapp.TemplateKind{whatsapp.TemplateCancellationNotice}, notifier.sent)
}

func TestService_Cancel_NoRefundWithoutRedeemedCoins(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 0))
	ledger := &fakeCoinLedger{}
	svc := NewService(repo, ledger, &fakeNotifier{}, &fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.Zero(t, ledger.calls)
}

func TestService_Cancel_RepeatIsNoOp(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 100))
	ledger := &fakeCoinLedger{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, ledger, notifier, &fakeTxManager{}, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	require.NoError(t, svc.Cancel(context.Background(), 1))
	require.NoError(t, svc.Cancel(context.Background(), 1))

	// Возврат монет выполнен ровно один раз, уведомление тоже
	assert.Equal(t, 1, ledger.calls)
	assert.Equal(t, int64(100), ledger.credits["TS09EA1234"])
	assert.Len(t, notifier.sent, 1)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakeCoinLedger{}, &fakeNotifier{}, &fakeTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(7, 0))
	svc := NewService(repo, &fakeCoinLedger{}, &fakeNotifier{}, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "TS09EA1234", resp.VehicleRegistration)
	assert.Equal(t, "2025-08-20", resp.ServiceDate)
	assert.Equal(t, "10:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetVehicleBookings_NormalizesRegistration(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking(1, 0))
	svc := NewService(repo, &fakeCoinLedger{}, &fakeNotifier{}, &fakeTxManager{}, nopLogger{})

	resp, err := svc.GetVehicleBookings(context.Background(), "ts 09 ea 1234")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
