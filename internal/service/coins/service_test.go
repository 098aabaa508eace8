package coins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypartner/booking-service/internal/domain"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
	"github.com/waypartner/booking-service/pkg/ptr"
)

// fakeVehicleRepo in-memory репозиторий автомобилей для тестов
type fakeVehicleRepo struct {
	vehicles map[string]*domain.Vehicle
}

func newFakeVehicleRepo(vehicles ...*domain.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
	for _, v := range vehicles {
		repo.vehicles[v.RegistrationNumber] = v
	}
	return repo
}

func (r *fakeVehicleRepo) GetByRegistration(_ context.Context, registration string) (*domain.Vehicle, error) {
	v, ok := r.vehicles[registration]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

func (r *fakeVehicleRepo) AddCoins(_ context.Context, registration string, amount int64) (int64, error) {
	v, ok := r.vehicles[registration]
	if !ok {
		return 0, vehicleRepo.ErrVehicleNotFound
	}
	v.CoinBalance += amount
	return v.CoinBalance, nil
}

func (r *fakeVehicleRepo) DeductCoins(_ context.Context, registration string, amount int64) (int64, error) {
	v, ok := r.vehicles[registration]
	if !ok {
		return 0, vehicleRepo.ErrVehicleNotFound
	}
	if v.CoinBalance < amount {
		return 0, vehicleRepo.ErrInsufficientCoins
	}
	v.CoinBalance -= amount
	return v.CoinBalance, nil
}

func (r *fakeVehicleRepo) AddKilometers(_ context.Context, registration string, km int64) (int64, error) {
	v, ok := r.vehicles[registration]
	if !ok {
		return 0, vehicleRepo.ErrVehicleNotFound
	}
	v.TotalKmDriven += km
	v.CoinBalance += km
	return v.CoinBalance, nil
}

// fakeLedgerRepo append-only журнал в памяти
type fakeLedgerRepo struct {
	entries []*domain.CoinTransaction
}

func (r *fakeLedgerRepo) Append(_ context.Context, entry *domain.CoinTransaction) (*domain.CoinTransaction, error) {
	entry.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeLedgerRepo) GetByVehicle(_ context.Context, registration string) ([]*domain.CoinTransaction, error) {
	out := make([]*domain.CoinTransaction, 0)
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].VehicleRegistration == registration {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *fakeLedgerRepo) SumByVehicle(_ context.Context, registration string) (int64, error) {
	var sum int64
	for _, entry := range r.entries {
		if entry.VehicleRegistration == registration {
			sum += entry.Delta
		}
	}
	return sum, nil
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// nopLogger заглушка логгера
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(vehicles ...*domain.Vehicle) (*Service, *fakeVehicleRepo, *fakeLedgerRepo) {
	repo := newFakeVehicleRepo(vehicles...)
	ledger := &fakeLedgerRepo{}
	svc := NewService(repo, ledger, &fakeTxManager{}, nopLogger{})
	return svc, repo, ledger
}

func testVehicle(balance int64) *domain.Vehicle {
	return &domain.Vehicle{
		RegistrationNumber: "TS09EA1234",
		OwnerName:          "Ravi Kumar",
		Phone:              "+919876543210",
		VehicleType:        domain.TypeFourWheeler,
		CoinBalance:        balance,
	}
}

func TestService_GetBalance(t *testing.T) {
	svc, _, _ := newTestService(testVehicle(250))

	balance, err := svc.GetBalance(context.Background(), "ts09ea1234")
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)
}

func TestService_GetBalance_UnknownVehicleIsZero(t *testing.T) {
	svc, _, _ := newTestService()

	balance, err := svc.GetBalance(context.Background(), "KA01AB9999")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestService_Earn(t *testing.T) {
	svc, repo, ledger := newTestService(testVehicle(100))

	balance, err := svc.Earn(context.Background(), "TS09EA1234", 5, domain.ReasonServiceBonus, ptr.Ptr("timely service"))
	require.NoError(t, err)
	assert.Equal(t, int64(105), balance)
	assert.Equal(t, int64(105), repo.vehicles["TS09EA1234"].CoinBalance)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, int64(5), ledger.entries[0].Delta)
	assert.Equal(t, domain.ReasonServiceBonus, ledger.entries[0].Reason)
}

func TestService_Earn_Validation(t *testing.T) {
	svc, _, ledger := newTestService(testVehicle(100))

	_, err := svc.Earn(context.Background(), "TS09EA1234", 0, domain.ReasonServiceBonus, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Earn(context.Background(), "TS09EA1234", -5, domain.ReasonServiceBonus, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Earn(context.Background(), "TS09EA1234", 5, domain.CoinReason("mystery"), nil)
	assert.ErrorIs(t, err, ErrInvalidReason)

	_, err = svc.Earn(context.Background(), "KA01AB9999", 5, domain.ReasonServiceBonus, nil)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	// Ни одна неудачная операция не должна попасть в журнал
	assert.Empty(t, ledger.entries)
}

func TestService_Redeem(t *testing.T) {
	svc, repo, ledger := newTestService(testVehicle(150))

	balance, err := svc.Redeem(context.Background(), "TS09EA1234", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(50), balance)
	assert.Equal(t, int64(50), repo.vehicles["TS09EA1234"].CoinBalance)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, int64(-100), ledger.entries[0].Delta)
	assert.Equal(t, domain.ReasonRedeemed, ledger.entries[0].Reason)
}

func TestService_Redeem_InsufficientCoins(t *testing.T) {
	svc, repo, ledger := newTestService(testVehicle(50))

	_, err := svc.Redeem(context.Background(), "TS09EA1234", 100)
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	// Баланс не изменился, журнал пуст
	assert.Equal(t, int64(50), repo.vehicles["TS09EA1234"].CoinBalance)
	assert.Empty(t, ledger.entries)
}

func TestService_AddKilometers(t *testing.T) {
	svc, repo, ledger := newTestService(testVehicle(0))

	balance, err := svc.AddKilometers(context.Background(), "TS09EA1234", 320)
	require.NoError(t, err)
	assert.Equal(t, int64(320), balance)
	assert.Equal(t, int64(320), repo.vehicles["TS09EA1234"].TotalKmDriven)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, int64(320), ledger.entries[0].Delta)
	assert.Equal(t, domain.ReasonKmEarned, ledger.entries[0].Reason)
}

func TestService_AddKilometers_Limits(t *testing.T) {
	svc, _, _ := newTestService(testVehicle(0))

	_, err := svc.AddKilometers(context.Background(), "TS09EA1234", 0)
	assert.ErrorIs(t, err, ErrInvalidKilometers)

	_, err = svc.AddKilometers(context.Background(), "TS09EA1234", -100)
	assert.ErrorIs(t, err, ErrInvalidKilometers)

	_, err = svc.AddKilometers(context.Background(), "TS09EA1234", domain.MaxKilometersPerSubmission+1)
	assert.ErrorIs(t, err, ErrInvalidKilometers)

	// Ровно на границе - допустимо
	balance, err := svc.AddKilometers(context.Background(), "TS09EA1234", domain.MaxKilometersPerSubmission)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.MaxKilometersPerSubmission), balance)
}

func TestService_Credit_UsesRefundReason(t *testing.T) {
	svc, _, ledger := newTestService(testVehicle(0))

	balance, err := svc.Credit(context.Background(), "TS09EA1234", 100, ptr.Ptr("refund for cancelled booking #7"))
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	require.Len(t, ledger.entries, 1)
	assert.Equal(t, domain.ReasonRefunded, ledger.entries[0].Reason)
}

func TestService_GetHistory(t *testing.T) {
	svc, _, _ := newTestService(testVehicle(0))

	_, err := svc.Earn(context.Background(), "TS09EA1234", 300, domain.ReasonServiceBonus, nil)
	require.NoError(t, err)
	_, err = svc.Redeem(context.Background(), "TS09EA1234", 100)
	require.NoError(t, err)

	entries, err := svc.GetHistory(context.Background(), "ts09ea1234")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Сначала новые
	assert.Equal(t, int64(-100), entries[0].Delta)
	assert.Equal(t, int64(300), entries[1].Delta)
}

func TestService_GetHistory_UnknownVehicle(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetHistory(context.Background(), "KA01AB9999")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_LedgerSumMatchesBalance(t *testing.T) {
	svc, repo, ledger := newTestService(testVehicle(0))
	ctx := context.Background()

	_, err := svc.AddKilometers(ctx, "TS09EA1234", 1000)
	require.NoError(t, err)
	_, err = svc.GrantBonus(ctx, "TS09EA1234", 5, nil)
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, "TS09EA1234", 200)
	require.NoError(t, err)
	_, err = svc.Credit(ctx, "TS09EA1234", 200, nil)
	require.NoError(t, err)

	sum, err := ledger.SumByVehicle(ctx, "TS09EA1234")
	require.NoError(t, err)
	assert.Equal(t, repo.vehicles["TS09EA1234"].CoinBalance, sum)
	assert.Equal(t, int64(1005), sum)
}
