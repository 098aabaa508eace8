package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypartner/booking-service/internal/domain"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
	"github.com/waypartner/booking-service/internal/service/vehicles/models"
)

// fakeVehicleRepo in-memory репозиторий автомобилей
type fakeVehicleRepo struct {
	vehicles map[string]*domain.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if _, ok := r.vehicles[v.RegistrationNumber]; ok {
		return nil, vehicleRepo.ErrVehicleExists
	}
	r.vehicles[v.RegistrationNumber] = v
	return v, nil
}

func (r *fakeVehicleRepo) GetByRegistration(_ context.Context, registration string) (*domain.Vehicle, error) {
	v, ok := r.vehicles[registration]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return v, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.RegisterVehicleRequest {
	return &models.RegisterVehicleRequest{
		RegistrationNumber: "ts 09 ea 1234",
		OwnerName:          "Ravi Kumar",
		Phone:              "+919876543210",
		VehicleType:        "four_wheeler",
	}
}

func TestService_Register(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	// Номер нормализован, стартовый баланс нулевой
	assert.Equal(t, "TS09EA1234", resp.RegistrationNumber)
	assert.Equal(t, int64(0), resp.CoinBalance)
	assert.Equal(t, int64(0), resp.TotalKmDriven)

	stored, ok := repo.vehicles["TS09EA1234"]
	require.True(t, ok)
	assert.Equal(t, domain.TypeFourWheeler, stored.VehicleType)
}

func TestService_Register_Duplicate(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	// Тот же номер в другом регистре - тот же автомобиль
	req := validRequest()
	req.RegistrationNumber = "TS09EA1234"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrVehicleExists)
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.RegisterVehicleRequest)
	}{
		{name: "empty registration", mutate: func(r *models.RegisterVehicleRequest) { r.RegistrationNumber = "  " }},
		{name: "empty owner name", mutate: func(r *models.RegisterVehicleRequest) { r.OwnerName = "" }},
		{name: "empty phone", mutate: func(r *models.RegisterVehicleRequest) { r.Phone = "" }},
		{name: "unknown vehicle type", mutate: func(r *models.RegisterVehicleRequest) { r.VehicleType = "truck" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Search_CaseInsensitive(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.Search(context.Background(), "ts09ea1234")
	require.NoError(t, err)
	assert.Equal(t, "TS09EA1234", resp.RegistrationNumber)

	resp, err = svc.Search(context.Background(), "TS 09 EA 1234")
	require.NoError(t, err)
	assert.Equal(t, "TS09EA1234", resp.RegistrationNumber)
}

func TestService_Search_NotFound(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	_, err := svc.Search(context.Background(), "KA01AB9999")
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
