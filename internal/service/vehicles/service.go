package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
	"github.com/waypartner/booking-service/internal/service/vehicles/models"
)

// Service сервис реестра автомобилей
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Register регистрирует новый автомобиль с нулевым балансом монет
// Стартовый баланс всегда 0: любое начисление проходит явной операцией
// бонуса и попадает в журнал
func (s *Service) Register(ctx context.Context, req *models.RegisterVehicleRequest) (*models.VehicleResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	registration := domain.NormalizeRegistration(req.RegistrationNumber)

	vehicle := &domain.Vehicle{
		RegistrationNumber: registration,
		OwnerName:          req.OwnerName,
		Phone:              req.Phone,
		VehicleType:        domain.VehicleType(req.VehicleType),
		CoinBalance:        0,
		TotalKmDriven:      0,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleExists) {
			s.logger.Warn("Register: vehicle %s already registered", registration)
			return nil, ErrVehicleExists
		}
		s.logger.Error("Register: repository error for vehicle=%s: %v", registration, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: vehicle %s registered, owner=%s type=%s", registration, created.OwnerName, created.VehicleType)
	return models.FromDomainVehicle(created), nil
}

// Search ищет автомобиль по регистрационному номеру
// Номер нормализуется перед поиском, поэтому "ts09ea1234" и "TS09EA1234"
// находят одну и ту же запись
func (s *Service) Search(ctx context.Context, registration string) (*models.VehicleResponse, error) {
	normalized := domain.NormalizeRegistration(registration)
	if normalized == "" {
		return nil, fmt.Errorf("%w: registration number is required", ErrInvalidInput)
	}

	vehicle, err := s.vehicleRepo.GetByRegistration(ctx, normalized)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Search: vehicle %s not found", normalized)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Search: repository error for vehicle=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// validateRegisterRequest проверяет обязательные поля запроса регистрации
func validateRegisterRequest(req *models.RegisterVehicleRequest) error {
	if domain.NormalizeRegistration(req.RegistrationNumber) == "" {
		return fmt.Errorf("%w: registration number is required", ErrInvalidInput)
	}
	if req.OwnerName == "" {
		return fmt.Errorf("%w: owner name is required", ErrInvalidInput)
	}
	if len(req.OwnerName) > domain.MaxOwnerNameLength {
		return fmt.Errorf("%w: owner name is too long", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	if !domain.VehicleType(req.VehicleType).IsValid() {
		return fmt.Errorf("%w: vehicle type must be two_wheeler or four_wheeler", ErrInvalidInput)
	}
	return nil
}
