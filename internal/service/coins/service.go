package coins

import (
	"context"
	"errors"
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
)

// Service сервис Green Coins: единственный владелец баланса монет
// Аллокатор бронирований никогда не пишет баланс напрямую - только через
// Redeem/Credit этого сервиса
type Service struct {
	vehicleRepo VehicleRepository
	ledgerRepo  LedgerRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса монет
func NewService(
	vehicleRepo VehicleRepository,
	ledgerRepo LedgerRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetBalance возвращает текущий баланс монет автомобиля
// Неизвестный автомобиль трактуется как новый: баланс 0, не ошибка
func (s *Service) GetBalance(ctx context.Context, registration string) (int64, error) {
	registration = domain.NormalizeRegistration(registration)

	vehicle, err := s.vehicleRepo.GetByRegistration(ctx, registration)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return 0, nil
		}
		s.logger.Error("GetBalance: repository error for vehicle=%s: %v", registration, err)
		return 0, fmt.Errorf("%w: GetBalance - repository error: %v", ErrInternal, err)
	}

	return vehicle.CoinBalance, nil
}

// Earn начисляет монеты и возвращает новый баланс
// Размер начисления считает вызывающая сторона (бонусные политики),
// сервис только аккумулирует
func (s *Service) Earn(ctx context.Context, registration string, amount int64, reason domain.CoinReason, note *string) (int64, error) {
	registration = domain.NormalizeRegistration(registration)

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if !reason.IsValid() {
		return 0, ErrInvalidReason
	}

	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		newBalance, err := s.vehicleRepo.AddCoins(txCtx, registration, amount)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: Earn - add coins: %v", ErrInternal, err)
		}

		if _, err := s.ledgerRepo.Append(txCtx, &domain.CoinTransaction{
			VehicleRegistration: registration,
			Delta:               amount,
			Reason:              reason,
			Note:                note,
		}); err != nil {
			return fmt.Errorf("%w: Earn - append ledger entry: %v", ErrInternal, err)
		}

		balance = newBalance
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Earn: vehicle=%s amount=%d reason=%s balance=%d", registration, amount, reason, balance)
	return balance, nil
}

// Redeem списывает монеты и возвращает новый баланс
// Списание и запись в журнал выполняются в одной транзакции
func (s *Service) Redeem(ctx context.Context, registration string, amount int64) (int64, error) {
	registration = domain.NormalizeRegistration(registration)

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		newBalance, err := s.vehicleRepo.DeductCoins(txCtx, registration, amount)
		if err != nil {
			switch {
			case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
				return ErrVehicleNotFound
			case errors.Is(err, vehicleRepo.ErrInsufficientCoins):
				return ErrInsufficientCoins
			default:
				return fmt.Errorf("%w: Redeem - deduct coins: %v", ErrInternal, err)
			}
		}

		if _, err := s.ledgerRepo.Append(txCtx, &domain.CoinTransaction{
			VehicleRegistration: registration,
			Delta:               -amount,
			Reason:              domain.ReasonRedeemed,
		}); err != nil {
			return fmt.Errorf("%w: Redeem - append ledger entry: %v", ErrInternal, err)
		}

		balance = newBalance
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("Redeem: vehicle=%s amount=%d balance=%d", registration, amount, balance)
	return balance, nil
}

// Credit начисляет монеты с причиной refunded
// Механика идентична Earn, отдельный метод нужен только для аудита возвратов
func (s *Service) Credit(ctx context.Context, registration string, amount int64, note *string) (int64, error) {
	return s.Earn(ctx, registration, amount, domain.ReasonRefunded, note)
}

// AddKilometers начисляет монеты за пробег: 1 км = 1 монета
// Пробег за одну отправку ограничен сверху, нулевой и отрицательный отклоняется
func (s *Service) AddKilometers(ctx context.Context, registration string, km int64) (int64, error) {
	registration = domain.NormalizeRegistration(registration)

	if km <= 0 || km > domain.MaxKilometersPerSubmission {
		return 0, ErrInvalidKilometers
	}

	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		newBalance, err := s.vehicleRepo.AddKilometers(txCtx, registration, km)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: AddKilometers - update vehicle: %v", ErrInternal, err)
		}

		if _, err := s.ledgerRepo.Append(txCtx, &domain.CoinTransaction{
			VehicleRegistration: registration,
			Delta:               km,
			Reason:              domain.ReasonKmEarned,
		}); err != nil {
			return fmt.Errorf("%w: AddKilometers - append ledger entry: %v", ErrInternal, err)
		}

		balance = newBalance
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("AddKilometers: vehicle=%s km=%d balance=%d", registration, km, balance)
	return balance, nil
}

// GrantBonus начисляет бонусные монеты (за сервис, качество, EV, оценку)
// Явная операция: никакого скрытого начисления при регистрации нет
func (s *Service) GrantBonus(ctx context.Context, registration string, amount int64, note *string) (int64, error) {
	return s.Earn(ctx, registration, amount, domain.ReasonServiceBonus, note)
}

// GetHistory возвращает историю операций автомобиля (сначала новые)
// Сверяет сумму дельт журнала с текущим балансом и предупреждает о расхождении
func (s *Service) GetHistory(ctx context.Context, registration string) ([]*domain.CoinTransaction, error) {
	registration = domain.NormalizeRegistration(registration)

	vehicle, err := s.vehicleRepo.GetByRegistration(ctx, registration)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetHistory: repository error for vehicle=%s: %v", registration, err)
		return nil, fmt.Errorf("%w: GetHistory - repository error: %v", ErrInternal, err)
	}

	entries, err := s.ledgerRepo.GetByVehicle(ctx, registration)
	if err != nil {
		s.logger.Error("GetHistory: ledger error for vehicle=%s: %v", registration, err)
		return nil, fmt.Errorf("%w: GetHistory - ledger error: %v", ErrInternal, err)
	}

	if sum, err := s.ledgerRepo.SumByVehicle(ctx, registration); err == nil && sum != vehicle.CoinBalance {
		s.logger.Warn("GetHistory: ledger sum %d does not match balance %d for vehicle=%s",
			sum, vehicle.CoinBalance, registration)
	}

	return entries, nil
}
