package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
	bookingRepo "github.com/waypartner/booking-service/internal/infra/storage/booking"
	vehicleRepo "github.com/waypartner/booking-service/internal/infra/storage/vehicle"
	"github.com/waypartner/booking-service/internal/integrations/whatsapp"
	coinsService "github.com/waypartner/booking-service/internal/service/coins"
)

// UseCase use case создания бронирования
//
// Списание монет и занятие слота выполняются в одной транзакции:
// INSERT бронирования является атомарной проверкой занятости слота
// (частичный уникальный индекс), и если слот проигран в гонке,
// откат транзакции возвращает списанные монеты
type UseCase struct {
	bookingRepo          BookingRepository
	vehicleRepo          VehicleRepository
	coinLedger           CoinLedger
	notifier             Notifier
	txManager            TransactionManager
	autoRegisterVehicles bool
	logger               Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	coinLedger CoinLedger,
	notifier Notifier,
	txManager TransactionManager,
	autoRegisterVehicles bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:          bookingRepo,
		vehicleRepo:          vehicleRepo,
		coinLedger:           coinLedger,
		notifier:             notifier,
		txManager:            txManager,
		autoRegisterVehicles: autoRegisterVehicles,
		logger:               logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализуем номер до любых обращений к хранилищу
	req.VehicleRegistration = domain.NormalizeRegistration(req.VehicleRegistration)

	uc.logger.Info("CreateBooking: vehicle=%s, date=%s, time=%s, coins=%d",
		req.VehicleRegistration, req.Date.Format(domain.DateFormat), req.StartTime, req.CoinsToRedeem)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var balance int64

	// 3. Операции с БД в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3.1. Находим или создаем автомобиль
		vehicle, err := uc.resolveVehicle(txCtx, req)
		if err != nil {
			return err
		}
		balance = vehicle.CoinBalance

		// 3.2. Списываем монеты, если запрошено
		if req.CoinsToRedeem > 0 {
			newBalance, err := uc.coinLedger.Redeem(txCtx, req.VehicleRegistration, req.CoinsToRedeem)
			if err != nil {
				switch {
				case errors.Is(err, coinsService.ErrInsufficientCoins):
					uc.logger.Warn("CreateBooking: insufficient coins for vehicle=%s: requested %d, balance %d",
						req.VehicleRegistration, req.CoinsToRedeem, vehicle.CoinBalance)
					return ErrInsufficientCoins
				case errors.Is(err, coinsService.ErrVehicleNotFound):
					return ErrVehicleNotFound
				default:
					return fmt.Errorf("%w: failed to redeem coins: %v", ErrInternal, err)
				}
			}
			balance = newBalance
		}

		// 3.3. Занимаем слот: сам INSERT и есть атомарный compare-and-set
		booking := &domain.Booking{
			VehicleRegistration: req.VehicleRegistration,
			CustomerName:        req.CustomerName,
			CustomerPhone:       req.CustomerPhone,
			ServiceType:         req.ServiceType,
			ServiceDate:         req.Date,
			StartTime:           req.StartTime,
			CoinsRedeemed:       req.CoinsToRedeem,
			Status:              domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Слот проигран в гонке: откат вернет списанные монеты
				uc.logger.Warn("CreateBooking: slot %s %s already taken",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Уведомление после коммита, fire-and-forget
	uc.notifier.NotifyAsync(result.CustomerPhone, whatsapp.TemplateBookingConfirmation, map[string]string{
		"vehicle": result.VehicleRegistration,
		"service": result.ServiceType,
		"date":    result.ServiceDate.Format(domain.DateFormat),
		"time":    result.StartTime.String(),
	})

	return &Response{
		ID:                  result.ID,
		VehicleRegistration: result.VehicleRegistration,
		CustomerName:        result.CustomerName,
		CustomerPhone:       result.CustomerPhone,
		ServiceType:         result.ServiceType,
		Date:                result.ServiceDate,
		StartTime:           result.StartTime,
		CoinsRedeemed:       result.CoinsRedeemed,
		CoinBalance:         balance,
		Status:              string(result.Status),
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}

// resolveVehicle находит автомобиль или, в lenient режиме, создает запись
// с нулевым балансом из данных клиента
func (uc *UseCase) resolveVehicle(ctx context.Context, req *Request) (*domain.Vehicle, error) {
	vehicle, err := uc.vehicleRepo.GetByRegistration(ctx, req.VehicleRegistration)
	if err == nil {
		return vehicle, nil
	}

	if !errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if !uc.autoRegisterVehicles {
		uc.logger.Warn("CreateBooking: vehicle %s not registered and auto-register is off", req.VehicleRegistration)
		return nil, ErrVehicleNotFound
	}

	vehicleType := domain.TypeFourWheeler
	if req.VehicleType != nil {
		vehicleType = domain.VehicleType(*req.VehicleType)
	}

	created, err := uc.vehicleRepo.Create(ctx, &domain.Vehicle{
		RegistrationNumber: req.VehicleRegistration,
		OwnerName:          req.CustomerName,
		Phone:              req.CustomerPhone,
		VehicleType:        vehicleType,
		CoinBalance:        0,
		TotalKmDriven:      0,
	})
	if err != nil {
		// Параллельный запрос мог успеть создать запись - перечитываем
		if errors.Is(err, vehicleRepo.ErrVehicleExists) {
			return uc.vehicleRepo.GetByRegistration(ctx, req.VehicleRegistration)
		}
		return nil, fmt.Errorf("%w: failed to auto-register vehicle: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: auto-registered vehicle %s with zero balance", req.VehicleRegistration)
	return created, nil
}
