package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
	bookingRepo "github.com/waypartner/booking-service/internal/infra/storage/booking"
	"github.com/waypartner/booking-service/internal/integrations/whatsapp"
	"github.com/waypartner/booking-service/internal/service/bookings/models"
	"github.com/waypartner/booking-service/pkg/ptr"
)

// Service сервис для работы с существующими бронированиями
// Создание бронирования живет в usecase create_booking
type Service struct {
	bookingRepo BookingRepository
	coinLedger  CoinLedger
	notifier    Notifier
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	coinLedger CoinLedger,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		coinLedger:  coinLedger,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetVehicleBookings получает историю бронирований автомобиля
func (s *Service) GetVehicleBookings(ctx context.Context, registration string) (*models.BookingListResponse, error) {
	normalized := domain.NormalizeRegistration(registration)

	bookings, err := s.bookingRepo.GetByVehicle(ctx, normalized)
	if err != nil {
		s.logger.Error("GetVehicleBookings: repository error for vehicle=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: GetVehicleBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и возвращает списанные монеты
// Повторная отмена - no-op без ошибки: переход confirmed -> cancelled
// выполняется условным UPDATE, и возврат монет привязан к этому переходу.
// Монеты не могут быть возвращены дважды
func (s *Service) Cancel(ctx context.Context, bookingID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	var booking *domain.Booking
	var cancelled bool

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			s.logger.Warn("Cancel: booking id=%d already cancelled, treating as no-op", bookingID)
			return nil
		}

		cancelled, err = s.bookingRepo.Cancel(txCtx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}
		if !cancelled {
			// Конкурентная отмена успела раньше - возврат уже сделан там
			s.logger.Warn("Cancel: booking id=%d was cancelled concurrently", bookingID)
			return nil
		}

		if booking.HasRedeemedCoins() {
			note := ptr.Ptr(fmt.Sprintf("refund for cancelled booking #%d", bookingID))
			if _, err := s.coinLedger.Credit(txCtx, booking.VehicleRegistration, booking.CoinsRedeemed, note); err != nil {
				return fmt.Errorf("%w: Cancel - refund coins: %v", ErrInternal, err)
			}
			s.logger.Info("Cancel: refunded %d coins to vehicle=%s for booking id=%d",
				booking.CoinsRedeemed, booking.VehicleRegistration, bookingID)
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Уведомление после коммита: сбой доставки не откатывает отмену
	if cancelled {
		s.notifier.NotifyAsync(booking.CustomerPhone, whatsapp.TemplateCancellationNotice, map[string]string{
			"vehicle": booking.VehicleRegistration,
			"date":    booking.ServiceDate.Format(domain.DateFormat),
			"time":    booking.StartTime.String(),
		})
	}

	s.logger.Info("Cancel: booking id=%d cancelled successfully", bookingID)
	return nil
}
