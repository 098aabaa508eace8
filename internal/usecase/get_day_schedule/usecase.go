package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/pkg/types"
)

// UseCase use case получения дневного расписания слотов
// Возвращает всю фиксированную сетку: для пустого дня все восемь слотов
// свободны, занятые слоты дополнены данными бронирования
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения расписания
// Операция только читает - побочных эффектов нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.GetConfirmedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Не более одного подтверждённого бронирования на слот
	byTime := make(map[types.TimeString]*domain.Booking, len(bookings))
	for _, booking := range bookings {
		byTime[booking.StartTime] = booking
	}

	slots := make([]Slot, 0, len(domain.DailySlotTimes))
	for _, t := range domain.DailySlotTimes {
		startTime := types.TimeString(t)
		slot := Slot{
			StartTime: startTime,
			Status:    domain.SlotAvailable,
		}

		if booking, ok := byTime[startTime]; ok {
			slot.Status = domain.SlotBooked
			slot.Booking = &BookingInfo{
				ID:                  booking.ID,
				VehicleRegistration: booking.VehicleRegistration,
				CustomerName:        booking.CustomerName,
				CustomerPhone:       booking.CustomerPhone,
				ServiceType:         booking.ServiceType,
			}
		}

		slots = append(slots, slot)
	}

	uc.logger.Info("GetDaySchedule: %d of %d slots booked on %s",
		len(byTime), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
