package get_day_schedule

import (
	"time"

	"github.com/waypartner/booking-service/internal/domain"
	"github.com/waypartner/booking-service/pkg/types"
)

// Request модель запроса дневного расписания
type Request struct {
	Date time.Time // Дата, на которую запрашивается расписание
}

// Response модель ответа с расписанием слотов на день
type Response struct {
	Date  time.Time // Дата расписания
	Slots []Slot    // Все слоты дневной сетки по порядку
}

// Slot слот дневной сетки с данными занявшего его бронирования
type Slot struct {
	StartTime types.TimeString   // Время начала слота
	Status    domain.SlotStatus  // available | booked
	Booking   *BookingInfo       // Данные бронирования, если слот занят
}

// BookingInfo данные бронирования, занявшего слот
type BookingInfo struct {
	ID                  int64
	VehicleRegistration string
	CustomerName        string
	CustomerPhone       string
	ServiceType         string
}
