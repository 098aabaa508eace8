package create_booking

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда слот уже занят другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInsufficientCoins возвращается, когда списание превышает баланс
	ErrInsufficientCoins = errors.New("create_booking: insufficient coin balance")

	// ErrVehicleNotFound возвращается, когда автомобиль не зарегистрирован,
	// а автосоздание выключено конфигурацией
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в дневную сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
