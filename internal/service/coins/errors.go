package coins

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInsufficientCoins возвращается, когда на балансе недостаточно монет
	ErrInsufficientCoins = errors.New("insufficient coin balance")

	// ErrInvalidAmount возвращается при неположительной сумме операции
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidKilometers возвращается при некорректном пробеге
	ErrInvalidKilometers = errors.New("kilometers must be between 1 and 10000")

	// ErrInvalidReason возвращается при неизвестной причине начисления
	ErrInvalidReason = errors.New("invalid coin transaction reason")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coins service: internal error")
)
