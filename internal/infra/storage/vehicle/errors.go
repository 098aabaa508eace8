package vehicle

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrVehicleExists возвращается при попытке повторной регистрации номера
	ErrVehicleExists = errors.New("vehicle.repository: vehicle already registered")

	// ErrInsufficientCoins возвращается, когда на балансе недостаточно монет
	ErrInsufficientCoins = errors.New("vehicle.repository: insufficient coin balance")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
