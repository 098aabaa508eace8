package create_booking

import (
	"time"

	"github.com/waypartner/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	VehicleRegistration string           // Регистрационный номер (нормализуется внутри usecase)
	CustomerName        string           // Имя клиента
	CustomerPhone       string           // Телефон клиента (для уведомлений)
	ServiceType         string           // Тип услуги (свободный текст)
	VehicleType         *string          // Сегмент автомобиля (только для автосоздания записи)
	Date                time.Time        // Дата бронирования (без времени)
	StartTime           types.TimeString // Время начала слота (например, "10:00")
	CoinsToRedeem       int64            // Сколько монет списать в счет скидки (0 - не списывать)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                  int64            // ID созданного бронирования
	VehicleRegistration string           // Нормализованный номер
	CustomerName        string           // Имя клиента
	CustomerPhone       string           // Телефон клиента
	ServiceType         string           // Тип услуги
	Date                time.Time        // Дата бронирования
	StartTime           types.TimeString // Время начала
	CoinsRedeemed       int64            // Списано монет
	CoinBalance         int64            // Баланс монет после списания
	Status              string           // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
