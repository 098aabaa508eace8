package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrDisabled возвращается, когда отправка уведомлений выключена конфигурацией
	ErrDisabled = errors.New("whatsapp client: notifications disabled")
)
