package whatsapp

// TemplateKind тип шаблона уведомления
type TemplateKind string

const (
	// TemplateBookingConfirmation подтверждение бронирования
	TemplateBookingConfirmation TemplateKind = "booking_confirmation"
	// TemplateCancellationNotice уведомление об отмене бронирования
	TemplateCancellationNotice TemplateKind = "cancellation_notice"
	// TemplateCoinsEarned уведомление о начислении монет
	TemplateCoinsEarned TemplateKind = "coins_earned"
)

// sendMessageRequest тело запроса к WhatsApp шлюзу
type sendMessageRequest struct {
	Phone    string            `json:"phone"`
	Template string            `json:"template"`
	Data     map[string]string `json:"data,omitempty"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
