package httpserver

// User-facing failure messages. Deliberately generic: operator detail stays
// in the logs, never in a response body.
const (
	ErrInternal      = "Внутренняя ошибка сервера"
	ErrNotConfigured = "Telegram не настроен"
	ErrSendFailed    = "Ошибка отправки в Telegram"
)
