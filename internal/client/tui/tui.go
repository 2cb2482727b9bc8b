// tui - пакет с общими константами текстового интерфейса клиента.
package tui

// Имена страниц интерфейса.
const (
	Entry   = "entry"   // страница просмотра записи
	Message = "message" // модальное окно с сообщением
	Error   = "error"   // модальное окно с ошибкой
)

// Маска для скрытия пароля в таблице.
const PasswordMask = "********"
