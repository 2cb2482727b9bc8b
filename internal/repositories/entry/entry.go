package entry

import (
	"errors"
	"fmt"
)

// Имена полей записи. Совпадают с именами полей при сериализации в JSON.
const (
	NAME     = "name"
	PASSWORD = "password"
	LOGIN    = "login"
	URL      = "url"
	NOTES    = "notes"
)

// ErrUnknownField - запрошено поле, которого нет в записи.
var ErrUnknownField = errors.New("unknown entry field")

// Entry - расшифрованная запись хранилища паролей pass в структурированном виде.
// Необязательные поля хранятся указателями, отсутствующее значение сериализуется в null.
type Entry struct {
	Name     string  `json:"name"`     // имя записи, задается вызывающей стороной
	Password *string `json:"password"` // первая строка записи без изменений
	Login    *string `json:"login"`    // значение директивы login:
	URL      *string `json:"url"`      // значение директивы url:
	Notes    *string `json:"notes"`    // все остальные строки, каждая с завершающим переводом строки
}

// Field - метод для получения значения поля записи по его имени.
// Для отсутствующего необязательного поля возвращается nil.
func (e Entry) Field(name string) (*string, error) {
	switch name {
	case NAME:
		return &e.Name, nil
	case PASSWORD:
		return e.Password, nil
	case LOGIN:
		return e.Login, nil
	case URL:
		return e.URL, nil
	case NOTES:
		return e.Notes, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// Fields - функция возвращает имена полей записи в порядке их отображения.
func Fields() []string {
	return []string{NAME, PASSWORD, LOGIN, URL, NOTES}
}
