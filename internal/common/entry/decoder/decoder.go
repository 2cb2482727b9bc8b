// decoder - пакет для разбора текста записи хранилища паролей pass в структуру entry.Entry.
//
// Записи pass не имеют строгой схемы. По соглашению первая строка записи содержит пароль,
// строки с префиксами url: и login: содержат адрес и логин, все остальные строки считаются заметками.
package decoder

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/abezemskiy/passentry/internal/repositories/entry"
)

var (
	// ErrInvalidName - передано пустое имя записи.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidData - передана пустая запись или запись не является корректным UTF-8 текстом.
	ErrInvalidData = errors.New("invalid data")
)

// Префиксы директив. Сравнение с учетом регистра, только с начала строки.
const (
	urlPrefix   = "url:"
	loginPrefix = "login:"
)

// Decode - функция для разбора текста записи text с именем name.
func Decode(name, text string) (entry.Entry, error) {
	if len(name) < 1 {
		return entry.Entry{}, ErrInvalidName
	}
	if len(text) < 1 {
		return entry.Entry{}, ErrInvalidData
	}

	e := entry.Entry{
		Name: strings.Clone(name),
	}

	// накопитель для строк заметок
	var notes strings.Builder

	// разделителем строк считается только \n, символ \r остается частью строки
	for i, line := range strings.Split(text, "\n") {
		// первая строка всегда пароль, директивы в ней не ищутся
		if i == 0 {
			password := strings.Clone(line)
			e.Password = &password
			continue
		}
		if strings.HasPrefix(line, urlPrefix) {
			url := strings.Clone(strings.TrimSpace(line[len(urlPrefix):]))
			e.URL = &url
			continue
		}
		if strings.HasPrefix(line, loginPrefix) {
			login := strings.Clone(strings.TrimSpace(line[len(loginPrefix):]))
			e.Login = &login
			continue
		}

		notes.WriteString(line)
		notes.WriteString("\n")
	}

	// одиночный перевод строки заметкой не считается
	if notes.Len() > 1 {
		content := notes.String()
		e.Notes = &content
	}

	return e, nil
}

// DecodeBytes - функция для разбора записи, полученной в виде слайса байт, например из stdout команды pass.
// Кодировка проверяется до проверки имени.
func DecodeBytes(name string, data []byte) (entry.Entry, error) {
	if !utf8.Valid(data) {
		return entry.Entry{}, ErrInvalidData
	}
	return Decode(name, string(data))
}
