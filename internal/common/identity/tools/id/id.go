package id

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID - функция генерации идентификатора клиента.
// В качестве id используется случайный UUID (Universally Unique Identifier).
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate id, %w", err)
	}
	return id.String(), nil
}

// CheckID - функция для проверки того, что id является корректным UUID.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("id %s is not valid, %w", id, err)
	}
	return nil
}
