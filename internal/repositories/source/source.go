package source

import "context"

//go:generate mockgen -source=source.go -destination=../mocks/mock_source.go -package=mocks

type (
	// Fetcher - интерфейс получения исходного текста записи хранилища паролей по её имени.
	Fetcher interface {
		Fetch(ctx context.Context, name string) ([]byte, error) // Возвращает текст записи в виде слайса байт.
	}
)
