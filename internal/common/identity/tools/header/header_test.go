package header

import (
	"net/http/httptest"
	"testing"

	"github.com/abezemskiy/passentry/internal/common/identity/tools/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromHeader(t *testing.T) {
	token.SetSecretKey("header test key")
	token.SetExpireHour(1)

	{
		// Тест с успешным извлечением заголовка
		r := httptest.NewRequest("POST", "/header", nil)
		id := "254735724613466"
		tokenBuild, err := token.BuildJWT(id)
		require.NoError(t, err)

		r.Header.Set("Authorization", "Bearer "+tokenBuild)

		res, err := GetTokenFromHeader(r)
		require.NoError(t, err)
		// извлекаю id из извлеченного токена
		getID, err := token.GetIDFromToken(res)
		require.NoError(t, err)
		assert.Equal(t, id, getID)
	}
	{
		// Тест с неправильным ключом заголовка
		r := httptest.NewRequest("POST", "/header", nil)
		r.Header.Set("Wrong header", "Bearer token")

		_, err := GetTokenFromHeader(r)
		require.Error(t, err)
	}
	{
		// Тест с неправильным форматом заголовка
		r := httptest.NewRequest("POST", "/header", nil)
		r.Header.Set("Authorization", "Wrong format token")

		_, err := GetTokenFromHeader(r)
		require.Error(t, err)
	}
	{
		// Тест с пустым токеном
		r := httptest.NewRequest("POST", "/header", nil)
		r.Header.Set("Authorization", "Bearer ")

		_, err := GetTokenFromHeader(r)
		require.Error(t, err)
	}
}
