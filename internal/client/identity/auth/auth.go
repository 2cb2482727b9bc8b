package auth

import (
	"fmt"

	"github.com/abezemskiy/passentry/internal/common/identity/tools/token"

	"github.com/go-resty/resty/v2"
)

// OnBeforeMiddleware - мидлварь для установки токена клиента перед отправкой запроса на сервер.
// Токен подписывается общим секретным ключом и создается заново для каждого запроса, поэтому не устаревает.
func OnBeforeMiddleware(clientID string) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		jwt, err := token.BuildJWT(clientID)
		if err != nil {
			return fmt.Errorf("failed to build token for client %s, %w", clientID, err)
		}

		// Устанавливаю токен в заголовок запроса
		req.Header.Set("Authorization", "Bearer "+jwt)
		return nil
	}
}
