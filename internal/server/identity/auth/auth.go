// auth - пакет, который реализует middleware для аутентификации клиентов сервиса.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/abezemskiy/passentry/internal/common/identity/tools/header"
	"github.com/abezemskiy/passentry/internal/common/identity/tools/id"
	"github.com/abezemskiy/passentry/internal/common/identity/tools/token"
	"github.com/abezemskiy/passentry/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

// ClientIDKey - ключ для установки ID клиента в контекст.
const ClientIDKey = contextKey("clientID")

// Middleware - проверяет JWT входящих запросов к серверу.
// Записи хранилища паролей отдаются только клиентам, знающим общий секретный ключ.
// Из полученного токена извлекается ID клиента и устанавливается в контекст.
func Middleware(h http.Handler) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		getToken, err := header.GetTokenFromHeader(req)
		// В случае ошибки получения токена возвращаю статус 401 - клиент не аутентифицирован.
		if err != nil {
			logger.ServerLog.Error("failed to get token from request", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get token from request, %w", err).Error(), http.StatusUnauthorized)
			return
		}
		clientID, err := token.GetIDFromToken(getToken)
		if err != nil {
			logger.ServerLog.Error("failed to get client id from token", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("failed to get client id from token, %w", err).Error(), http.StatusUnauthorized)
			return
		}
		if err := id.CheckID(clientID); err != nil {
			logger.ServerLog.Error("client id is not valid", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
			http.Error(res, fmt.Errorf("client id is not valid, %w", err).Error(), http.StatusUnauthorized)
			return
		}

		// В случае успешного получения id клиента устанавливаю идентификатор в контекст для дальнейшей обработки.
		ctx := context.WithValue(req.Context(), ClientIDKey, clientID)

		// вызываю основной обработчик
		h.ServeHTTP(res, req.WithContext(ctx))
	}
}
