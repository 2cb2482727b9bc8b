package header

import (
	"fmt"
	"net/http"
	"strings"
)

// GetTokenFromHeader - функция для получения токена из заголовка запроса.
func GetTokenFromHeader(req *http.Request) (string, error) {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	// Проверяю, что заголовок начинается с "Bearer "
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	return parts[1], nil
}
