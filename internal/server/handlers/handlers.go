package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/abezemskiy/passentry/internal/common/entry/decoder"
	"github.com/abezemskiy/passentry/internal/common/source"
	"github.com/abezemskiy/passentry/internal/repositories/entry"
	repoSource "github.com/abezemskiy/passentry/internal/repositories/source"
	"github.com/abezemskiy/passentry/internal/server/identity/auth"
	"github.com/abezemskiy/passentry/internal/server/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxEntrySize - максимальный размер тела запроса с текстом записи.
const maxEntrySize = 1 << 20

// entryName - функция для получения имени записи из пути запроса.
// Имя записи может содержать "/", поэтому извлекается из wildcard-параметра.
// Если в запросе задан RawPath, то chi маршрутизирует по нему и параметр остается экранированным.
func entryName(req *http.Request) (string, error) {
	name := chi.URLParam(req, "*")
	if req.URL.RawPath == "" {
		return name, nil
	}
	unescaped, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("failed to unescape entry name %s, %w", name, err)
	}
	return unescaped, nil
}

// clientID - функция для получения id клиента из контекста запроса для логирования.
func clientID(req *http.Request) string {
	id, _ := req.Context().Value(auth.ClientIDKey).(string)
	return id
}

// writeEntry - функция для записи расшифрованной записи в ответ в формате JSON.
func writeEntry(res http.ResponseWriter, req *http.Request, e entry.Entry) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(res)
	if err := enc.Encode(e); err != nil {
		logger.ServerLog.Error("failed to encode entry to json", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		return
	}
}

// DecodeEntry - хэндлер для разбора текста записи, переданного в теле запроса.
// Имя записи передается в пути запроса.
func DecodeEntry(res http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()
	name, err := entryName(req)
	if err != nil {
		logger.ServerLog.Error("entry name is not valid", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(res, req.Body, maxEntrySize))
	if err != nil {
		logger.ServerLog.Error("failed to read entry from request", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(res, fmt.Sprintf("entry is larger than %d bytes", maxBytesErr.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(res, fmt.Errorf("failed to read entry from request, %w", err).Error(), http.StatusBadRequest)
		return
	}

	e, err := decoder.DecodeBytes(name, data)
	if err != nil {
		// в ответ попадает только вид ошибки, текст записи не логируется
		logger.ServerLog.Error("failed to decode entry", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to decode entry, %w", err).Error(), http.StatusBadRequest)
		return
	}

	writeEntry(res, req, e)
	logger.ServerLog.Debug("successful decode entry", zap.String("name", name), zap.String("client", clientID(req)))
}

// DecodeEntryHandler - обертка над DecodeEntry.
func DecodeEntryHandler() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		DecodeEntry(res, req)
	}
}

// GetEntry - хэндлер для получения записи из хранилища паролей сервера и её разбора.
func GetEntry(res http.ResponseWriter, req *http.Request, fetcher repoSource.Fetcher) {
	name, err := entryName(req)
	if err != nil {
		logger.ServerLog.Error("entry name is not valid", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	// Проверяю имя до обращения к хранилищу
	if err := source.ValidateName(name); err != nil {
		logger.ServerLog.Error("entry name is not valid", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("entry name is not valid, %w", err).Error(), http.StatusBadRequest)
		return
	}

	data, err := fetcher.Fetch(req.Context(), name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.ServerLog.Error(fmt.Sprintf("entry %s not found", name), zap.String("address", req.URL.String()))
			http.Error(res, fmt.Sprintf("entry %s not found", name), http.StatusNotFound)
			return
		}
		logger.ServerLog.Error("failed to fetch entry", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to fetch entry, %w", err).Error(), http.StatusBadGateway)
		return
	}

	e, err := decoder.DecodeBytes(name, data)
	if err != nil {
		logger.ServerLog.Error("failed to decode fetched entry", zap.String("address", req.URL.String()), zap.String("error", error.Error(err)))
		http.Error(res, fmt.Errorf("failed to decode fetched entry, %w", err).Error(), http.StatusUnprocessableEntity)
		return
	}

	writeEntry(res, req, e)
	logger.ServerLog.Debug("successful get entry", zap.String("name", name), zap.String("client", clientID(req)))
}

// GetEntryHandler - обертка над GetEntry.
func GetEntryHandler(fetcher repoSource.Fetcher) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		GetEntry(res, req, fetcher)
	}
}

// HandleOtherRequest - обработка нераспознанных http запросов к сервису.
func HandleOtherRequest() http.HandlerFunc {
	return func(res http.ResponseWriter, _ *http.Request) {
		res.Header().Set("Content-Type", "text/plain")
		res.WriteHeader(http.StatusNotFound)
	}
}
