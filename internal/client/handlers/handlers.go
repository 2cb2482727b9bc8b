package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/abezemskiy/passentry/internal/client/logger"
	"github.com/abezemskiy/passentry/internal/common/entry/decoder"
	"github.com/abezemskiy/passentry/internal/repositories/entry"
	repoSource "github.com/abezemskiy/passentry/internal/repositories/source"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Паттерны api сервера.
const (
	DecodePattern = "/api/entry/decode/" // паттерн api для разбора текста записи на сервере
	GetPattern    = "/api/entry/get/"    // паттерн api для получения записи из хранилища сервера
)

// ErrAbsentField - запрошенное поле в записи отсутствует.
var ErrAbsentField = errors.New("field is absent in entry")

// entryPath - функция для экранирования имени записи в пути запроса. Разделитель "/" сохраняется.
func entryPath(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// GetLocalEntry - функция для получения записи из локального источника и её разбора.
func GetLocalEntry(ctx context.Context, fetcher repoSource.Fetcher, name string) (entry.Entry, error) {
	data, err := fetcher.Fetch(ctx, name)
	if err != nil {
		logger.ClientLog.Error("failed to fetch entry", zap.String("name", name), zap.String("error", error.Error(err)))
		return entry.Entry{}, fmt.Errorf("failed to fetch entry %s, %w", name, err)
	}

	e, err := decoder.DecodeBytes(name, data)
	if err != nil {
		logger.ClientLog.Error("failed to decode entry", zap.String("name", name), zap.String("error", error.Error(err)))
		return entry.Entry{}, fmt.Errorf("failed to decode entry %s, %w", name, err)
	}

	logger.ClientLog.Debug("successful decode local entry", zap.String("name", name))
	return e, nil
}

// DecodeRemote - функция для разбора текста записи data на сервере.
func DecodeRemote(ctx context.Context, client *resty.Client, serverAddr, name string, data []byte) (entry.Entry, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetBody(data).
		Post(serverAddr + DecodePattern + entryPath(name))

	return readEntryResponse(resp, err, name)
}

// GetRemoteEntry - функция для получения разобранной записи из хранилища сервера.
func GetRemoteEntry(ctx context.Context, client *resty.Client, serverAddr, name string) (entry.Entry, error) {
	resp, err := client.R().
		SetContext(ctx).
		Get(serverAddr + GetPattern + entryPath(name))

	return readEntryResponse(resp, err, name)
}

// readEntryResponse - функция для обработки ответа сервера с записью.
func readEntryResponse(resp *resty.Response, err error, name string) (entry.Entry, error) {
	if err != nil {
		logger.ClientLog.Error("request to server error", zap.String("name", name), zap.String("error", error.Error(err)))
		return entry.Entry{}, fmt.Errorf("request to server error, %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.ClientLog.Error("server returned error", zap.String("name", name), zap.Int("status", resp.StatusCode()))
		return entry.Entry{}, fmt.Errorf("server returned status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var e entry.Entry
	if err := json.Unmarshal(resp.Body(), &e); err != nil {
		logger.ClientLog.Error("failed to parse entry from server response", zap.String("name", name), zap.String("error", error.Error(err)))
		return entry.Entry{}, fmt.Errorf("failed to parse entry from server response, %w", err)
	}

	logger.ClientLog.Debug("successful get entry from server", zap.String("name", name))
	return e, nil
}

// PrintEntry - функция для вывода записи в формате JSON.
// Если задано поле field, то выводится только его значение.
func PrintEntry(w io.Writer, e entry.Entry, field string) error {
	if field != "" {
		value, err := e.Field(field)
		if err != nil {
			return err
		}
		if value == nil {
			return fmt.Errorf("%w: %s", ErrAbsentField, field)
		}
		_, err = fmt.Fprint(w, *value)
		// заметки уже оканчиваются переводом строки
		if err == nil && !strings.HasSuffix(*value, "\n") {
			_, err = fmt.Fprintln(w)
		}
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("failed to encode entry to json, %w", err)
	}
	return nil
}
