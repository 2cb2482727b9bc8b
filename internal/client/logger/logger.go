// logger - пакет логера клиента passentry.
//
// Stdout клиента занят выводом записи (JSON или значение поля), поэтому логи
// никогда туда не пишутся: по умолчанию они идут в stderr, а при заданном файле только в него.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// stderrPath - путь вывода zap для стандартного потока ошибок.
const stderrPath = "stderr"

// ClientLog - синглтон логера клиента, меняется только в Initialize.
// До инициализации ничего не выводит.
var ClientLog *zap.Logger = zap.NewNop()

// outputPaths - функция для выбора потока вывода логов клиента.
// Файл логов очищается, чтобы в нем оставались только сообщения текущего запуска.
func outputPaths(logFile string) ([]string, error) {
	if logFile == "" {
		return []string{stderrPath}, nil
	}
	if err := os.Truncate(logFile, 0); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return []string{logFile}, nil
}

// Initialize - функция для настройки ClientLog с уровнем level.
// Текст записей и пароли в лог не передаются, логируются только имена записей и ошибки.
func Initialize(level, logFile string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	paths, err := outputPaths(logFile)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = paths
	cfg.ErrorOutputPaths = paths
	// клиент запускается на одну операцию, сэмплирование только теряет сообщения
	cfg.Sampling = nil

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	ClientLog = zl.With(zap.String("role", "client"))
	return nil
}
