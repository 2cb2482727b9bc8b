package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{"ValidDebugLevel", "debug", false},
		{"ValidInfoLevel", "info", false},
		{"ValidErrorLevel", "error", false},
		{"InvalidLevel", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.level, "")
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			// уровень "debug" должен быть доступен только при debug
			assert.Equal(t, tt.level == "debug", ClientLog.Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestInitializeLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "client.log")
	require.NoError(t, os.WriteFile(logFile, []byte("old logs\n"), 0644))

	err := Initialize("info", logFile)
	require.NoError(t, err)
	defer func() { ClientLog = zap.NewNop() }()

	ClientLog.Info("test message")
	_ = ClientLog.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old logs")
	assert.Contains(t, string(data), "test message")
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestOutputPaths(t *testing.T) {
	{
		// Без файла логи идут в stderr, stdout остается для вывода записи
		paths, err := outputPaths("")
		require.NoError(t, err)
		assert.Equal(t, []string{"stderr"}, paths)
	}
	{
		// Несуществующий файл не является ошибкой
		logFile := filepath.Join(t.TempDir(), "new.log")
		paths, err := outputPaths(logFile)
		require.NoError(t, err)
		assert.Equal(t, []string{logFile}, paths)
	}
	{
		// Существующий файл очищается
		logFile := filepath.Join(t.TempDir(), "old.log")
		require.NoError(t, os.WriteFile(logFile, []byte("old logs\n"), 0644))
		_, err := outputPaths(logFile)
		require.NoError(t, err)
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Empty(t, data)
	}
	{
		// Каталог файла не существует
		_, err := outputPaths(filepath.Join(t.TempDir(), "absent", "client.log"))
		require.NoError(t, err)
	}
}
