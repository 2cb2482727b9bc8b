package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации клиента.
type Configs struct {
	Address   string `json:"address"`    // аналог переменной окружения PASSENTRY_CLIENT_ADDRESS или флага -a
	LogLevel  string `json:"log_level"`  // аналог переменной окружения PASSENTRY_CLIENT_LOG_LEVEL или флага -l
	LogFile   string `json:"log_file"`   // аналог переменной окружения PASSENTRY_CLIENT_LOG_FILE или флага -log-file
	SecretKey string `json:"secret_key"` // аналог переменной окружения PASSENTRY_CLIENT_SECRET_KEY или флага -secret-key
	Mode      string `json:"mode"`       // аналог переменной окружения PASSENTRY_CLIENT_MODE или флага -mode
	Output    string `json:"output"`     // аналог переменной окружения PASSENTRY_CLIENT_OUTPUT или флага -output
	StoreDir  string `json:"store_dir"`  // аналог переменной окружения PASSENTRY_CLIENT_STORE_DIR или флага -store-dir
	PassBin   string `json:"pass_bin"`   // аналог переменной окружения PASSENTRY_CLIENT_PASS_BIN или флага -pass-bin
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open cofiguration file error: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(bufio.NewReader(f))
	if err := dec.Decode(&configs); err != nil {
		return Configs{}, fmt.Errorf("parse cofiguration file error: %w", err)
	}

	return configs, nil
}
