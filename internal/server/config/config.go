package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации сервера.
type Configs struct {
	Address     string `json:"address"`      // аналог переменной окружения PASSENTRY_SERVER_ADDRESS или флага -a
	LogLevel    string `json:"log_level"`    // аналог переменной окружения PASSENTRY_SERVER_LOG_LEVEL или флага -l
	SecretKey   string `json:"secret_key"`   // аналог переменной окружения PASSENTRY_SERVER_SECRET_KEY или флага -secret-key
	ExpireToken int    `json:"expire_token"` // аналог переменной окружения PASSENTRY_SERVER_EXPIRE_TOKEN или флага -expire-token
	Source      string `json:"source"`       // аналог переменной окружения PASSENTRY_SERVER_SOURCE или флага -source
	StoreDir    string `json:"store_dir"`    // аналог переменной окружения PASSENTRY_SERVER_STORE_DIR или флага -store-dir
	PassBin     string `json:"pass_bin"`     // аналог переменной окружения PASSENTRY_SERVER_PASS_BIN или флага -pass-bin
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open cofiguration file error: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse cofiguration file error: %w", err)
	}

	return configs, nil
}
