package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/abezemskiy/passentry/internal/common/identity/tools/token"
	"github.com/abezemskiy/passentry/internal/common/source"
	"github.com/abezemskiy/passentry/internal/server/config"
)

// defaultExpireToken - время действия JWT в часах по умолчанию.
const defaultExpireToken = 1

var (
	netAddr     string // адрес запуска сервиса
	logLevel    string // уровень логирования
	configFile  string // путь к файлу конфигурации
	secretKey   string // секретный ключ для проверки JWT
	expireToken int    // время действия JWT
	sourceKind  string // тип источника записей: pass или file
	storeDir    string // путь к хранилищу паролей
	passBin     string // путь к исполняемому файлу pass
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()
	setDefaults()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}

	// Устанавливаю полученные значения глобальных переменных
	token.SetSecretKey(secretKey)
	token.SetExpireHour(expireToken)
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for checking JWT")
	flagExpireToken := flag.Int("expire-token", 0, "JWT expiration date in hours")
	flag.StringVar(&sourceKind, "source", "", "entry source: pass or file")
	flag.StringVar(&storeDir, "store-dir", "", "password store directory")
	flag.StringVar(&passBin, "pass-bin", "", "path to pass executable")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	expireToken = *flagExpireToken
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if expireToken == 0 {
		expireToken = configs.ExpireToken
	}
	if sourceKind == "" {
		sourceKind = configs.Source
	}
	if storeDir == "" {
		storeDir = configs.StoreDir
	}
	if passBin == "" {
		passBin = configs.PassBin
	}
}

// parseEnvironment - функция для переопределения конфигурации из переменных окружения.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("PASSENTRY_SERVER_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("PASSENTRY_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("PASSENTRY_SERVER_SECRET_KEY")
	}
	if expireToken == 0 {
		envExpireToken := os.Getenv("PASSENTRY_SERVER_EXPIRE_TOKEN")
		if envExpireToken != "" {
			expire, err := strconv.Atoi(envExpireToken)
			if err == nil {
				expireToken = expire
			}
		}
	}
	if sourceKind == "" {
		sourceKind = os.Getenv("PASSENTRY_SERVER_SOURCE")
	}
	if storeDir == "" {
		storeDir = os.Getenv("PASSENTRY_SERVER_STORE_DIR")
	}
	if passBin == "" {
		passBin = os.Getenv("PASSENTRY_SERVER_PASS_BIN")
	}
}

// setDefaults - функция для установки значений по умолчанию для необязательных параметров.
func setDefaults() {
	if expireToken == 0 {
		expireToken = defaultExpireToken
	}
	if sourceKind == "" {
		sourceKind = source.PASS
	}
	if passBin == "" {
		passBin = source.DefaultPassBin
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	if sourceKind != source.PASS && sourceKind != source.FILE {
		return fmt.Errorf("unknown entry source %s", sourceKind)
	}
	if sourceKind == source.FILE && storeDir == "" {
		return fmt.Errorf("store directory must be set for source %s", source.FILE)
	}
	return nil
}
