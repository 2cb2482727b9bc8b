package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/abezemskiy/passentry/internal/client/config"
	"github.com/abezemskiy/passentry/internal/common/source"
	"github.com/abezemskiy/passentry/internal/repositories/entry"
)

// Режимы работы клиента.
const (
	modeLocal  = "local"  // запись получается из pass и разбирается на клиенте
	modeRemote = "remote" // запись разбирается на сервере
)

// Форматы вывода записи.
const (
	outputJSON = "json"
	outputTUI  = "tui"
)

var (
	netAddr    string // адрес сервера
	logLevel   string // уровень логирования
	logFile    string // путь к файлу логов
	configFile string // путь к файлу конфигурации
	secretKey  string // секретный ключ для генерации JWT
	mode       string // режим работы: local или remote
	output     string // формат вывода: json или tui
	storeDir   string // путь к хранилищу паролей
	passBin    string // путь к исполняемому файлу pass
	field      string // поле записи для вывода
	fromStdin  bool   // читать текст записи из stdin
	fetch      bool   // в режиме remote получить запись из хранилища сервера
	entryName  string // имя записи, первый позиционный аргумент
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()
	setDefaults()

	// Проверка корректности установки глобальных переменных
	return checkVariables()
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address of passentry server")
	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&logFile, "log-file", "", "path to log file")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flag.StringVar(&mode, "mode", "", "mode: local or remote")
	flag.StringVar(&output, "output", "", "output format: json or tui")
	flag.StringVar(&storeDir, "store-dir", "", "password store directory")
	flag.StringVar(&passBin, "pass-bin", "", "path to pass executable")
	flag.StringVar(&field, "field", "", "print only one field: name, password, login, url or notes")
	flag.BoolVar(&fromStdin, "stdin", false, "read entry text from stdin")
	flag.BoolVar(&fetch, "fetch", false, "fetch entry from server password store in remote mode")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
	entryName = flag.Arg(0)
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
	if logFile == "" {
		logFile = configs.LogFile
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if mode == "" {
		mode = configs.Mode
	}
	if output == "" {
		output = configs.Output
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
		netAddr = os.Getenv("PASSENTRY_CLIENT_ADDRESS")
	}
	if logLevel == "" {
		logLevel = os.Getenv("PASSENTRY_CLIENT_LOG_LEVEL")
	}
	if logFile == "" {
		logFile = os.Getenv("PASSENTRY_CLIENT_LOG_FILE")
	}
	if secretKey == "" {
		secretKey = os.Getenv("PASSENTRY_CLIENT_SECRET_KEY")
	}
	if mode == "" {
		mode = os.Getenv("PASSENTRY_CLIENT_MODE")
	}
	if output == "" {
		output = os.Getenv("PASSENTRY_CLIENT_OUTPUT")
	}
	if storeDir == "" {
		storeDir = os.Getenv("PASSENTRY_CLIENT_STORE_DIR")
	}
	if passBin == "" {
		passBin = os.Getenv("PASSENTRY_CLIENT_PASS_BIN")
	}
}

// setDefaults - функция для установки значений по умолчанию для необязательных параметров.
func setDefaults() {
	if logLevel == "" {
		logLevel = "error"
	}
	if mode == "" {
		mode = modeLocal
	}
	if output == "" {
		output = outputJSON
	}
	if passBin == "" {
		passBin = source.DefaultPassBin
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
func checkVariables() error {
	if entryName == "" {
		return fmt.Errorf("entry name must be set")
	}
	if output != outputJSON && output != outputTUI {
		return fmt.Errorf("unknown output format %s", output)
	}
	if field != "" {
		if _, err := (entry.Entry{}).Field(field); err != nil {
			return err
		}
	}
	switch mode {
	case modeLocal:
		if fetch {
			return fmt.Errorf("flag -fetch is allowed only in %s mode", modeRemote)
		}
	case modeRemote:
		if netAddr == "" {
			return fmt.Errorf("address of server must be set in %s mode", modeRemote)
		}
		if secretKey == "" {
			return fmt.Errorf("secret key must be set in %s mode", modeRemote)
		}
		if fetch == fromStdin {
			return fmt.Errorf("exactly one of -fetch or -stdin must be set in %s mode", modeRemote)
		}
	default:
		return fmt.Errorf("unknown mode %s", mode)
	}
	return nil
}
