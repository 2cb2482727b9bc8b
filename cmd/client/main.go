package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abezemskiy/passentry/internal/client/handlers"
	"github.com/abezemskiy/passentry/internal/client/identity/auth"
	"github.com/abezemskiy/passentry/internal/client/logger"
	"github.com/abezemskiy/passentry/internal/client/tui"
	"github.com/abezemskiy/passentry/internal/client/tui/app"
	"github.com/abezemskiy/passentry/internal/client/tui/view"
	"github.com/abezemskiy/passentry/internal/common/identity/tools/id"
	"github.com/abezemskiy/passentry/internal/common/identity/tools/token"
	"github.com/abezemskiy/passentry/internal/common/source"
	"github.com/abezemskiy/passentry/internal/repositories/entry"
	repoSource "github.com/abezemskiy/passentry/internal/repositories/source"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// expireToken - время действия JWT клиента в часах. Токен создается на каждый запрос.
const expireToken = 1

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// инициализация логера
	if err := logger.Initialize(logLevel, logFile); err != nil {
		log.Fatalf("Error starting client: %v", err)
	}
	defer logger.ClientLog.Sync()

	// Канал для получения сигнала прерывания, по сигналу отменяю контекст запроса
	ctx, cancelCtx := context.WithCancel(context.Background())
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.ClientLog.Info("Interrupting client...")
		cancelCtx()
	}()

	e, err := getEntry(ctx, os.Stdin)
	cancelCtx()
	if err != nil {
		logger.ClientLog.Error("failed to get entry", zap.String("name", entryName), zap.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := printEntry(e, os.Stdout); err != nil {
		logger.ClientLog.Error("failed to print entry", zap.String("name", entryName), zap.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getEntry - функция для получения разобранной записи в соответствии с режимом работы клиента.
func getEntry(ctx context.Context, stdin io.Reader) (entry.Entry, error) {
	switch mode {
	case modeRemote:
		return getRemoteEntry(ctx, stdin)
	default:
		var fetcher repoSource.Fetcher = source.NewPassFetcher(passBin, storeDir)
		if fromStdin {
			fetcher = source.NewReaderFetcher(stdin)
		}
		logger.ClientLog.Debug("decode local entry", zap.String("name", entryName), zap.Bool("stdin", fromStdin))
		return handlers.GetLocalEntry(ctx, fetcher, entryName)
	}
}

// getRemoteEntry - функция для получения записи с сервера.
func getRemoteEntry(ctx context.Context, stdin io.Reader) (entry.Entry, error) {
	// Идентификатор клиента новый для каждого запуска
	clientID, err := id.GenerateID()
	if err != nil {
		return entry.Entry{}, err
	}
	token.SetSecretKey(secretKey)
	token.SetExpireHour(expireToken)

	// Инициализирую resty клиента с мидлварью аутентификации
	client := resty.New()
	client.OnBeforeRequest(auth.OnBeforeMiddleware(clientID))

	logger.ClientLog.Debug("request entry from server", zap.String("name", entryName), zap.String("server address", netAddr),
		zap.String("client", clientID), zap.Bool("fetch", fetch))

	if fetch {
		return handlers.GetRemoteEntry(ctx, client, netAddr, entryName)
	}

	data, err := source.NewReaderFetcher(stdin).Fetch(ctx, entryName)
	if err != nil {
		return entry.Entry{}, err
	}
	return handlers.DecodeRemote(ctx, client, netAddr, entryName, data)
}

// printEntry - функция для вывода записи в выбранном формате.
func printEntry(e entry.Entry, stdout io.Writer) error {
	if output == outputTUI && field == "" {
		tuiApp := app.NewApp([]app.Primitives{
			{
				Name: tui.Entry,
				Prim: view.Page(e),
			},
		})
		return tuiApp.Run()
	}
	return handlers.PrintEntry(stdout, e, field)
}
