package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abezemskiy/passentry/internal/common/source"
	repoSource "github.com/abezemskiy/passentry/internal/repositories/source"
	"github.com/abezemskiy/passentry/internal/server/handlers"
	"github.com/abezemskiy/passentry/internal/server/identity/auth"
	"github.com/abezemskiy/passentry/internal/server/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const shutdownWaitPeriod = 20 * time.Second // для установки в контекст для реализации graceful shutdown

func main() {
	err := parseVariables()
	if err != nil {
		log.Fatalf("failed to set global variables, %v", err)
	}

	// создаю источник записей хранилища паролей
	fetcher, err := source.New(sourceKind, passBin, storeDir)
	if err != nil {
		log.Fatalf("Failed to create entry source: %v\n", err)
	}

	run(context.Background(), fetcher)
}

// run будет необходима для инициализации зависимостей сервера перед запуском
func run(ctx context.Context, fetcher repoSource.Fetcher) {
	// Инициализация логера
	if err := logger.Initialize(logLevel); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}

	logger.ServerLog.Info("Running passentry", zap.String("address", netAddr), zap.String("source", sourceKind))

	// запускаю сам сервис с проверкой отмены контекста для реализации graceful shutdown--------------
	srv := &http.Server{
		Addr:    netAddr,
		Handler: EntryRouter(fetcher),
	}
	// Канал для получения сигнала прерывания
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Горутина для запуска сервера
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	// Блокирование до тех пор, пока не поступит сигнал о прерывании
	<-quit
	logger.ServerLog.Info("Shutting down server...", zap.String("address", netAddr))

	ctx, cancel := context.WithTimeout(ctx, shutdownWaitPeriod)
	defer cancel()

	// останавливаю сервер, чтобы он перестал принимать новые запросы
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Stopping server error: %v", err)
	}

	logger.ServerLog.Info("Shutdown the server gracefully", zap.String("address", netAddr))
}

// EntryRouter - дирижирует обработку http запросов к серверу.
func EntryRouter(fetcher repoSource.Fetcher) chi.Router {
	r := chi.NewRouter()

	r.Route("/api/entry", func(r chi.Router) {
		// имя записи pass может содержать "/", поэтому используется wildcard
		r.Post("/decode/*", logger.RequestLogger(auth.Middleware(handlers.DecodeEntryHandler())))
		r.Get("/get/*", logger.RequestLogger(auth.Middleware(handlers.GetEntryHandler(fetcher))))
	})

	// Определяем маршрут по умолчанию для некорректных запросов
	r.NotFound(logger.RequestLogger(handlers.HandleOtherRequest()))

	return r
}
