package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "order-viewer/docs"
	"order-viewer/internal/app"
	"order-viewer/internal/backend"
	"order-viewer/internal/config"
	"order-viewer/internal/handler"
	"order-viewer/internal/service"

	"github.com/joho/godotenv"
)

// @title           Order Viewer API
// @version         1.0
// @description     Lookup front end over the order service read API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	client := backend.NewClient(logger, conf.Backend)
	lookup := service.NewLookupService(logger, client)
	httpHandler := handler.NewHTTPHandler(logger, lookup)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := app.Run(ctx); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
