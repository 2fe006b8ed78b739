// cmd/server/main.go

// Boots the HTTP surface over one shared replay engine: interactive
// transaction ingest, CSV import, and account snapshot queries.
// Configuration comes from the environment; state lives only in memory
// for the lifetime of the process.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"payments/internal/engine"
	"payments/internal/server"
)

type config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	app := server.New(engine.New(), log).App()

	// Shut the listener down cleanly on SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutting down")
		_ = app.Shutdown()
	}()

	log.Info("payments server running", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
