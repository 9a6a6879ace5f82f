package main

import (
	"context"
	"log/slog"
	"os"

	"emailwriter/internal/config"
	"emailwriter/internal/gemini"
	"emailwriter/internal/generator"
	"emailwriter/internal/httpapi"
	"emailwriter/internal/httpserver"
	"emailwriter/internal/logger"
)

type appConfig struct {
	Log    logger.Config
	Gemini gemini.Config
	Server httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Log)

	client := gemini.NewClient(cfg.Gemini)
	svc := generator.NewService(client, log)
	router := httpapi.NewRouter(svc, log)

	log.Info("starting server", slog.String("addr", cfg.Server.Addr))
	if err := httpserver.Run(context.Background(), cfg.Server, router, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
