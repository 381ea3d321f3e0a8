package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	apphttp "pehlione.com/storefront/internal/http"

	"pehlione.com/storefront/internal/config"
	"pehlione.com/storefront/internal/modules/catalog"
	"pehlione.com/storefront/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	assets, err := storage.FromConfig(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("storage_ready", slog.String("driver", assets.Driver))

	if cfg.Admin.PasswordHash == "" {
		logger.Warn("admin_auth_disabled", slog.String("env", cfg.Env))
	}

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Config:  cfg,
		Catalog: catalog.NewService(catalog.NewStaticRepo()),
		Assets:  assets.Storage,
	})

	logger.Info("listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
