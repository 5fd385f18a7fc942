// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/gate"
	"github.com/MKhiriev/go-user-gate/internal/handler"
	"github.com/MKhiriev/go-user-gate/internal/handler/http"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/server"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/internal/store"
	"github.com/MKhiriev/go-user-gate/internal/workers"
	"github.com/MKhiriev/go-user-gate/models"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log := logger.New("server", logger.Options{
		Level:  cfg.App.LogLevel,
		Pretty: cfg.App.Env == config.EnvDevelopment,
	})

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server terminated")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	log.Debug().
		Str("env", cfg.App.Env).
		Str("version", cfg.App.Version).
		Str("address", cfg.Server.HTTPAddress).
		Str("gate_mode", cfg.Gate.Mode).
		Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	healthChecks := map[string]http.HealthCheck{
		"database": storages.DB.PingContext,
	}

	// a nil *redis.Client must not reach gate.New as a non-nil Cmdable
	var rdb redis.Cmdable
	if cfg.Gate.Mode == config.GateModeRedis || cfg.Redis.Addr != "" {
		client, err := store.NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		defer client.Close()

		rdb = client
		healthChecks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}

	requestGate, err := gate.New(*cfg, rdb, log)
	if err != nil {
		return fmt.Errorf("error creating gate: %w", err)
	}

	background := workers.NewWorkers()
	if local, ok := requestGate.(*gate.LocalGate); ok {
		background.Add(workers.NewGateSweeper(local, cfg.Gate.IdleTTL/2, log))
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(handler.Dependencies{
		Services:     services,
		Gate:         requestGate,
		HealthChecks: healthChecks,
	}, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
