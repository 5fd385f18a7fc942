// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted from
// a JSON file. Durations are written as strings ("30s", "1d").
type StructuredJSONConfig struct {
	App struct {
		Env      string `json:"env"`
		LogLevel string `json:"log_level"`
		Version  string `json:"version"`
		Name     string `json:"name"`
	} `json:"app,omitempty"`

	Auth struct {
		Secret    string   `json:"secret"`
		ExpiresIn Duration `json:"expires_in"`
		Issuer    string   `json:"issuer"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			MaxOpenConns int      `json:"max_open_conns"`
			MaxIdleConns int      `json:"max_idle_conns"`
			ConnTimeout  Duration `json:"conn_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Gate struct {
		Mode         string   `json:"mode"`
		URL          string   `json:"url"`
		APIKey       string   `json:"api_key"`
		Timeout      Duration `json:"timeout"`
		BotDetection bool     `json:"bot_detection"`
		IdleTTL      Duration `json:"idle_ttl"`
	} `json:"gate,omitempty"`

	RateLimit struct {
		Admin  int      `json:"admin"`
		User   int      `json:"user"`
		Guest  int      `json:"guest"`
		Window Duration `json:"window"`
	} `json:"rate_limit,omitempty"`

	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:      jsonCfg.App.Env,
			LogLevel: jsonCfg.App.LogLevel,
			Version:  jsonCfg.App.Version,
			Name:     jsonCfg.App.Name,
		},
		Auth: Auth{
			Secret:    jsonCfg.Auth.Secret,
			ExpiresIn: jsonCfg.Auth.ExpiresIn,
			Issuer:    jsonCfg.Auth.Issuer,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
				ConnTimeout:  time.Duration(jsonCfg.Storage.DB.ConnTimeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Gate: Gate{
			Mode:         jsonCfg.Gate.Mode,
			URL:          jsonCfg.Gate.URL,
			APIKey:       jsonCfg.Gate.APIKey,
			Timeout:      time.Duration(jsonCfg.Gate.Timeout),
			BotDetection: jsonCfg.Gate.BotDetection,
			IdleTTL:      time.Duration(jsonCfg.Gate.IdleTTL),
		},
		RateLimit: RateLimit{
			Admin:  jsonCfg.RateLimit.Admin,
			User:   jsonCfg.RateLimit.User,
			Guest:  jsonCfg.RateLimit.Guest,
			Window: time.Duration(jsonCfg.RateLimit.Window),
		},
		Redis: Redis{
			Addr:     jsonCfg.Redis.Addr,
			Password: jsonCfg.Redis.Password,
			DB:       jsonCfg.Redis.DB,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
