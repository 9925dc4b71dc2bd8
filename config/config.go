// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"time"
)

type Config struct {
	HTTPAddr       string   `json:"httpAddr"`
	AllowedOrigins []string `json:"allowedOrigins"`

	ReadTimeout       time.Duration `json:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout"`
	ShutdownTimeout   time.Duration `json:"shutdownTimeout"`

	NetworkID uint32 `json:"networkID"`

	// LogLevel is any level accepted by zap ("debug", "info", ...).
	LogLevel string `json:"logLevel"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		HTTPAddr:          ":9650",
		AllowedOrigins:    []string{"*"},
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		NetworkID:         1,
		LogLevel:          "info",
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
