//go:build no_serial

package main

import (
	"log/slog"

	"cloudsmets-go/internal/ingest"
)

type serialStopper struct{}

func (s *serialStopper) Stop() {}

func initSerial(cfg *Config, _ func(ingest.Frame), logger *slog.Logger) *serialStopper {
	if cfg.Serial.Enabled {
		logger.Warn("serial enabled in config but binary built with no_serial")
	}
	return &serialStopper{}
}
