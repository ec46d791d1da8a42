//go:build !no_serial

package main

import (
	"log/slog"

	"cloudsmets-go/internal/gateway"
	"cloudsmets-go/internal/ingest"
)

type serialStopper struct {
	src *gateway.SerialSource
}

func (s *serialStopper) Stop() {
	if s.src == nil {
		return
	}
	st := s.src.Stats()
	if err := s.src.Close(); err != nil {
		slog.Default().Warn("serial close", "err", err)
	}
	slog.Default().Info("serial source stopped", "frames", st.Frames, "discarded", st.Discarded)
}

func initSerial(cfg *Config, emit func(ingest.Frame), logger *slog.Logger) *serialStopper {
	if !cfg.Serial.Enabled {
		return &serialStopper{}
	}
	logger.Info("opening serial gateway", "port", cfg.Serial.Port, "baud", cfg.Serial.Baud)
	src, err := gateway.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud, emit, logger)
	if err != nil {
		logger.Error("serial gateway", "err", err)
		return &serialStopper{}
	}
	return &serialStopper{src: src}
}
