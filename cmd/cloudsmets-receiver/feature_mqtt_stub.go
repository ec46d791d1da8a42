//go:build no_mqtt

package main

import (
	"log/slog"

	"cloudsmets-go/internal/ingest"
)

type mqttStopper struct{}

func (m *mqttStopper) Stop() {}

func initMQTT(cfg *Config, _ func(ingest.Frame), logger *slog.Logger) *mqttStopper {
	if cfg.MQTT.Enabled {
		logger.Warn("mqtt enabled in config but binary built with no_mqtt")
	}
	return &mqttStopper{}
}
