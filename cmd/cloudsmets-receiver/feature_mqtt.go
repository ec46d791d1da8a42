//go:build !no_mqtt

package main

import (
	"log/slog"

	"cloudsmets-go/internal/ingest"
	"cloudsmets-go/internal/mqtt"
)

type mqttStopper struct {
	receiver *mqtt.Receiver
}

func (m *mqttStopper) Stop() {
	if m.receiver != nil {
		m.receiver.Stop()
	}
}

func initMQTT(cfg *Config, emit func(ingest.Frame), logger *slog.Logger) *mqttStopper {
	if !cfg.MQTT.Enabled {
		return &mqttStopper{}
	}
	enc, _ := mqtt.ParseEncoding(cfg.MQTT.PayloadEncoding)
	receiver, err := mqtt.NewReceiver(mqtt.Config{
		Broker:      cfg.MQTT.Broker,
		Username:    cfg.MQTT.Username,
		Password:    cfg.MQTT.Password,
		ClientID:    cfg.MQTT.ClientID,
		Topic:       cfg.MQTT.Topic,
		QoS:         cfg.MQTT.QoS,
		Encoding:    enc,
		StatusTopic: cfg.MQTT.StatusTopic,
	}, emit, logger)
	if err != nil {
		logger.Error("mqtt receiver", "err", err)
		return &mqttStopper{}
	}
	return &mqttStopper{receiver: receiver}
}
