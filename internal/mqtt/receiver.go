//go:build !no_mqtt

// Package mqtt receives ZBHCI frames published by the gateway to an MQTT broker.
package mqtt

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"cloudsmets-go/internal/ingest"
)

// SourceName tags frames received over MQTT.
const SourceName = "mqtt"

// Config holds MQTT receiver configuration.
type Config struct {
	Broker      string
	Username    string
	Password    string
	ClientID    string
	Topic       string // frames arrive here; wildcards allowed
	QoS         byte
	Encoding    Encoding
	StatusTopic string // optional retained online/offline topic
}

// Receiver subscribes to the gateway topic and hands every payload to emit.
type Receiver struct {
	client   pahomqtt.Client
	cfg      Config
	emit     func(ingest.Frame)
	logger   *slog.Logger
	received atomic.Uint64
	invalid  atomic.Uint64
}

// NewReceiver creates and connects an MQTT receiver. The subscription is
// (re)established on every connect.
func NewReceiver(cfg Config, emit func(ingest.Frame), logger *slog.Logger) (*Receiver, error) {
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID()
	}
	r := newReceiver(cfg, emit, logger)

	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c pahomqtt.Client) {
			r.logger.Info("MQTT connected")
			r.publishStatus(c, "online")
			r.subscribe(c)
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			r.logger.Warn("MQTT connection lost", "err", err)
		})

	if cfg.StatusTopic != "" {
		opts.SetWill(cfg.StatusTopic, "offline", 1, true)
	}
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	r.client = client
	return r, nil
}

// DefaultClientID returns a client ID unique to this process. Brokers
// disconnect the older of two sessions sharing an ID.
func DefaultClientID() string {
	return "cloudsmets-receiver-" + uuid.NewString()[:8]
}

func newReceiver(cfg Config, emit func(ingest.Frame), logger *slog.Logger) *Receiver {
	return &Receiver{
		cfg:    cfg,
		emit:   emit,
		logger: logger.With("component", "mqtt"),
	}
}

func (r *Receiver) subscribe(c pahomqtt.Client) {
	token := c.Subscribe(r.cfg.Topic, r.cfg.QoS, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		r.handlePayload(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(10 * time.Second) {
		r.logger.Error("MQTT subscribe timeout", "topic", r.cfg.Topic)
		return
	}
	if err := token.Error(); err != nil {
		r.logger.Error("MQTT subscribe", "topic", r.cfg.Topic, "err", err)
		return
	}
	r.logger.Info("MQTT subscribed", "topic", r.cfg.Topic, "qos", r.cfg.QoS)
}

func (r *Receiver) handlePayload(topic string, payload []byte) {
	r.received.Add(1)
	frame, err := r.cfg.Encoding.Decode(payload)
	if err != nil {
		r.invalid.Add(1)
		r.logger.Warn("MQTT payload rejected", "topic", topic, "encoding", r.cfg.Encoding, "err", err)
		return
	}
	r.logger.Debug("MQTT frame received", "topic", topic, "len", len(frame))
	r.emit(ingest.Frame{Source: SourceName, ReceivedAt: time.Now(), Data: frame})
}

func (r *Receiver) publishStatus(c pahomqtt.Client, state string) {
	if r.cfg.StatusTopic == "" {
		return
	}
	token := c.Publish(r.cfg.StatusTopic, 1, true, state)
	go func() {
		if !token.WaitTimeout(5 * time.Second) {
			r.logger.Warn("MQTT publish timeout", "topic", r.cfg.StatusTopic)
		} else if err := token.Error(); err != nil {
			r.logger.Warn("MQTT publish failed", "topic", r.cfg.StatusTopic, "err", err)
		}
	}()
}

// Counts returns how many payloads arrived and how many were rejected
// before reaching the pipeline.
func (r *Receiver) Counts() (received, invalid uint64) {
	return r.received.Load(), r.invalid.Load()
}

// Stop publishes the offline state, unsubscribes and disconnects.
func (r *Receiver) Stop() {
	if r.cfg.StatusTopic != "" {
		r.client.Publish(r.cfg.StatusTopic, 1, true, "offline").WaitTimeout(2 * time.Second)
	}
	r.client.Unsubscribe(r.cfg.Topic).WaitTimeout(2 * time.Second)
	r.client.Disconnect(1000)
	r.logger.Info("MQTT receiver stopped")
}
