package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"cloudsmets-go/internal/ingest"
	"cloudsmets-go/internal/mqtt"
	"cloudsmets-go/internal/store"
	"cloudsmets-go/internal/zbhci"
	"cloudsmets-go/internal/zcl"
	"cloudsmets-go/internal/zcl/clusters"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

type Config struct {
	MQTT struct {
		Enabled         bool   `yaml:"enabled"`
		Broker          string `yaml:"broker"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		ClientID        string `yaml:"client_id"` // generated when empty
		Topic           string `yaml:"topic"`
		QoS             byte   `yaml:"qos"`
		PayloadEncoding string `yaml:"payload_encoding"` // raw, hex, base64
		StatusTopic     string `yaml:"status_topic"`
	} `yaml:"mqtt"`
	Serial struct {
		Enabled bool   `yaml:"enabled"`
		Port    string `yaml:"port"`
		Baud    int    `yaml:"baud"`
	} `yaml:"serial"`
	Store struct {
		Path        string `yaml:"path"`
		Capture     string `yaml:"capture"` // all, errors, none
		MaxCaptures int    `yaml:"max_captures"`
	} `yaml:"store"`
	Workers      int    `yaml:"workers"`
	QueueSize    int    `yaml:"queue_size"`
	ClustersFile string `yaml:"clusters_file"`
	Log          struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func (c *Config) validate() error {
	if !c.MQTT.Enabled && !c.Serial.Enabled {
		return fmt.Errorf("at least one of mqtt.enabled or serial.enabled must be set")
	}
	if c.MQTT.Enabled {
		if c.MQTT.Broker == "" {
			return fmt.Errorf("mqtt.broker is required when mqtt is enabled")
		}
		if c.MQTT.Topic == "" {
			return fmt.Errorf("mqtt.topic is required when mqtt is enabled")
		}
		if c.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0-2, got %d", c.MQTT.QoS)
		}
	}
	if _, err := mqtt.ParseEncoding(c.MQTT.PayloadEncoding); err != nil {
		return fmt.Errorf("mqtt.payload_encoding: %w", err)
	}
	if c.Serial.Enabled && c.Serial.Port == "" {
		return fmt.Errorf("serial.port is required when serial is enabled")
	}
	if _, err := ingest.ParseCaptureMode(c.Store.Capture); err != nil {
		return fmt.Errorf("store.capture: %w", err)
	}
	if c.Store.MaxCaptures < 0 {
		return fmt.Errorf("store.max_captures must not be negative")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue_size must be at least 1, got %d", c.QueueSize)
	}
	return nil
}

func main() {
	// Temporary logger for config loading errors.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		bootLogger.Error("load config", "err", err)
		os.Exit(1)
	}

	if err := cfg.validate(); err != nil {
		bootLogger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	logger.Info("cloudsmets-receiver starting", "version", version)

	registry, err := loadRegistry(cfg.ClustersFile, logger)
	if err != nil {
		logger.Error("load cluster definitions", "err", err)
		os.Exit(1)
	}
	logger.Info("ZCL registry initialized", "clusters", len(registry.All()))

	capture, _ := ingest.ParseCaptureMode(cfg.Store.Capture)
	var db store.Store
	if capture != ingest.CaptureNone {
		bolt, err := store.NewBoltStore(cfg.Store.Path)
		if err != nil {
			logger.Error("open store", "err", err)
			os.Exit(1)
		}
		defer bolt.Close()
		db = bolt
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := ingest.NewEventBus(logger)
	var drops ingest.DropCounter
	events.Subscribe(drops.Observe, ingest.EventFrameDropped)
	pipeline := ingest.NewPipeline(zbhci.NewResolver(registry), db, capture, events, logger)
	pool := ingest.NewPool(pipeline, cfg.Workers, cfg.QueueSize, logger)
	poolDone := make(chan error, 1)
	go func() { poolDone <- pool.Run(ctx) }()

	if db != nil && cfg.Store.MaxCaptures > 0 {
		go pruneLoop(ctx, db, cfg.Store.MaxCaptures, logger)
	}

	submit := func(f ingest.Frame) { pool.Submit(f) }

	// Sources are no-ops when built with the no_mqtt / no_serial tags.
	mqttSrc := initMQTT(cfg, submit, logger)
	serialSrc := initSerial(cfg, submit, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	signal.Stop(sigCh)
	logger.Info("shutting down", "signal", sig)

	mqttSrc.Stop()
	serialSrc.Stop()

	// Let the workers drain what is queued, then force them off.
	pool.Close()
	select {
	case <-poolDone:
	case <-time.After(10 * time.Second):
		logger.Warn("workers did not drain in time")
		cancel()
		<-poolDone
	}

	st := pipeline.Stats()
	logger.Info("goodbye",
		"decoded", st.Decoded,
		"dropped", st.Dropped,
		"captured", st.Captured,
		"rejected", pool.Rejected(),
		"drops_by_kind", drops.Snapshot(),
	)
}

// loadRegistry builds the metadata registry from the built-in clusters and
// an optional overlay file. Built-in entries win over overlay entries.
func loadRegistry(path string, logger *slog.Logger) (*zcl.Registry, error) {
	defs := clusters.Standard()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read clusters file: %w", err)
		}
		overlay, err := zcl.ParseClusterDefs(data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, overlay...)
		logger.Info("cluster overlay loaded", "path", path, "clusters", len(overlay))
	}
	return zcl.NewRegistry(defs, zcl.WithLogger(logger)), nil
}

func pruneLoop(ctx context.Context, db store.Store, keep int, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		if n, err := db.Prune(keep); err != nil {
			logger.Error("prune captures", "err", err)
		} else if n > 0 {
			logger.Debug("captures pruned", "removed", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = "cloudsmets/+/zbhci"
	}
	if cfg.MQTT.PayloadEncoding == "" {
		cfg.MQTT.PayloadEncoding = string(mqtt.EncodingRaw)
	}
	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = 115200
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "cloudsmets.db"
	}
	if cfg.Store.Capture == "" {
		cfg.Store.Capture = string(ingest.CaptureErrors)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 64
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	return &cfg, nil
}

func newLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
