// Package ingest turns raw frames from a transport into decoded messages:
// it decodes, resolves display names, logs, captures and publishes events.
package ingest

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cloudsmets-go/internal/store"
	"cloudsmets-go/internal/zbhci"
)

// Frame is one raw frame as handed over by a transport.
type Frame struct {
	Source     string
	ReceivedAt time.Time
	Data       []byte
}

// CaptureMode selects which frames are persisted.
type CaptureMode string

const (
	CaptureAll    CaptureMode = "all"
	CaptureErrors CaptureMode = "errors"
	CaptureNone   CaptureMode = "none"
)

// ParseCaptureMode validates a capture mode name. An empty name means none.
func ParseCaptureMode(s string) (CaptureMode, error) {
	switch m := CaptureMode(s); m {
	case CaptureAll, CaptureErrors, CaptureNone:
		return m, nil
	case "":
		return CaptureNone, nil
	}
	return "", fmt.Errorf("unknown capture mode %q (want all, errors or none)", s)
}

// Stats counts pipeline outcomes.
type Stats struct {
	Decoded       uint64 `json:"decoded"`
	Dropped       uint64 `json:"dropped"`
	Captured      uint64 `json:"captured"`
	CaptureFailed uint64 `json:"capture_failed"`
}

// Pipeline handles frames. It is safe for concurrent use by several workers.
type Pipeline struct {
	resolver *zbhci.Resolver
	store    store.Store // nil disables capture
	capture  CaptureMode
	events   *EventBus
	logger   *slog.Logger

	decoded       atomic.Uint64
	dropped       atomic.Uint64
	captured      atomic.Uint64
	captureFailed atomic.Uint64
}

// NewPipeline creates a pipeline. A nil resolver uses zbhci.DefaultResolver;
// a nil store disables capture regardless of mode.
func NewPipeline(resolver *zbhci.Resolver, st store.Store, capture CaptureMode, events *EventBus, logger *slog.Logger) *Pipeline {
	if resolver == nil {
		resolver = zbhci.DefaultResolver()
	}
	if st == nil {
		capture = CaptureNone
	}
	return &Pipeline{
		resolver: resolver,
		store:    st,
		capture:  capture,
		events:   events,
		logger:   logger.With("component", "ingest"),
	}
}

// Handle decodes one frame. The returned error is the decode or lookup
// failure that caused the frame to be dropped; it has already been logged.
func (p *Pipeline) Handle(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.ReceivedAt.IsZero() {
		f.ReceivedAt = time.Now()
	}

	msg, err := zbhci.Decode(f.Data)
	if err != nil {
		p.drop(f, err)
		return err
	}
	rendered, err := p.resolver.RenderMessage(msg)
	if err != nil {
		p.drop(f, err)
		return err
	}

	p.decoded.Add(1)
	p.logger.Info("message decoded",
		"source", f.Source,
		"src_addr", fmt.Sprintf("0x%04X", msg.Command.SourceAddress),
		"cluster", fmt.Sprintf("0x%04X", msg.Command.ClusterID),
		"seq", msg.Command.SequenceNumber,
		"attributes", len(rendered),
	)
	for _, a := range rendered {
		p.logger.Debug("attribute", "id", fmt.Sprintf("0x%04X", a.ID), "name", a.Name, "type", a.Type, "value", a.Value)
	}

	if p.capture == CaptureAll {
		p.save(f, nil)
	}
	if p.events != nil {
		p.events.Emit(Event{Type: EventMessageDecoded, Data: DecodedMessage{
			Source:     f.Source,
			ReceivedAt: f.ReceivedAt,
			Message:    msg,
			Attributes: rendered,
		}})
	}
	return nil
}

func (p *Pipeline) drop(f Frame, err error) {
	p.dropped.Add(1)
	kind := zbhci.KindOf(err)
	p.logger.Warn("frame dropped",
		"source", f.Source,
		"kind", kind.String(),
		"err", err,
		"frame", hex.EncodeToString(f.Data),
	)
	if p.capture == CaptureAll || p.capture == CaptureErrors {
		p.save(f, err)
	}
	if p.events != nil {
		p.events.Emit(Event{Type: EventFrameDropped, Data: DroppedFrame{
			Source:     f.Source,
			ReceivedAt: f.ReceivedAt,
			Kind:       kind.String(),
			Error:      err.Error(),
			Frame:      f.Data,
		}})
	}
}

func (p *Pipeline) save(f Frame, decodeErr error) {
	c := &store.Capture{
		ReceivedAt: f.ReceivedAt,
		Source:     f.Source,
		Frame:      store.HexBytes(f.Data),
		Kind:       zbhci.KindOf(decodeErr).String(),
	}
	if decodeErr != nil {
		c.Error = decodeErr.Error()
	}
	if err := p.store.SaveCapture(c); err != nil {
		p.captureFailed.Add(1)
		p.logger.Error("capture frame", "err", err)
		return
	}
	p.captured.Add(1)
}

// Stats returns a snapshot of the counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Decoded:       p.decoded.Load(),
		Dropped:       p.dropped.Load(),
		Captured:      p.captured.Load(),
		CaptureFailed: p.captureFailed.Load(),
	}
}
