package gateway

import (
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"
	"testing"
	"time"

	"cloudsmets-go/internal/ingest"
	"cloudsmets-go/internal/zbhci"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testFrame(seq byte) []byte {
	payload := []byte{0x12, 0x34, 0x01, 0x01, seq, 0x07, 0x02, 0x00}
	f := []byte{zbhci.FrameStart}
	f = binary.BigEndian.AppendUint16(f, zbhci.CmdReadAttributesResponse)
	f = binary.BigEndian.AppendUint16(f, uint16(len(payload)))
	f = append(f, 0)
	f = append(f, payload...)
	f = append(f, zbhci.FrameEnd)
	f[5] = zbhci.CRC8(zbhci.CmdReadAttributesResponse, uint16(len(payload)), f, 6)
	return f
}

func TestSerialSourceEmitsFrames(t *testing.T) {
	pr, pw := io.Pipe()
	frames := make(chan ingest.Frame, 4)
	s := NewSerialSource(pr, "pipe", func(f ingest.Frame) { frames <- f }, testLogger())
	defer s.Close()

	a, b := testFrame(1), testFrame(2)
	go func() {
		// Noise, then a frame split across writes, then a second frame.
		pw.Write([]byte{0x00, 0xFF})
		pw.Write(a[:4])
		pw.Write(append(a[4:], b...))
	}()

	for i, want := range [][]byte{a, b} {
		select {
		case f := <-frames:
			if f.Source != SourceName {
				t.Errorf("source = %q", f.Source)
			}
			if !bytes.Equal(f.Data, want) {
				t.Errorf("frame %d = % X, want % X", i, f.Data, want)
			}
			if _, err := zbhci.Decode(f.Data); err != nil {
				t.Errorf("frame %d: %v", i, err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for frame %d", i)
		}
	}

	st := s.Stats()
	if st.Frames != 2 || st.Discarded != 2 {
		t.Errorf("stats = %+v", st)
	}
}

func TestSerialSourceCloseStopsReader(t *testing.T) {
	pr, _ := io.Pipe()
	s := NewSerialSource(pr, "pipe", func(ingest.Frame) {}, testLogger())

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	// Second close is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
