package store

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func saveN(t *testing.T, s *BoltStore, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		c := &Capture{
			ReceivedAt: time.Now().Truncate(time.Millisecond),
			Source:     "mqtt",
			Frame:      HexBytes{0x55, byte(i), 0xAA},
			Kind:       "none",
		}
		if err := s.SaveCapture(c); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSaveAndGetCapture(t *testing.T) {
	s := newTestStore(t)

	c := &Capture{
		ReceivedAt: time.Now().Truncate(time.Millisecond),
		Source:     "serial",
		Frame:      HexBytes{0x55, 0x01, 0x02, 0x00, 0x00, 0xCC, 0xAA},
		Kind:       "crc_mismatch",
		Error:      "zbhci: crc is incorrect: expected: 0x03, received: 0xCC",
	}
	if err := s.SaveCapture(c); err != nil {
		t.Fatal(err)
	}
	if c.ID != 1 {
		t.Errorf("id = %d, want 1", c.ID)
	}

	got, err := s.GetCapture(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Frame, c.Frame) {
		t.Errorf("frame = % X, want % X", got.Frame, c.Frame)
	}
	if got.Source != c.Source || got.Kind != c.Kind || got.Error != c.Error {
		t.Errorf("capture = %+v, want %+v", got, c)
	}
	if !got.ReceivedAt.Equal(c.ReceivedAt) {
		t.Errorf("received_at = %v, want %v", got.ReceivedAt, c.ReceivedAt)
	}
	if !got.Failed() {
		t.Error("Failed() = false, want true")
	}
}

func TestGetCaptureNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetCapture(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListCapturesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	saveN(t, s, 5)

	all, err := s.ListCaptures(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Fatalf("captures = %d, want 5", len(all))
	}
	for i, c := range all {
		if want := uint64(5 - i); c.ID != want {
			t.Errorf("captures[%d].ID = %d, want %d", i, c.ID, want)
		}
	}

	limited, err := s.ListCaptures(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 || limited[0].ID != 5 || limited[1].ID != 4 {
		t.Errorf("limited = %+v", limited)
	}
}

func TestPruneKeepsNewest(t *testing.T) {
	s := newTestStore(t)
	saveN(t, s, 6)

	removed, err := s.Prune(2)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 4 {
		t.Errorf("removed = %d, want 4", removed)
	}
	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if _, err := s.GetCapture(6); err != nil {
		t.Errorf("newest capture pruned: %v", err)
	}
	if _, err := s.GetCapture(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("oldest capture kept: %v", err)
	}

	// Sequence keeps counting after a prune.
	saveN(t, s, 1)
	list, _ := s.ListCaptures(1)
	if len(list) != 1 || list[0].ID != 7 {
		t.Errorf("next id = %+v, want 7", list)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.SaveCapture(&Capture{Source: "mqtt", Frame: HexBytes{0x55, 0xAA}, Kind: "short_frame"}); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, err := s2.GetCapture(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != "short_frame" {
		t.Errorf("kind = %q after reopen", got.Kind)
	}
}

func TestHexBytesJSON(t *testing.T) {
	h := HexBytes{0x55, 0x81, 0xAA}
	data, err := h.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"5581aa"` {
		t.Errorf("json = %s", data)
	}
	var back HexBytes
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, h) {
		t.Errorf("decoded = % X", back)
	}
	if err := back.UnmarshalJSON([]byte(`"zz"`)); err == nil {
		t.Error("expected error for invalid hex")
	}
}
