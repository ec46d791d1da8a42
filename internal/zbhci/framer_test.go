package zbhci

import (
	"bytes"
	"testing"
)

func TestFramerSplitsStream(t *testing.T) {
	a := meterFrame()
	b := buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader))

	var f Framer
	stream := append(append([]byte{0x00, 0x13}, a...), b...)
	// Feed a byte at a time to exercise partial frames.
	var got [][]byte
	for _, c := range stream {
		f.Write([]byte{c})
		for {
			frame, ok := f.Next()
			if !ok {
				break
			}
			got = append(got, frame)
		}
	}
	if len(got) != 2 {
		t.Fatalf("frames = %d, want 2", len(got))
	}
	if !bytes.Equal(got[0], a) || !bytes.Equal(got[1], b) {
		t.Errorf("frames = % X", got)
	}
	st := f.Stats()
	if st.Frames != 2 || st.Discarded != 2 {
		t.Errorf("stats = %+v, want 2 frames, 2 discarded", st)
	}
	if f.Buffered() != 0 {
		t.Errorf("buffered = %d, want 0", f.Buffered())
	}
	if _, err := Decode(got[0]); err != nil {
		t.Errorf("Decode: %v", err)
	}
}

func TestFramerResyncsOnBadEndMarker(t *testing.T) {
	good := meterFrame()
	bad := append([]byte(nil), good...)
	bad[len(bad)-1] = 0x00

	var f Framer
	f.Write(bad)
	f.Write(good)

	frame, ok := f.Next()
	if !ok {
		t.Fatal("expected a frame after resync")
	}
	if !bytes.Equal(frame, good) {
		t.Errorf("frame = % X, want % X", frame, good)
	}
	if f.Stats().Discarded == 0 {
		t.Error("expected discarded bytes")
	}
}

func TestFramerRejectsOversizedLength(t *testing.T) {
	var f Framer
	// Length 0x0FFF exceeds the gateway maximum; the start marker is skipped.
	f.Write([]byte{0x55, 0x81, 0x00, 0x0F, 0xFF})
	if _, ok := f.Next(); ok {
		t.Fatal("unexpected frame")
	}
	if f.Buffered() != 0 {
		t.Errorf("buffered = %d, want 0", f.Buffered())
	}
}

func TestFramerWaitsForPayload(t *testing.T) {
	frame := meterFrame()
	var f Framer
	f.Write(frame[:len(frame)-1])
	if _, ok := f.Next(); ok {
		t.Fatal("frame yielded before end marker arrived")
	}
	f.Write(frame[len(frame)-1:])
	if got, ok := f.Next(); !ok || !bytes.Equal(got, frame) {
		t.Errorf("Next = % X, %v", got, ok)
	}

	f.Write([]byte{0x55, 0x01})
	f.Reset()
	if f.Buffered() != 0 {
		t.Errorf("buffered after reset = %d", f.Buffered())
	}
}
