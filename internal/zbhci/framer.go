package zbhci

import (
	"bytes"
	"encoding/binary"
)

// FramerStats counts framer activity.
type FramerStats struct {
	Frames    uint64 `json:"frames"`
	Discarded uint64 `json:"discarded"` // bytes skipped while resynchronising
}

// Framer splits a byte stream into candidate frames. It hunts for the start
// marker, waits until the declared payload has arrived and checks the end
// marker. Frames it yields still need Decode for checksum and content.
//
// A Framer is not safe for concurrent use.
type Framer struct {
	buf   []byte
	stats FramerStats
}

// Write appends stream bytes. It never fails.
func (f *Framer) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// Next returns the next complete frame, or false if more input is needed.
// The returned slice is a copy owned by the caller.
func (f *Framer) Next() ([]byte, bool) {
	for {
		i := bytes.IndexByte(f.buf, FrameStart)
		if i < 0 {
			f.discard(len(f.buf))
			return nil, false
		}
		f.discard(i)

		if len(f.buf) < headerLength-1 {
			return nil, false
		}
		plen := int(binary.BigEndian.Uint16(f.buf[3:5]))
		if plen > MaxPayloadLength {
			f.discard(1)
			continue
		}
		total := plen + FrameOverhead
		if len(f.buf) < total {
			return nil, false
		}
		if f.buf[total-1] != FrameEnd {
			f.discard(1)
			continue
		}

		frame := make([]byte, total)
		copy(frame, f.buf[:total])
		f.buf = f.buf[total:]
		f.stats.Frames++
		return frame, true
	}
}

// Buffered returns the number of bytes waiting for a complete frame.
func (f *Framer) Buffered() int { return len(f.buf) }

// Stats returns a snapshot of the counters.
func (f *Framer) Stats() FramerStats { return f.stats }

// Reset drops any buffered bytes.
func (f *Framer) Reset() {
	f.discard(len(f.buf))
}

func (f *Framer) discard(n int) {
	if n == 0 {
		return
	}
	f.stats.Discarded += uint64(n)
	f.buf = f.buf[n:]
	if len(f.buf) == 0 {
		f.buf = f.buf[:0:0]
	}
}
