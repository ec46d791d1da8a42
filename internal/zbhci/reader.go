package zbhci

import "encoding/binary"

// reader reads big-endian fields from a bounded buffer. It is owned by a
// single parse step; offsets are handed between steps explicitly.
type reader struct {
	buf []byte
	off int
}

func (r *reader) need(field string, n int) error {
	if have := len(r.buf) - r.off; have < n {
		if have < 0 {
			have = 0
		}
		return &TruncatedError{Field: field, Offset: r.off, Need: n, Have: have}
	}
	return nil
}

func (r *reader) u8(field string) (uint8, error) {
	if err := r.need(field, 1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) u16(field string) (uint16, error) {
	if err := r.need(field, 2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) u32(field string) (uint32, error) {
	if err := r.need(field, 4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// u48 reads a 48-bit value as a 32-bit high part followed by a 16-bit low part.
func (r *reader) u48(field string) (uint64, error) {
	if err := r.need(field, 6); err != nil {
		return 0, err
	}
	hi := binary.BigEndian.Uint32(r.buf[r.off:])
	lo := binary.BigEndian.Uint16(r.buf[r.off+4:])
	r.off += 6
	return uint64(hi)<<16 | uint64(lo), nil
}

func (r *reader) u64(field string) (uint64, error) {
	if err := r.need(field, 8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *reader) bytes(field string, n int) ([]byte, error) {
	if err := r.need(field, n); err != nil {
		return nil, err
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}
