// Package zbhci decodes read-attributes response frames forwarded by a
// Zigbee host-controller gateway.
//
// Frame layout, all multi-byte fields big-endian:
//
//	0x55 | commandId(2) | payloadLength(2) | crc(1) | payload(payloadLength) | 0xAA
//
// The payload of a read-attributes response is a 7-byte command header,
// an attribute count and that many attribute records. Decoding is a pure
// function of the input buffer and is safe to run concurrently.
package zbhci

const (
	FrameStart byte = 0x55
	FrameEnd   byte = 0xAA

	// MinFrameLength is the length of a frame with an empty payload.
	MinFrameLength = 7
	// FrameOverhead is the number of framing bytes around the payload.
	FrameOverhead = 7
	// MaxPayloadLength is the largest payload the gateway emits.
	MaxPayloadLength = 256

	// headerLength covers start marker, command id, payload length and crc.
	headerLength = 6
	crcOffset    = 5

	// CmdReadAttributesResponse is the only command this package decodes.
	CmdReadAttributesResponse uint16 = 0x8100
)

// FrameHeader is the validated frame header.
type FrameHeader struct {
	CommandID     uint16 `json:"command_id"`
	PayloadLength uint16 `json:"payload_length"`
	CRC           uint8  `json:"crc"`
}

// ParseHeader validates the frame markers, the declared payload length and
// the checksum. It returns the header and the offset of the first payload byte.
func ParseHeader(frame []byte) (FrameHeader, int, error) {
	if len(frame) == 0 {
		return FrameHeader{}, 0, &ShortFrameError{Length: 0}
	}
	// Markers are checked before length so a bad marker is always a framing error.
	start, end := frame[0], frame[len(frame)-1]
	if start != FrameStart || end != FrameEnd {
		return FrameHeader{}, 0, &FramingError{Start: start, End: end}
	}
	if len(frame) < MinFrameLength {
		return FrameHeader{}, 0, &ShortFrameError{Length: len(frame)}
	}

	r := reader{buf: frame, off: 1}
	commandID, err := r.u16("command id")
	if err != nil {
		return FrameHeader{}, 0, err
	}
	payloadLength, err := r.u16("payload length")
	if err != nil {
		return FrameHeader{}, 0, err
	}

	// The payload must end before the end marker.
	if room := len(frame) - 1 - headerLength; int(payloadLength) > room {
		return FrameHeader{}, 0, &TruncatedError{
			Field:  "payload",
			Offset: headerLength,
			Need:   int(payloadLength),
			Have:   room,
		}
	}

	received := frame[crcOffset]
	expected := CRC8(commandID, payloadLength, frame, headerLength)
	if expected != received {
		return FrameHeader{}, 0, &CRCError{Expected: expected, Received: received}
	}

	return FrameHeader{
		CommandID:     commandID,
		PayloadLength: payloadLength,
		CRC:           received,
	}, headerLength, nil
}
