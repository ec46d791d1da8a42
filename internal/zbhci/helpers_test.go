package zbhci

import "encoding/binary"

// buildFrame wraps payload in markers, header and a correct checksum.
func buildFrame(commandID uint16, payload []byte) []byte {
	f := make([]byte, 0, len(payload)+FrameOverhead)
	f = append(f, FrameStart)
	f = binary.BigEndian.AppendUint16(f, commandID)
	f = binary.BigEndian.AppendUint16(f, uint16(len(payload)))
	f = append(f, 0)
	f = append(f, payload...)
	f = append(f, FrameEnd)
	f[crcOffset] = CRC8(commandID, uint16(len(payload)), f, headerLength)
	return f
}

// commandPayload builds a read-attributes response payload.
func commandPayload(h CommandHeader, records ...[]byte) []byte {
	p := binary.BigEndian.AppendUint16(nil, h.SourceAddress)
	p = append(p, h.SourceEndpoint, h.DestinationEndpoint, h.SequenceNumber)
	p = binary.BigEndian.AppendUint16(p, h.ClusterID)
	p = append(p, byte(len(records)))
	for _, r := range records {
		p = append(p, r...)
	}
	return p
}

// record builds one successful attribute record.
func record(id uint16, tag uint8, value ...byte) []byte {
	r := binary.BigEndian.AppendUint16(nil, id)
	r = append(r, 0x00, tag)
	return append(r, value...)
}

// shortString prefixes s with its 8-bit length.
func shortString(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

var meterHeader = CommandHeader{
	SourceAddress:       0x1A2B,
	SourceEndpoint:      0x01,
	DestinationEndpoint: 0x01,
	SequenceNumber:      0x42,
	ClusterID:           0x0702,
}
