package zbhci

// CRC8 computes the frame checksum: the XOR of both bytes of commandID,
// both bytes of payloadLength, and the payloadLength bytes of buf starting
// at start. buf must hold at least start+payloadLength bytes.
func CRC8(commandID, payloadLength uint16, buf []byte, start int) uint8 {
	crc := uint8(commandID)
	crc ^= uint8(commandID >> 8)
	crc ^= uint8(payloadLength)
	crc ^= uint8(payloadLength >> 8)
	for _, b := range buf[start : start+int(payloadLength)] {
		crc ^= b
	}
	return crc
}
