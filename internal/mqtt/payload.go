package mqtt

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Encoding is how frames are carried in MQTT message payloads.
type Encoding string

const (
	EncodingRaw    Encoding = "raw"    // frame bytes as-is
	EncodingHex    Encoding = "hex"    // hex text, whitespace, colons and dashes ignored
	EncodingBase64 Encoding = "base64" // standard base64 text
)

// ParseEncoding validates an encoding name. An empty name means raw.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case EncodingRaw, EncodingHex, EncodingBase64:
		return e, nil
	case "":
		return EncodingRaw, nil
	}
	return "", fmt.Errorf("unknown payload encoding %q (want raw, hex or base64)", s)
}

// Decode extracts the frame bytes from a message payload.
func (e Encoding) Decode(payload []byte) ([]byte, error) {
	switch e {
	case EncodingRaw, "":
		return bytes.Clone(payload), nil
	case EncodingHex:
		return ParseHex(string(payload))
	case EncodingBase64:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(payload)))
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown payload encoding %q", string(e))
}

// ParseHex decodes a hex dump such as "55 81 00", "55-81-00" or "558100".
// A leading 0x is accepted.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', ':', '-':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex payload: %w", err)
	}
	return b, nil
}
