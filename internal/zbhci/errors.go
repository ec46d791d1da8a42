package zbhci

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Every error returned by this package wraps exactly
// one of these sentinels.
var (
	ErrShortFrame           = errors.New("zbhci: short frame")
	ErrFraming              = errors.New("zbhci: bad frame markers")
	ErrCRCMismatch          = errors.New("zbhci: crc mismatch")
	ErrUnsupportedCommand   = errors.New("zbhci: unsupported command")
	ErrTruncated            = errors.New("zbhci: truncated")
	ErrAttributeStatus      = errors.New("zbhci: attribute status invalid")
	ErrUnsupportedValueType = errors.New("zbhci: unsupported value type")
	ErrUnknownAttribute     = errors.New("zbhci: unknown attribute")
	ErrUnknownEnumValue     = errors.New("zbhci: unknown enum value")
)

// Kind names a decode failure for logs and capture records.
type Kind uint8

const (
	KindNone Kind = iota
	KindShortFrame
	KindFraming
	KindCRCMismatch
	KindUnsupportedCommand
	KindTruncated
	KindAttributeStatus
	KindUnsupportedValueType
	KindUnknownAttribute
	KindUnknownEnumValue
	KindOther
)

var kindSentinels = []struct {
	kind Kind
	err  error
}{
	{KindShortFrame, ErrShortFrame},
	{KindFraming, ErrFraming},
	{KindCRCMismatch, ErrCRCMismatch},
	{KindUnsupportedCommand, ErrUnsupportedCommand},
	{KindTruncated, ErrTruncated},
	{KindAttributeStatus, ErrAttributeStatus},
	{KindUnsupportedValueType, ErrUnsupportedValueType},
	{KindUnknownAttribute, ErrUnknownAttribute},
	{KindUnknownEnumValue, ErrUnknownEnumValue},
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindShortFrame:
		return "short_frame"
	case KindFraming:
		return "framing"
	case KindCRCMismatch:
		return "crc_mismatch"
	case KindUnsupportedCommand:
		return "unsupported_command"
	case KindTruncated:
		return "truncated"
	case KindAttributeStatus:
		return "attribute_status_invalid"
	case KindUnsupportedValueType:
		return "unsupported_value_type"
	case KindUnknownAttribute:
		return "unknown_attribute"
	case KindUnknownEnumValue:
		return "unknown_enum_value"
	default:
		return "other"
	}
}

// KindOf classifies err. A nil error is KindNone; errors from outside the
// taxonomy are KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, ks := range kindSentinels {
		if errors.Is(err, ks.err) {
			return ks.kind
		}
	}
	return KindOther
}

// ShortFrameError reports a buffer too small to hold an empty frame.
type ShortFrameError struct {
	Length int
}

func (e *ShortFrameError) Error() string {
	return fmt.Sprintf("zbhci: short frame: %d bytes, need at least %d", e.Length, MinFrameLength)
}

func (e *ShortFrameError) Unwrap() error { return ErrShortFrame }

// FramingError reports a missing start or end marker.
type FramingError struct {
	Start byte
	End   byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("zbhci: frame start/end invalid: 0x%02X, 0x%02X", e.Start, e.End)
}

func (e *FramingError) Unwrap() error { return ErrFraming }

// CRCError reports a checksum that does not match the frame contents.
type CRCError struct {
	Expected byte
	Received byte
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("zbhci: crc is incorrect: expected: 0x%02X, received: 0x%02X", e.Expected, e.Received)
}

func (e *CRCError) Unwrap() error { return ErrCRCMismatch }

// CommandError reports a frame carrying a command other than a
// read-attributes response.
type CommandError struct {
	CommandID uint16
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("zbhci: frame is not a read-attributes response: 0x%04X", e.CommandID)
}

func (e *CommandError) Unwrap() error { return ErrUnsupportedCommand }

// TruncatedError reports a field that runs past the end of the frame or
// the declared payload.
type TruncatedError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("zbhci: truncated %s at offset %d: need %d bytes, have %d", e.Field, e.Offset, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// AttributeStatusError reports an attribute record whose status is not SUCCESS.
type AttributeStatusError struct {
	AttrID uint16
	Status uint8
}

func (e *AttributeStatusError) Error() string {
	return fmt.Sprintf("zbhci: attribute status 0x%02X for attribute 0x%04X is invalid", e.Status, e.AttrID)
}

func (e *AttributeStatusError) Unwrap() error { return ErrAttributeStatus }

// ValueTypeError reports a wire type tag with no decoding.
type ValueTypeError struct {
	AttrID uint16
	Tag    uint8
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("zbhci: unsupported attribute type 0x%02X for attribute 0x%04X", e.Tag, e.AttrID)
}

func (e *ValueTypeError) Unwrap() error { return ErrUnsupportedValueType }

// UnknownAttributeError reports an attribute missing from the metadata table.
type UnknownAttributeError struct {
	ClusterID uint16
	AttrID    uint16
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("zbhci: unknown attribute 0x%04X in cluster 0x%04X", e.AttrID, e.ClusterID)
}

func (e *UnknownAttributeError) Unwrap() error { return ErrUnknownAttribute }

// UnknownEnumError reports an enum value with no symbolic name.
type UnknownEnumError struct {
	ClusterID uint16
	AttrID    uint16
	Value     uint8
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("zbhci: unknown value 0x%02X for enum attribute 0x%04X in cluster 0x%04X", e.Value, e.AttrID, e.ClusterID)
}

func (e *UnknownEnumError) Unwrap() error { return ErrUnknownEnumValue }
