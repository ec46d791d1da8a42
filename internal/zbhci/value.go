package zbhci

import "strconv"

// Value is a decoded attribute value. The set of implementations is closed:
// Enum8, Uint16, Uint32, Uint48, Uint64 and Text.
type Value interface {
	String() string
	isValue()
}

// Enum8 is a raw 8-bit enumeration value.
type Enum8 uint8

// Uint16 holds every 16-bit wire type.
type Uint16 uint16

// Uint32 holds every 32-bit wire type.
type Uint32 uint32

// Uint48 holds a 48-bit wire value in the low bits.
type Uint48 uint64

// Uint64 holds every 64-bit wire type.
type Uint64 uint64

// Text holds a character or octet string decoded as UTF-8.
type Text string

func (v Enum8) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v Uint16) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint32) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint48) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Text) String() string   { return string(v) }

func (Enum8) isValue()  {}
func (Uint16) isValue() {}
func (Uint32) isValue() {}
func (Uint48) isValue() {}
func (Uint64) isValue() {}
func (Text) isValue()   {}

// Unsigned returns the numeric value of an integer Value.
func Unsigned(v Value) (uint64, bool) {
	switch n := v.(type) {
	case Enum8:
		return uint64(n), true
	case Uint16:
		return uint64(n), true
	case Uint32:
		return uint64(n), true
	case Uint48:
		return uint64(n), true
	case Uint64:
		return uint64(n), true
	}
	return 0, false
}
