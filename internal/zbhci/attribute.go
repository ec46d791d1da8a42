package zbhci

import (
	"strings"

	"cloudsmets-go/internal/zcl"
)

// Attribute is one decoded attribute record.
type Attribute struct {
	ID       uint16 `json:"id"`
	Status   uint8  `json:"status"`
	DataType uint8  `json:"data_type"`
	Value    Value  `json:"value"`
}

// shape is the decoding a wire type tag selects.
type shape uint8

const (
	shapeUnsupported shape = iota
	shapeString8
	shapeString16
	shapeEnum8
	shapeUint16
	shapeUint32
	shapeUint48
	shapeUint64
)

func shapeOf(tag uint8) shape {
	switch tag {
	case zcl.TypeCharStr16, zcl.TypeOctetStr16:
		return shapeString16
	case zcl.TypeCharStr, zcl.TypeOctetStr:
		return shapeString8
	case zcl.TypeEnum8:
		return shapeEnum8
	case zcl.TypeData16, zcl.TypeBitmap16, zcl.TypeUint16, zcl.TypeInt16,
		zcl.TypeEnum16, zcl.TypeFloat16, zcl.TypeClusterID, zcl.TypeAttrID:
		return shapeUint16
	case zcl.TypeData32, zcl.TypeBitmap32, zcl.TypeUint32, zcl.TypeInt32,
		zcl.TypeFloat32, zcl.TypeDate, zcl.TypeUTC, zcl.TypeBACnetOID:
		return shapeUint32
	case zcl.TypeData48, zcl.TypeBitmap48, zcl.TypeUint48, zcl.TypeInt48:
		return shapeUint48
	case zcl.TypeData64, zcl.TypeBitmap64, zcl.TypeUint64, zcl.TypeInt64,
		zcl.TypeFloat64, zcl.TypeEUI64:
		return shapeUint64
	default:
		// Structures, arrays, sets, bags, time of day, keys and every
		// width not listed above.
		return shapeUnsupported
	}
}

// Supported reports whether values of the wire type tag can be decoded.
func Supported(tag uint8) bool {
	return shapeOf(tag) != shapeUnsupported
}

// ParseAttribute decodes one attribute record at off and returns the offset
// just past it.
func ParseAttribute(frame []byte, off int) (Attribute, int, error) {
	r := reader{buf: frame, off: off}
	var (
		a   Attribute
		err error
	)
	if a.ID, err = r.u16("attribute id"); err != nil {
		return Attribute{}, off, err
	}
	if a.Status, err = r.u8("attribute status"); err != nil {
		return Attribute{}, off, err
	}
	if a.Status != zcl.ZCLStatusSuccess {
		return Attribute{}, off, &AttributeStatusError{AttrID: a.ID, Status: a.Status}
	}
	if a.DataType, err = r.u8("attribute data type"); err != nil {
		return Attribute{}, off, err
	}
	if a.Value, err = r.value(a.ID, a.DataType); err != nil {
		return Attribute{}, off, err
	}
	return a, r.off, nil
}

func (r *reader) value(attrID uint16, tag uint8) (Value, error) {
	switch shapeOf(tag) {
	case shapeString16:
		n, err := r.u16("string length")
		if err != nil {
			return nil, err
		}
		return r.text(int(n))
	case shapeString8:
		n, err := r.u8("string length")
		if err != nil {
			return nil, err
		}
		return r.text(int(n))
	case shapeEnum8:
		v, err := r.u8("enum8 value")
		return Enum8(v), err
	case shapeUint16:
		v, err := r.u16("16-bit value")
		return Uint16(v), err
	case shapeUint32:
		v, err := r.u32("32-bit value")
		return Uint32(v), err
	case shapeUint48:
		v, err := r.u48("48-bit value")
		return Uint48(v), err
	case shapeUint64:
		v, err := r.u64("64-bit value")
		return Uint64(v), err
	case shapeUnsupported:
		return nil, &ValueTypeError{AttrID: attrID, Tag: tag}
	}
	return nil, &ValueTypeError{AttrID: attrID, Tag: tag}
}

func (r *reader) text(n int) (Value, error) {
	b, err := r.bytes("string value", n)
	if err != nil {
		return nil, err
	}
	return Text(strings.ToValidUTF8(string(b), "\uFFFD")), nil
}
