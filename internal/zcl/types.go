package zcl

import "fmt"

// ZCL data type IDs
const (
	TypeNoData     uint8 = 0x00
	TypeData8      uint8 = 0x08
	TypeData16     uint8 = 0x09
	TypeData24     uint8 = 0x0A
	TypeData32     uint8 = 0x0B
	TypeData40     uint8 = 0x0C
	TypeData48     uint8 = 0x0D
	TypeData56     uint8 = 0x0E
	TypeData64     uint8 = 0x0F
	TypeBool       uint8 = 0x10
	TypeBitmap8    uint8 = 0x18
	TypeBitmap16   uint8 = 0x19
	TypeBitmap24   uint8 = 0x1A
	TypeBitmap32   uint8 = 0x1B
	TypeBitmap40   uint8 = 0x1C
	TypeBitmap48   uint8 = 0x1D
	TypeBitmap56   uint8 = 0x1E
	TypeBitmap64   uint8 = 0x1F
	TypeUint8      uint8 = 0x20
	TypeUint16     uint8 = 0x21
	TypeUint24     uint8 = 0x22
	TypeUint32     uint8 = 0x23
	TypeUint40     uint8 = 0x24
	TypeUint48     uint8 = 0x25
	TypeUint56     uint8 = 0x26
	TypeUint64     uint8 = 0x27
	TypeInt8       uint8 = 0x28
	TypeInt16      uint8 = 0x29
	TypeInt24      uint8 = 0x2A
	TypeInt32      uint8 = 0x2B
	TypeInt40      uint8 = 0x2C
	TypeInt48      uint8 = 0x2D
	TypeInt56      uint8 = 0x2E
	TypeInt64      uint8 = 0x2F
	TypeEnum8      uint8 = 0x30
	TypeEnum16     uint8 = 0x31
	TypeFloat16    uint8 = 0x38 // semi-precision
	TypeFloat32    uint8 = 0x39
	TypeFloat64    uint8 = 0x3A
	TypeOctetStr   uint8 = 0x41
	TypeCharStr    uint8 = 0x42
	TypeOctetStr16 uint8 = 0x43
	TypeCharStr16  uint8 = 0x44
	TypeArray      uint8 = 0x48
	TypeStruct     uint8 = 0x4C
	TypeSet        uint8 = 0x50
	TypeBag        uint8 = 0x51
	TypeToD        uint8 = 0xE0 // Time of Day
	TypeDate       uint8 = 0xE1
	TypeUTC        uint8 = 0xE2
	TypeClusterID  uint8 = 0xE8
	TypeAttrID     uint8 = 0xE9
	TypeBACnetOID  uint8 = 0xEA
	TypeEUI64      uint8 = 0xF0
	TypeSecKey128  uint8 = 0xF1
	TypeUnknown    uint8 = 0xFF
)

var typeNames = map[uint8]string{
	TypeNoData:     "nodata",
	TypeData8:      "data8",
	TypeData16:     "data16",
	TypeData24:     "data24",
	TypeData32:     "data32",
	TypeData40:     "data40",
	TypeData48:     "data48",
	TypeData56:     "data56",
	TypeData64:     "data64",
	TypeBool:       "bool",
	TypeBitmap8:    "map8",
	TypeBitmap16:   "map16",
	TypeBitmap24:   "map24",
	TypeBitmap32:   "map32",
	TypeBitmap40:   "map40",
	TypeBitmap48:   "map48",
	TypeBitmap56:   "map56",
	TypeBitmap64:   "map64",
	TypeUint8:      "uint8",
	TypeUint16:     "uint16",
	TypeUint24:     "uint24",
	TypeUint32:     "uint32",
	TypeUint40:     "uint40",
	TypeUint48:     "uint48",
	TypeUint56:     "uint56",
	TypeUint64:     "uint64",
	TypeInt8:       "int8",
	TypeInt16:      "int16",
	TypeInt24:      "int24",
	TypeInt32:      "int32",
	TypeInt40:      "int40",
	TypeInt48:      "int48",
	TypeInt56:      "int56",
	TypeInt64:      "int64",
	TypeEnum8:      "enum8",
	TypeEnum16:     "enum16",
	TypeFloat16:    "semi",
	TypeFloat32:    "single",
	TypeFloat64:    "double",
	TypeOctetStr:   "octstr",
	TypeCharStr:    "string",
	TypeOctetStr16: "octstr16",
	TypeCharStr16:  "string16",
	TypeArray:      "array",
	TypeStruct:     "struct",
	TypeSet:        "set",
	TypeBag:        "bag",
	TypeToD:        "ToD",
	TypeDate:       "date",
	TypeUTC:        "UTC",
	TypeClusterID:  "clusterId",
	TypeAttrID:     "attribId",
	TypeBACnetOID:  "bacOID",
	TypeEUI64:      "EUI64",
	TypeSecKey128:  "key128",
	TypeUnknown:    "unk",
}

// TypeName returns a human-readable name for a ZCL type.
func TypeName(typeID uint8) string {
	if name, ok := typeNames[typeID]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", typeID)
}
