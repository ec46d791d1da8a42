package clusters

import "cloudsmets-go/internal/zcl"

var Time = zcl.ClusterDef{
	ID:   0x000A,
	Name: "Time",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "Time", Type: zcl.TypeUTC},
		{ID: 0x0001, Name: "TimeStatus", Type: zcl.TypeBitmap8},
		{ID: 0x0002, Name: "TimeZone", Type: zcl.TypeInt32},
		{ID: 0x0003, Name: "DstStart", Type: zcl.TypeUint32},
		{ID: 0x0004, Name: "DstEnd", Type: zcl.TypeUint32},
		{ID: 0x0005, Name: "DstShift", Type: zcl.TypeInt32},
		{ID: 0x0006, Name: "StandardTime", Type: zcl.TypeUint32},
		{ID: 0x0007, Name: "LocalTime", Type: zcl.TypeUint32},
		{ID: 0x0008, Name: "LastSetTime", Type: zcl.TypeUTC},
		{ID: 0x0009, Name: "ValidUntilTime", Type: zcl.TypeUTC},
	},
}
