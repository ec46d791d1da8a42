package clusters

import "cloudsmets-go/internal/zcl"

var PollControl = zcl.ClusterDef{
	ID:   0x0020,
	Name: "Poll Control",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "CheckInInterval", Type: zcl.TypeUint32},
		{ID: 0x0001, Name: "LongPollInterval", Type: zcl.TypeUint32},
		{ID: 0x0002, Name: "ShortPollInterval", Type: zcl.TypeUint16},
		{ID: 0x0003, Name: "FastPollTimeout", Type: zcl.TypeUint16},
		{ID: 0x0004, Name: "CheckInIntervalMin", Type: zcl.TypeUint32},
		{ID: 0x0005, Name: "LongPollIntervalMin", Type: zcl.TypeUint32},
		{ID: 0x0006, Name: "FastPollTimeoutMax", Type: zcl.TypeUint16},
	},
}
