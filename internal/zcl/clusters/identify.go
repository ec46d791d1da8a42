package clusters

import "cloudsmets-go/internal/zcl"

var Identify = zcl.ClusterDef{
	ID:   0x0003,
	Name: "Identify",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "IdentifyTime", Type: zcl.TypeUint16},
		{ID: 0xFFFD, Name: "ClusterRevision", Type: zcl.TypeUint16},
	},
}
