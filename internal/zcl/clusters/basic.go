package clusters

import "cloudsmets-go/internal/zcl"

var Basic = zcl.ClusterDef{
	ID:   0x0000,
	Name: "Basic",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "ZCLVersion", Type: zcl.TypeUint8},
		{ID: 0x0001, Name: "ApplicationVersion", Type: zcl.TypeUint8},
		{ID: 0x0002, Name: "StackVersion", Type: zcl.TypeUint8},
		{ID: 0x0003, Name: "HWVersion", Type: zcl.TypeUint8},
		{ID: 0x0004, Name: "ManufacturerName", Type: zcl.TypeCharStr},
		{ID: 0x0005, Name: "ModelIdentifier", Type: zcl.TypeCharStr},
		{ID: 0x0006, Name: "DateCode", Type: zcl.TypeCharStr},
		{ID: 0x0007, Name: "PowerSource", Type: zcl.TypeEnum8},
		{ID: 0x0010, Name: "LocationDescription", Type: zcl.TypeCharStr},
		{ID: 0x0011, Name: "PhysicalEnvironment", Type: zcl.TypeEnum8},
		{ID: 0x0012, Name: "DeviceEnabled", Type: zcl.TypeBool},
		{ID: 0x4000, Name: "SWBuildID", Type: zcl.TypeCharStr},
		{ID: 0xFFFD, Name: "ClusterRevision", Type: zcl.TypeUint16},
	},
	Enums: map[uint16]zcl.EnumTable{
		0x0007: {
			0x00: "Unknown",
			0x01: "Mains (single phase)",
			0x02: "Mains (3 phase)",
			0x03: "Battery",
			0x04: "DC source",
			0x05: "Emergency mains constantly powered",
			0x06: "Emergency mains and transfer switch",
		},
		0x0011: {
			0x00: "Unspecified",
			0xFF: "Unknown",
		},
	},
}
