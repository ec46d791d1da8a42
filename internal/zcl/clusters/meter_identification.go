package clusters

import "cloudsmets-go/internal/zcl"

var MeterIdentification = zcl.ClusterDef{
	ID:   0x0B01,
	Name: "Meter Identification",
	Attributes: []zcl.AttributeDef{
		{ID: 0x0000, Name: "CompanyName", Type: zcl.TypeCharStr},
		{ID: 0x0001, Name: "MeterTypeID", Type: zcl.TypeUint16},
		{ID: 0x0004, Name: "DataQualityID", Type: zcl.TypeUint16},
		{ID: 0x0005, Name: "CustomerName", Type: zcl.TypeCharStr},
		{ID: 0x0006, Name: "Model", Type: zcl.TypeOctetStr},
		{ID: 0x0007, Name: "PartNumber", Type: zcl.TypeOctetStr},
		{ID: 0x0008, Name: "ProductRevision", Type: zcl.TypeOctetStr},
		{ID: 0x000A, Name: "SoftwareRevision", Type: zcl.TypeOctetStr},
		{ID: 0x000B, Name: "UtilityName", Type: zcl.TypeCharStr},
		{ID: 0x000C, Name: "POD", Type: zcl.TypeCharStr},
		{ID: 0x000D, Name: "AvailablePower", Type: zcl.TypeInt24},
		{ID: 0x000E, Name: "PowerThreshold", Type: zcl.TypeInt24},
	},
}
