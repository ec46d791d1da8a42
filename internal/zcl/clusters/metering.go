package clusters

import "cloudsmets-go/internal/zcl"

var Metering = zcl.ClusterDef{
	ID:   0x0702,
	Name: "Metering",
	Attributes: []zcl.AttributeDef{
		// Reading information set
		{ID: 0x0000, Name: "CurrentSummationDelivered", Type: zcl.TypeUint48},
		{ID: 0x0001, Name: "CurrentSummationReceived", Type: zcl.TypeUint48},
		{ID: 0x0002, Name: "CurrentMaxDemandDelivered", Type: zcl.TypeUint48},
		{ID: 0x0003, Name: "CurrentMaxDemandReceived", Type: zcl.TypeUint48},
		{ID: 0x0006, Name: "PowerFactor", Type: zcl.TypeInt8},
		{ID: 0x0007, Name: "ReadingSnapShotTime", Type: zcl.TypeUTC},
		{ID: 0x0014, Name: "SupplyStatus", Type: zcl.TypeEnum8},
		// Meter status
		{ID: 0x0200, Name: "Status", Type: zcl.TypeBitmap8},
		{ID: 0x0207, Name: "AmbientConsumptionIndicator", Type: zcl.TypeEnum8},
		// Formatting
		{ID: 0x0300, Name: "UnitOfMeasure", Type: zcl.TypeEnum8},
		{ID: 0x0301, Name: "Multiplier", Type: zcl.TypeUint24},
		{ID: 0x0302, Name: "Divisor", Type: zcl.TypeUint24},
		{ID: 0x0303, Name: "SummationFormatting", Type: zcl.TypeBitmap8},
		{ID: 0x0304, Name: "DemandFormatting", Type: zcl.TypeBitmap8},
		{ID: 0x0305, Name: "HistoricalConsumptionFormatting", Type: zcl.TypeBitmap8},
		{ID: 0x0306, Name: "MeteringDeviceType", Type: zcl.TypeBitmap8},
		{ID: 0x0307, Name: "SiteID", Type: zcl.TypeOctetStr},
		{ID: 0x0308, Name: "MeterSerialNumber", Type: zcl.TypeOctetStr},
		{ID: 0x0309, Name: "EnergyCarrierUnitOfMeasure", Type: zcl.TypeEnum8},
		{ID: 0x030E, Name: "CustomerIDNumber", Type: zcl.TypeOctetStr},
		// Historical consumption
		{ID: 0x0400, Name: "InstantaneousDemand", Type: zcl.TypeInt24},
		{ID: 0x0401, Name: "CurrentDayConsumptionDelivered", Type: zcl.TypeUint24},
		{ID: 0x0402, Name: "CurrentDayConsumptionReceived", Type: zcl.TypeUint24},
		{ID: 0x0403, Name: "PreviousDayConsumptionDelivered", Type: zcl.TypeUint24},
		{ID: 0x0404, Name: "PreviousDayConsumptionReceived", Type: zcl.TypeUint24},
		{ID: 0x0405, Name: "CurrentPartialProfileIntervalStartTimeDelivered", Type: zcl.TypeUTC},
		{ID: 0x040C, Name: "CurrentWeekConsumptionDelivered", Type: zcl.TypeUint24},
		{ID: 0x0410, Name: "CurrentMonthConsumptionDelivered", Type: zcl.TypeUint32},
	},
	Enums: map[uint16]zcl.EnumTable{
		0x0014: supplyStatus,
		0x0207: {
			0x00: "Low Energy Usage",
			0x01: "Medium Energy Usage",
			0x02: "High Energy Usage",
		},
		0x0300: unitOfMeasure,
		0x0309: unitOfMeasure,
	},
}

var supplyStatus = zcl.EnumTable{
	0x00: "Supply OFF",
	0x01: "Supply OFF/ARMED",
	0x02: "Supply ON",
}

var unitOfMeasure = zcl.EnumTable{
	0x00: "kWh",
	0x01: "m3",
	0x02: "ft3",
	0x03: "ccf",
	0x04: "US gl",
	0x05: "IMP gl",
	0x06: "BTU",
	0x07: "Liters",
	0x08: "kPA (gauge)",
	0x09: "kPA (absolute)",
	0x0A: "mcf",
	0x0B: "Unitless",
	0x0C: "MJ",
	0x0D: "kVar",
	0x80: "kWh (BCD)",
	0x81: "m3 (BCD)",
	0x82: "ft3 (BCD)",
	0x83: "ccf (BCD)",
	0x84: "US gl (BCD)",
	0x85: "IMP gl (BCD)",
	0x86: "BTU (BCD)",
	0x87: "Liters (BCD)",
	0x88: "kPA (gauge, BCD)",
	0x89: "kPA (absolute, BCD)",
	0x8A: "mcf (BCD)",
	0x8B: "Unitless (BCD)",
	0x8C: "MJ (BCD)",
	0x8D: "kVar (BCD)",
}
