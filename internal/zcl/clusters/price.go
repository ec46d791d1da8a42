package clusters

import "cloudsmets-go/internal/zcl"

var Price = zcl.ClusterDef{
	ID:   0x0700,
	Name: "Price",
	Attributes: []zcl.AttributeDef{
		// Tier label set
		{ID: 0x0000, Name: "Tier1PriceLabel", Type: zcl.TypeOctetStr},
		{ID: 0x0001, Name: "Tier2PriceLabel", Type: zcl.TypeOctetStr},
		{ID: 0x0002, Name: "Tier3PriceLabel", Type: zcl.TypeOctetStr},
		{ID: 0x0003, Name: "Tier4PriceLabel", Type: zcl.TypeOctetStr},
		// Block period set
		{ID: 0x0200, Name: "StartOfBlockPeriod", Type: zcl.TypeUTC},
		{ID: 0x0201, Name: "BlockPeriodDuration", Type: zcl.TypeUint24},
		{ID: 0x0202, Name: "ThresholdMultiplier", Type: zcl.TypeUint24},
		{ID: 0x0203, Name: "ThresholdDivisor", Type: zcl.TypeUint24},
		// Commodity set
		{ID: 0x0300, Name: "CommodityType", Type: zcl.TypeEnum8},
		{ID: 0x0301, Name: "StandingCharge", Type: zcl.TypeUint32},
		{ID: 0x0302, Name: "ConversionFactor", Type: zcl.TypeUint32},
		{ID: 0x0303, Name: "ConversionFactorTrailingDigit", Type: zcl.TypeBitmap8},
		{ID: 0x0304, Name: "CalorificValue", Type: zcl.TypeUint32},
		{ID: 0x0305, Name: "CalorificValueUnit", Type: zcl.TypeEnum8},
		{ID: 0x0306, Name: "CalorificValueTrailingDigit", Type: zcl.TypeBitmap8},
		// Block price information set
		{ID: 0x0400, Name: "NoTierBlock1Price", Type: zcl.TypeUint32},
		{ID: 0x0401, Name: "NoTierBlock2Price", Type: zcl.TypeUint32},
		{ID: 0x0410, Name: "Tier1Block1Price", Type: zcl.TypeUint32},
		{ID: 0x0420, Name: "Tier2Block1Price", Type: zcl.TypeUint32},
		// Billing information set
		{ID: 0x0700, Name: "CurrentBillingPeriodStart", Type: zcl.TypeUTC},
		{ID: 0x0701, Name: "CurrentBillingPeriodDuration", Type: zcl.TypeUint24},
	},
	Enums: map[uint16]zcl.EnumTable{
		0x0300: {
			0x00: "Electric Metering",
			0x01: "Gas Metering",
			0x02: "Water Metering",
			0x03: "Thermal Metering",
			0x04: "Pressure Metering",
			0x05: "Heat Metering",
			0x06: "Cooling Metering",
		},
		0x0305: {
			0x01: "MJ/m3",
			0x02: "MJ/kg",
		},
	},
}
