// Package clusters holds the static cluster tables for the attributes a
// smart-meter gateway reports.
package clusters

import "cloudsmets-go/internal/zcl"

// Standard returns the built-in cluster definitions, ordered by cluster ID.
// Each call returns fresh copies.
func Standard() []zcl.ClusterDef {
	defs := []zcl.ClusterDef{
		Basic,               // 0x0000
		Identify,            // 0x0003
		Time,                // 0x000A
		PollControl,         // 0x0020
		Price,               // 0x0700
		Metering,            // 0x0702
		MeterIdentification, // 0x0B01
	}
	for i := range defs {
		defs[i] = *defs[i].DeepCopy()
	}
	return defs
}
