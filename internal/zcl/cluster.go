package zcl

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AttributeDef defines a ZCL attribute.
type AttributeDef struct {
	ID   uint16 `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type uint8  `json:"type" yaml:"type"`
}

// EnumTable maps raw enum8 values of one attribute to symbolic names.
type EnumTable map[uint8]string

// EnumFunc maps a raw enum8 value of an attribute to its symbolic name.
// It must be a pure function; it is called concurrently.
type EnumFunc func(attrID uint16, value uint8) (string, bool)

// ClusterDef defines a ZCL cluster with its attributes and enumerations.
type ClusterDef struct {
	ID         uint16               `json:"id" yaml:"id"`
	Name       string               `json:"name" yaml:"name"`
	Attributes []AttributeDef       `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Enums      map[uint16]EnumTable `json:"enums,omitempty" yaml:"enums,omitempty"` // attribute ID -> values
}

// FindAttribute looks up an attribute by ID.
func (c *ClusterDef) FindAttribute(id uint16) *AttributeDef {
	for i := range c.Attributes {
		if c.Attributes[i].ID == id {
			return &c.Attributes[i]
		}
	}
	return nil
}

// EnumFunc returns a lookup over the cluster's enum tables.
// The tables are copied so later changes to c do not leak into the lookup.
func (c *ClusterDef) EnumFunc() EnumFunc {
	tables := c.DeepCopy().Enums
	return func(attrID uint16, value uint8) (string, bool) {
		name, ok := tables[attrID][value]
		return name, ok
	}
}

// DeepCopy returns a deep copy of the cluster definition.
func (c *ClusterDef) DeepCopy() *ClusterDef {
	cp := *c
	if c.Attributes != nil {
		cp.Attributes = make([]AttributeDef, len(c.Attributes))
		copy(cp.Attributes, c.Attributes)
	}
	if c.Enums != nil {
		cp.Enums = make(map[uint16]EnumTable, len(c.Enums))
		for attrID, table := range c.Enums {
			t := make(EnumTable, len(table))
			for v, name := range table {
				t[v] = name
			}
			cp.Enums[attrID] = t
		}
	}
	return &cp
}

// Merge adds attributes and enum values from another definition (for overlay files).
// Existing entries win.
func (c *ClusterDef) Merge(other *ClusterDef) {
	for _, attr := range other.Attributes {
		if c.FindAttribute(attr.ID) == nil {
			c.Attributes = append(c.Attributes, attr)
		}
	}
	for attrID, table := range other.Enums {
		if c.Enums == nil {
			c.Enums = make(map[uint16]EnumTable)
		}
		dst, ok := c.Enums[attrID]
		if !ok {
			dst = make(EnumTable, len(table))
			c.Enums[attrID] = dst
		}
		for v, name := range table {
			if _, exists := dst[v]; !exists {
				dst[v] = name
			}
		}
	}
	if c.Name == "" {
		c.Name = other.Name
	}
}

// ParseClusterDefs decodes an overlay file of cluster definitions:
//
//	clusters:
//	  - id: 0x0702
//	    name: Metering
//	    attributes:
//	      - {id: 0x0000, name: CurrentSummationDelivered, type: 0x25}
//	    enums:
//	      0x0300: {0: kWh, 1: m3}
func ParseClusterDefs(data []byte) ([]ClusterDef, error) {
	var doc struct {
		Clusters []ClusterDef `yaml:"clusters"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("zcl: parse cluster definitions: %w", err)
	}
	for i, c := range doc.Clusters {
		for _, a := range c.Attributes {
			if a.Name == "" {
				return nil, fmt.Errorf("zcl: cluster 0x%04X (entry %d): attribute 0x%04X has no name", c.ID, i, a.ID)
			}
		}
	}
	return doc.Clusters, nil
}
