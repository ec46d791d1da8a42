package zbhci

import (
	"sync"
	"time"

	"cloudsmets-go/internal/zcl"
	"cloudsmets-go/internal/zcl/clusters"
)

// zigbeeEpoch is the origin of ZCL UTC time values.
var zigbeeEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// utcInvalid is the ZCL "invalid time" marker.
const utcInvalid = 0xFFFFFFFF

// Resolver renders decoded attributes with display names from a read-only
// metadata registry. It never touches wire parsing, so clusters can be
// added without changing the decoder.
type Resolver struct {
	reg *zcl.Registry
}

// NewResolver wraps a registry.
func NewResolver(reg *zcl.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// DefaultResolver returns the process-wide resolver over the built-in
// cluster tables. It is built on first use and shared afterwards.
var DefaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(zcl.NewRegistry(clusters.Standard()))
})

// Registry returns the underlying metadata registry.
func (r *Resolver) Registry() *zcl.Registry { return r.reg }

// AttributeName returns the display name of an attribute.
func (r *Resolver) AttributeName(clusterID, attrID uint16) (string, error) {
	name, ok := r.reg.AttributeName(clusterID, attrID)
	if !ok {
		return "", &UnknownAttributeError{ClusterID: clusterID, AttrID: attrID}
	}
	return name, nil
}

// EnumName returns the symbolic name of an enum8 value.
func (r *Resolver) EnumName(clusterID, attrID uint16, value uint8) (string, error) {
	name, ok := r.reg.EnumName(clusterID, attrID, value)
	if !ok {
		return "", &UnknownEnumError{ClusterID: clusterID, AttrID: attrID, Value: value}
	}
	return name, nil
}

// FormatValue renders an attribute value: enum8 values by symbolic name,
// UTC values as RFC 3339 time, other integers in decimal and strings verbatim.
func (r *Resolver) FormatValue(clusterID uint16, a Attribute) (string, error) {
	switch v := a.Value.(type) {
	case Enum8:
		return r.EnumName(clusterID, a.ID, uint8(v))
	case Uint32:
		if a.DataType == zcl.TypeUTC && v != utcInvalid {
			return zigbeeEpoch.Add(time.Duration(v) * time.Second).Format(time.RFC3339), nil
		}
		return v.String(), nil
	case nil:
		return "", nil
	default:
		return v.String(), nil
	}
}

// Rendered is an attribute prepared for display.
type Rendered struct {
	ID    uint16 `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Render resolves the name and value of one attribute.
func (r *Resolver) Render(clusterID uint16, a Attribute) (Rendered, error) {
	name, err := r.AttributeName(clusterID, a.ID)
	if err != nil {
		return Rendered{}, err
	}
	value, err := r.FormatValue(clusterID, a)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{ID: a.ID, Name: name, Type: zcl.TypeName(a.DataType), Value: value}, nil
}

// RenderMessage renders every attribute of m in order, stopping at the
// first lookup failure.
func (r *Resolver) RenderMessage(m *Message) ([]Rendered, error) {
	out := make([]Rendered, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		rd, err := r.Render(m.Command.ClusterID, a)
		if err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, nil
}
