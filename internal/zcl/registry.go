package zcl

import (
	"fmt"
	"log/slog"
	"sort"
)

// Registry holds all known ZCL cluster definitions.
//
// A Registry is built once by NewRegistry and never modified afterwards,
// so it is safe for concurrent use without locking.
type Registry struct {
	clusters map[uint16]*ClusterDef
	enums    map[uint16]EnumFunc
}

// RegistryOption customises a registry at construction time.
type RegistryOption func(*registryBuilder)

type registryBuilder struct {
	logger  *slog.Logger
	enumFns map[uint16]EnumFunc
}

// WithLogger logs each registered cluster at debug level.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(b *registryBuilder) { b.logger = logger }
}

// WithEnumFunc installs a custom enum lookup for a cluster. It replaces the
// lookup derived from the cluster's Enums tables.
func WithEnumFunc(clusterID uint16, fn EnumFunc) RegistryOption {
	return func(b *registryBuilder) { b.enumFns[clusterID] = fn }
}

// NewRegistry builds a registry from cluster definitions. Definitions that
// share a cluster ID are merged in order, earlier entries winning.
func NewRegistry(defs []ClusterDef, opts ...RegistryOption) *Registry {
	b := &registryBuilder{enumFns: make(map[uint16]EnumFunc)}
	for _, opt := range opts {
		opt(b)
	}

	r := &Registry{
		clusters: make(map[uint16]*ClusterDef, len(defs)),
		enums:    make(map[uint16]EnumFunc, len(defs)),
	}
	for i := range defs {
		c := &defs[i]
		if existing, ok := r.clusters[c.ID]; ok {
			existing.Merge(c)
			b.debug("cluster merged", c.ID, existing.Name)
		} else {
			r.clusters[c.ID] = c.DeepCopy()
			b.debug("cluster registered", c.ID, c.Name)
		}
	}
	for id, c := range r.clusters {
		if fn, ok := b.enumFns[id]; ok {
			r.enums[id] = fn
		} else if len(c.Enums) > 0 {
			r.enums[id] = c.EnumFunc()
		}
	}
	for id, fn := range b.enumFns {
		if _, ok := r.enums[id]; !ok {
			r.enums[id] = fn
		}
	}
	return r
}

func (b *registryBuilder) debug(msg string, id uint16, name string) {
	if b.logger != nil {
		b.logger.Debug(msg, "id", fmt.Sprintf("0x%04X", id), "name", name)
	}
}

// Get returns a cluster definition by ID, or nil if not found.
// The returned value is a deep copy; callers may modify it safely.
func (r *Registry) Get(id uint16) *ClusterDef {
	c := r.clusters[id]
	if c == nil {
		return nil
	}
	return c.DeepCopy()
}

// AttributeName returns the display name of an attribute.
func (r *Registry) AttributeName(clusterID, attrID uint16) (string, bool) {
	c := r.clusters[clusterID]
	if c == nil {
		return "", false
	}
	a := c.FindAttribute(attrID)
	if a == nil {
		return "", false
	}
	return a.Name, true
}

// EnumName returns the symbolic name of a raw enum8 value.
func (r *Registry) EnumName(clusterID, attrID uint16, value uint8) (string, bool) {
	fn := r.enums[clusterID]
	if fn == nil {
		return "", false
	}
	return fn(attrID, value)
}

// All returns all registered cluster definitions ordered by ID.
// Each entry is a deep copy; callers may modify them safely.
func (r *Registry) All() []ClusterDef {
	result := make([]ClusterDef, 0, len(r.clusters))
	for _, c := range r.clusters {
		result = append(result, *c.DeepCopy())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
