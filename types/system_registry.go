package types

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/guyvdb/dragonstore/fault"
	"github.com/guyvdb/dragonstore/store"
)

var _ Registry = (*SystemRegistry)(nil)
var _ store.TypeManager = (*SystemRegistry)(nil)

type RegistryItem struct {
	TypeName string
	Factory  TypeFactory
}

// SystemRegistry implements Registry. Registration normally happens from
// package init functions, so it is guarded by a lock.
type SystemRegistry struct {
	mu            sync.RWMutex
	typeNameIndex map[string]*RegistryItem
}

func NewSystemRegistry() *SystemRegistry {
	slog.Debug("NewSystemRegistry - create registry")
	return &SystemRegistry{
		typeNameIndex: make(map[string]*RegistryItem),
	}
}

// Register adds or replaces the factory for typeName.
func (r *SystemRegistry) Register(typeName string, factory TypeFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.typeNameIndex[typeName]; found {
		slog.Warn("SystemRegistry.Register() - replacing factory", "typeName", typeName)
	}
	r.typeNameIndex[typeName] = &RegistryItem{TypeName: typeName, Factory: factory}
}

// Instance creates a new, empty instance of typeName.
func (r *SystemRegistry) Instance(typeName string) (store.Storable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, found := r.typeNameIndex[typeName]
	if !found {
		return nil, fault.ErrTypeNotFound
	}

	instance := info.Factory()
	if instance == nil {
		return nil, fault.ErrTypeNotCreated
	}
	return instance, nil
}

func (r *SystemRegistry) CreateInstance(typeName string) (store.Storable, error) {
	return r.Instance(typeName)
}

func (r *SystemRegistry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.typeNameIndex))
	for name := range r.typeNameIndex {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
