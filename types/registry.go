package types

import "github.com/guyvdb/dragonstore/store"

type TypeFactory func() store.Storable

// The registry records known record types by name so that persisted
// records can be instantiated again when they are read back.
type Registry interface {
	store.TypeManager

	// Register a Storable with the registry
	Register(typeName string, factory TypeFactory)

	// Create a concrete type of a Storable
	Instance(typeName string) (store.Storable, error)

	// All registered type names, sorted
	TypeNames() []string
}

// Global function to return the one and only registry
var registry Registry = nil

func GetRegistry() Registry {
	if registry == nil {
		registry = NewSystemRegistry()
	}
	return registry
}
