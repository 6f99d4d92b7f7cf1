package store

import (
	"fmt"

	"github.com/guyvdb/dragonstore/fault"
)

// AllAs casts every item to T, failing on the first item of another type.
func AllAs[T Storable](items []Storable) ([]T, error) {
	typedItems := make([]T, 0, len(items))
	var zeroT T

	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("store.AllAs: item at index %d: %w", i, fault.ErrNilStoreable)
		}
		typedItem, ok := item.(T)
		if !ok {
			return nil, fmt.Errorf("store.AllAs: item at index %d (type %T) cannot be cast to %T: %w", i, item, zeroT, fault.ErrTypeMismatch)
		}
		typedItems = append(typedItems, typedItem)
	}
	return typedItems, nil
}

// AllStorable widens a typed slice back to Storables.
func AllStorable[T Storable](items []T) []Storable {
	out := make([]Storable, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
