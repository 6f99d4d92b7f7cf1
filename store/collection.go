package store

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/guyvdb/dragonstore/fault"
)

type options struct {
	now          func() time.Time
	resetOnClear bool
}

type Option func(*options)

// WithClock overrides the clock used to stamp the creation time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithResetOnClear makes Clear restart id allocation at 1. By default the
// counter survives a Clear and the next Add continues from its old value.
func WithResetOnClear(reset bool) Option {
	return func(o *options) {
		o.resetOnClear = reset
	}
}

// Collection is an ordered, in memory sequence of records of one type.
//
// Ids are owned by the collection. Add assigns the next id; every other
// operation that changes membership or order re-numbers the whole sequence
// so ids are 1..Len() and NextId() is Len()+1.
//
// A Collection is not safe for concurrent use.
type Collection[T Storable] struct {
	items        []T
	nextId       Id
	createdAt    time.Time
	typeName     string
	location     string
	resetOnClear bool
}

// NewCollection creates an empty collection. location is a label for the
// persistence target and is never interpreted.
func NewCollection[T Storable](typeName, location string, opts ...Option) *Collection[T] {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	slog.Debug("NewCollection - create collection", "typeName", typeName, "location", location)

	return &Collection[T]{
		items:        make([]T, 0),
		nextId:       1,
		createdAt:    o.now(),
		typeName:     typeName,
		location:     location,
		resetOnClear: o.resetOnClear,
	}
}

func (c *Collection[T]) TypeName() string     { return c.typeName }
func (c *Collection[T]) Location() string     { return c.location }
func (c *Collection[T]) CreatedAt() time.Time { return c.createdAt }
func (c *Collection[T]) NextId() Id           { return c.nextId }
func (c *Collection[T]) Len() int             { return len(c.items) }

// Items returns a copy of the sequence. The records themselves are shared.
func (c *Collection[T]) Items() []T {
	return slices.Clone(c.items)
}

// Get returns the record carrying id.
func (c *Collection[T]) Get(id Id) (T, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zeroT T
	return zeroT, false
}

// Add appends a valid item and assigns it the next id.
func (c *Collection[T]) Add(item T) error {
	if !item.IsValid() {
		return fault.ErrInvalidElement
	}
	c.items = append(c.items, item)
	item.SetId(c.nextId)
	c.nextId++

	slog.Debug("Collection.Add() - added item", "id", item.GetId(), "count", len(c.items))
	return nil
}

// Update replaces the record carrying id and re-numbers the sequence.
func (c *Collection[T]) Update(id Id, item T) error {
	if !item.IsValid() {
		return fault.ErrInvalidElement
	}
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update id %s: %w", id, fault.ErrNotFound)
	}
	c.items[i] = item
	c.renumber()

	slog.Debug("Collection.Update() - replaced item", "id", id, "position", i)
	return nil
}

// RemoveById removes the first record carrying id. It reports false when no
// record carries it, in which case nothing is re-numbered.
func (c *Collection[T]) RemoveById(id Id) bool {
	i := c.indexOf(id)
	if i < 0 {
		slog.Debug("Collection.RemoveById() - id not found", "id", id, "nextId", c.nextId)
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.renumber()
	return true
}

// InsertAt inserts a valid item at a 0-based position, shifting later
// records, and re-numbers the sequence. position may equal Len().
func (c *Collection[T]) InsertAt(position int, item T) error {
	if !item.IsValid() {
		return fault.ErrInvalidElement
	}
	if position < 0 || position > len(c.items) {
		return fmt.Errorf("insert at %d with %d elements: %w", position, len(c.items), fault.ErrPositionOutOfRange)
	}
	c.items = slices.Insert(c.items, position, item)
	c.renumber()
	return nil
}

// Clear drops every record.
func (c *Collection[T]) Clear() {
	c.items = make([]T, 0)
	if c.resetOnClear {
		c.nextId = 1
	}
	slog.Debug("Collection.Clear() - cleared", "nextId", c.nextId)
}

// Reorder reverses the sequence and re-numbers it.
func (c *Collection[T]) Reorder() {
	slices.Reverse(c.items)
	c.renumber()
}

// RemoveIf removes every record matching pred and re-numbers the sequence,
// whether or not anything was removed. It returns the number removed.
func (c *Collection[T]) RemoveIf(pred func(T) bool) int {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, pred)
	c.renumber()
	return before - len(c.items)
}

// Count returns the number of records matching pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	n := 0
	for _, item := range c.items {
		if pred(item) {
			n++
		}
	}
	return n
}

// Filter returns the records matching pred in sequence order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Snapshot exports the collection for a Writer.
func (c *Collection[T]) Snapshot() Snapshot {
	return Snapshot{
		TypeName:  c.typeName,
		CreatedAt: c.createdAt,
		NextId:    c.nextId,
		Items:     AllStorable(c.items),
	}
}

// Load replaces the sequence with the items of snap. Invalid items are
// skipped. The loaded sequence is re-numbered.
func (c *Collection[T]) Load(snap Snapshot) (int, error) {
	if snap.TypeName != "" && snap.TypeName != c.typeName {
		return 0, fmt.Errorf("load %s into %s collection: %w", snap.TypeName, c.typeName, fault.ErrTypeMismatch)
	}

	accepted := make([]Storable, 0, len(snap.Items))
	for i, item := range snap.Items {
		if item == nil || !item.IsValid() {
			slog.Warn("Collection.Load() - skipping invalid item", "index", i, "location", c.location)
			continue
		}
		accepted = append(accepted, item)
	}

	typed, err := AllAs[T](accepted)
	if err != nil {
		return 0, err
	}
	c.items = typed
	c.renumber()

	slog.Debug("Collection.Load() - loaded items", "count", len(c.items), "skipped", len(snap.Items)-len(c.items))
	return len(snap.Items) - len(c.items), nil
}

// Save hands the collection and target to w. The target is not retained.
func (c *Collection[T]) Save(w Writer, target string) error {
	if err := w.Write(c.Snapshot(), target); err != nil {
		return fmt.Errorf("save %s: %w", target, err)
	}
	return nil
}

func (c *Collection[T]) indexOf(id Id) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.GetId() == id
	})
}

func (c *Collection[T]) renumber() {
	c.nextId = Renumber(c.items)
}
