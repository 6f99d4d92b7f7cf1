package dragon

import (
	"slices"
	"strings"
	"time"

	"github.com/guyvdb/dragonstore/store"
)

// Info summarises a Storage.
type Info struct {
	TypeName  string
	CreatedAt time.Time
	Count     int
	Location  string
}

// Storage is the ordered dragon collection together with the queries that
// need to look at dragon fields.
type Storage struct {
	*store.Collection[*Dragon]
}

const storageTypeName = "DragonVectorStorage"

func NewStorage(location string, opts ...store.Option) *Storage {
	return &Storage{
		Collection: store.NewCollection[*Dragon](DRAGON_TYPE_NAME, location, opts...),
	}
}

// CountByColor counts dragons whose color equals color, ColorNone included.
func (s *Storage) CountByColor(color Color) int {
	return s.Count(func(d *Dragon) bool {
		return d.Color == color
	})
}

// FilterStartsWithName returns the named dragons whose name begins with
// prefix, in sequence order. Dragons without a name never match.
func (s *Storage) FilterStartsWithName(prefix string) []*Dragon {
	return s.Filter(func(d *Dragon) bool {
		return d.HasName() && strings.HasPrefix(d.Name, prefix)
	})
}

// GetAllDescendingCave returns every cave, deepest first. Equal caves keep
// their sequence order.
func (s *Storage) GetAllDescendingCave() []Cave {
	caves := make([]Cave, 0, s.Len())
	for _, d := range s.Items() {
		caves = append(caves, d.Cave)
	}
	slices.SortStableFunc(caves, func(a, b Cave) int {
		return b.Compare(a)
	})
	return caves
}

// RemoveLower removes every dragon strictly younger than threshold and
// returns how many were removed.
func (s *Storage) RemoveLower(threshold *Dragon) int {
	return s.RemoveIf(func(d *Dragon) bool {
		return threshold != nil && d.Age < threshold.Age
	})
}

// Show returns the dragons in sequence order.
func (s *Storage) Show() []*Dragon {
	return s.Items()
}

func (s *Storage) Info() Info {
	return Info{
		TypeName:  storageTypeName,
		CreatedAt: s.CreatedAt(),
		Count:     s.Len(),
		Location:  s.Location(),
	}
}
