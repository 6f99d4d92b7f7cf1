package dragon

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/guyvdb/dragonstore/store"
	"github.com/guyvdb/dragonstore/types"
)

const DRAGON_TYPE_NAME string = "Dragon"

// Coordinate limits. X must be greater than MinX and Y at most MaxY.
const (
	MinX int64   = -596
	MaxY float64 = 655
)

var _ store.Storable = (*Dragon)(nil)

type Coordinates struct {
	X int64   `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Dragon struct {
	Id           store.Id    `json:"id" yaml:"id"`
	Name         string      `json:"name,omitempty" yaml:"name,omitempty"`
	Coordinates  Coordinates `json:"coordinates" yaml:"coordinates"`
	CreationDate time.Time   `json:"creationDate" yaml:"creation_date"`
	Age          int64       `json:"age" yaml:"age"`
	Color        Color       `json:"color,omitempty" yaml:"color,omitempty"`
	Cave         Cave        `json:"cave" yaml:"cave"`
}

func init() {
	types.GetRegistry().Register(DRAGON_TYPE_NAME, dragonFactory)
}

func dragonFactory() store.Storable {
	return &Dragon{}
}

// New creates a Dragon stamped with the current time. The id is left for
// the collection to assign.
func New(name string, coordinates Coordinates, age int64, color Color, cave Cave) *Dragon {
	return &Dragon{
		Name:         name,
		Coordinates:  coordinates,
		CreationDate: time.Now(),
		Age:          age,
		Color:        color,
		Cave:         cave,
	}
}

func (d *Dragon) GetId() store.Id {
	return d.Id
}

func (d *Dragon) SetId(id store.Id) {
	d.Id = id
}

func (d *Dragon) GetTypeName() string {
	return DRAGON_TYPE_NAME
}

// HasName reports whether the optional name is present.
func (d *Dragon) HasName() bool {
	return d.Name != ""
}

// IsValid checks the field rules of a Dragon. The name is optional.
func (d *Dragon) IsValid() bool {
	if d == nil {
		return false
	}
	if d.Coordinates.X <= MinX || d.Coordinates.Y > MaxY {
		return false
	}
	if d.Age <= 0 {
		return false
	}
	if !d.Color.IsValid() {
		return false
	}
	return d.Cave.IsValid()
}

// Marshal serializes the Dragon to a byte slice.
func (d *Dragon) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// Unmarshal deserializes a byte slice into the Dragon.
func (d *Dragon) Unmarshal(data []byte) error {
	return json.Unmarshal(data, d)
}

func (d *Dragon) String() string {
	name := d.Name
	if !d.HasName() {
		name = "<none>"
	}
	return fmt.Sprintf("Dragon{id=%d, name=%s, coordinates=(%d, %g), creationDate=%s, age=%d, color=%s, cave=%s}",
		d.Id, name, d.Coordinates.X, d.Coordinates.Y, d.CreationDate.Format(time.RFC3339), d.Age, d.Color, d.Cave)
}
