package store

import (
	"encoding/json"
	"fmt"
)

const testTypeName = "TestItem"

type testItem struct {
	Id    Id     `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Age   int    `json:"age" yaml:"age"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func item(name string, age int) *testItem {
	return &testItem{Name: name, Age: age, Valid: true}
}

func invalid(name string) *testItem {
	return &testItem{Name: name}
}

func (t *testItem) GetId() Id                   { return t.Id }
func (t *testItem) SetId(id Id)                 { t.Id = id }
func (t *testItem) IsValid() bool               { return t.Valid }
func (t *testItem) GetTypeName() string         { return testTypeName }
func (t *testItem) Marshal() ([]byte, error)    { return json.Marshal(t) }
func (t *testItem) Unmarshal(data []byte) error { return json.Unmarshal(data, t) }

type testTypes struct{}

func (testTypes) CreateInstance(typeName string) (Storable, error) {
	if typeName != testTypeName {
		return nil, fmt.Errorf("unknown type %s", typeName)
	}
	return &testItem{}, nil
}

func newTestCollection(opts ...Option) *Collection[*testItem] {
	return NewCollection[*testItem](testTypeName, "test.db", opts...)
}

func names(items []*testItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func ids(items []*testItem) []Id {
	out := make([]Id, len(items))
	for i, it := range items {
		out[i] = it.Id
	}
	return out
}

// dense checks that ids run 1..n in order and nextId is n+1.
func dense(c *Collection[*testItem]) bool {
	for i, it := range c.Items() {
		if it.Id != Id(i+1) {
			return false
		}
	}
	return c.NextId() == Id(c.Len()+1)
}
