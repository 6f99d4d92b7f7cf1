package store

import "time"

// Storable is the capability the collection depends on. The collection
// never looks at record fields; it only asks whether a record is valid and
// reads or rewrites its id.
type Storable interface {
	GetId() Id
	SetId(id Id)
	IsValid() bool
	GetTypeName() string
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// TypeManager creates empty instances of a registered record type so that
// readers can decode persisted records into them.
type TypeManager interface {
	CreateInstance(typeName string) (Storable, error)
}

// Snapshot is the persisted view of a collection.
type Snapshot struct {
	FileId    string
	TypeName  string
	CreatedAt time.Time
	NextId    Id
	Items     []Storable
}

// Writer persists a snapshot to an external target. The target is owned by
// the caller and is not retained between calls.
type Writer interface {
	Write(snap Snapshot, target string) error
}

// Reader loads a snapshot from an external target.
type Reader interface {
	Read(target string) (Snapshot, error)
}

type Persister interface {
	Writer
	Reader
}
