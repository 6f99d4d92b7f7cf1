package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/guyvdb/dragonstore/fault"

	"go.etcd.io/bbolt"
)

var _ Persister = (*BoltFile)(nil)

var (
	metaBucketName = []byte("Meta")
	keyFileId      = []byte("file_id")
	keyCreatedAt   = []byte("created_at")
	keyNextId      = []byte("next_id")
	keyTypeName    = []byte("type_name")
)

// BoltFile persists snapshots in a BoltDB file. Records live in the bucket
// "Type.<TypeName>" keyed by their big endian position, so a cursor walks
// them in sequence order. The database is opened for the duration of a
// single Read or Write call.
type BoltFile struct {
	typeManager TypeManager
	timeout     time.Duration
}

// NewBoltFile creates a BoltFile that instantiates records through typeManager.
func NewBoltFile(typeManager TypeManager) *BoltFile {
	return &BoltFile{typeManager: typeManager, timeout: time.Second}
}

// Write replaces the records stored at path with snap.
func (bf *BoltFile) Write(snap Snapshot, path string) error {
	slog.Debug("BoltFile.Write() - open bolt db", "path", path, "count", len(snap.Items))

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: bf.timeout})
	if err != nil {
		return fmt.Errorf("failed to open bolt db %s: %w: %w", path, fault.ErrStorageOpenFailed, err)
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(metaBucketName)
		if err != nil {
			return fault.ErrBucketCreateFailed
		}
		if err := bf.putMeta(meta, snap); err != nil {
			return err
		}

		bucketName := typeBucketKey(snap.TypeName)
		if tx.Bucket(bucketName) != nil {
			if err := tx.DeleteBucket(bucketName); err != nil {
				return fmt.Errorf("failed to drop bucket %s: %w", string(bucketName), err)
			}
		}
		bucket, err := tx.CreateBucket(bucketName)
		if err != nil {
			return fault.ErrBucketCreateFailed
		}

		for i, item := range snap.Items {
			if item == nil {
				return fault.ErrNilStoreable
			}
			data, err := item.Marshal()
			if err != nil {
				return fault.ErrMarshalFailed
			}
			if err := bucket.Put(positionKey(i), data); err != nil {
				return fault.ErrPutFailed
			}
		}
		return nil
	})
}

func (bf *BoltFile) putMeta(meta *bbolt.Bucket, snap Snapshot) error {
	if meta.Get(keyFileId) == nil {
		fileId := snap.FileId
		if fileId == "" {
			fileId = uuid.NewString()
		}
		if err := meta.Put(keyFileId, []byte(fileId)); err != nil {
			return fault.ErrPutFailed
		}
	}

	nextId := make([]byte, 8)
	binary.BigEndian.PutUint64(nextId, uint64(snap.NextId))

	entries := [][2][]byte{
		{keyCreatedAt, snap.CreatedAt.AppendFormat(make([]byte, 0, 35), time.RFC3339Nano)},
		{keyNextId, nextId},
		{keyTypeName, []byte(snap.TypeName)},
	}
	for _, e := range entries {
		if err := meta.Put(e[0], e[1]); err != nil {
			return fault.ErrPutFailed
		}
	}
	return nil
}

// Read loads the snapshot stored at path.
func (bf *BoltFile) Read(path string) (Snapshot, error) {
	var snap Snapshot

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return snap, fmt.Errorf("%s: %w", path, fault.ErrStorageNotFound)
	}

	slog.Debug("BoltFile.Read() - open bolt db", "path", path)

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: bf.timeout, ReadOnly: true})
	if err != nil {
		return snap, fmt.Errorf("failed to open bolt db %s: %w: %w", path, fault.ErrStorageOpenFailed, err)
	}
	defer db.Close()

	err = db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(metaBucketName)
		if meta == nil {
			return fault.ErrBucketNotFound
		}

		snap.FileId = string(meta.Get(keyFileId))
		snap.TypeName = string(meta.Get(keyTypeName))
		if v := meta.Get(keyNextId); len(v) == 8 {
			snap.NextId = Id(binary.BigEndian.Uint64(v))
		}
		if v := meta.Get(keyCreatedAt); v != nil {
			createdAt, err := time.Parse(time.RFC3339Nano, string(v))
			if err != nil {
				return fmt.Errorf("created_at: %w: %w", fault.ErrUnmarshalFailed, err)
			}
			snap.CreatedAt = createdAt
		}

		bucket := tx.Bucket(typeBucketKey(snap.TypeName))
		if bucket == nil {
			// Metadata without records: an empty collection.
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			instance, err := bf.typeManager.CreateInstance(snap.TypeName)
			if err != nil {
				return fault.ErrTypeNotCreated
			}

			// v is only valid for the lifetime of the transaction.
			valueBytes := make([]byte, len(v))
			copy(valueBytes, v)

			if err := instance.Unmarshal(valueBytes); err != nil {
				return fault.ErrUnmarshalFailed
			}
			snap.Items = append(snap.Items, instance)
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	if snap.Items == nil {
		snap.Items = make([]Storable, 0)
	}
	return snap, nil
}

func typeBucketKey(typeName string) []byte {
	return []byte("Type." + typeName)
}

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}
