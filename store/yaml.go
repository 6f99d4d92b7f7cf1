package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/guyvdb/dragonstore/fault"

	"gopkg.in/yaml.v3"
)

var _ Persister = (*YAMLFile)(nil)

type yamlDocument struct {
	FileId    string      `yaml:"file_id,omitempty"`
	Type      string      `yaml:"type"`
	CreatedAt time.Time   `yaml:"created_at"`
	NextId    Id          `yaml:"next_id"`
	Items     []yaml.Node `yaml:"items"`
}

// YAMLFile persists snapshots as a single human readable YAML document.
type YAMLFile struct {
	typeManager TypeManager
}

func NewYAMLFile(typeManager TypeManager) *YAMLFile {
	return &YAMLFile{typeManager: typeManager}
}

func (yf *YAMLFile) Write(snap Snapshot, path string) error {
	doc := yamlDocument{
		FileId:    snap.FileId,
		Type:      snap.TypeName,
		CreatedAt: snap.CreatedAt,
		NextId:    snap.NextId,
		Items:     make([]yaml.Node, 0, len(snap.Items)),
	}

	for i, item := range snap.Items {
		if item == nil {
			return fmt.Errorf("item %d: %w", i, fault.ErrNilStoreable)
		}
		var node yaml.Node
		if err := node.Encode(item); err != nil {
			return fmt.Errorf("item %d: %w: %w", i, fault.ErrMarshalFailed, err)
		}
		doc.Items = append(doc.Items, node)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %w", fault.ErrMarshalFailed, err)
	}

	slog.Debug("YAMLFile.Write() - write document", "path", path, "count", len(snap.Items))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (yf *YAMLFile) Read(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, fmt.Errorf("%s: %w", path, fault.ErrStorageNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("parsing %s: %w: %w", path, fault.ErrUnmarshalFailed, err)
	}

	snap := Snapshot{
		FileId:    doc.FileId,
		TypeName:  doc.Type,
		CreatedAt: doc.CreatedAt,
		NextId:    doc.NextId,
		Items:     make([]Storable, 0, len(doc.Items)),
	}
	for i := range doc.Items {
		instance, err := yf.typeManager.CreateInstance(doc.Type)
		if err != nil {
			return Snapshot{}, fault.ErrTypeNotCreated
		}
		if err := doc.Items[i].Decode(instance); err != nil {
			return Snapshot{}, fmt.Errorf("item %d: %w: %w", i, fault.ErrUnmarshalFailed, err)
		}
		snap.Items = append(snap.Items, instance)
	}

	slog.Debug("YAMLFile.Read() - read document", "path", path, "count", len(snap.Items))
	return snap, nil
}
