package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/guyvdb/dragonstore/config"
	"github.com/guyvdb/dragonstore/dragon"
	"github.com/guyvdb/dragonstore/fault"
	"github.com/guyvdb/dragonstore/store"
	"github.com/guyvdb/dragonstore/types"
)

// Session is the state shared by every command of one process run: the
// collection, where it is persisted and where results are reported.
type Session struct {
	Storage   *dragon.Storage
	Persister store.Persister
	Path      string

	dirty   bool
	scripts map[string]bool
}

// OpenSession creates the collection described by cfg and loads it from
// cfg.Storage.Path when that file exists.
func OpenSession(cfg config.Config) (*Session, error) {
	persister, err := store.ForPath(cfg.Storage.Path, cfg.Storage.Format, types.GetRegistry())
	if err != nil {
		return nil, err
	}

	s := &Session{
		Storage:   dragon.NewStorage(cfg.Storage.Path, store.WithResetOnClear(cfg.Collection.ResetCounterOnClear)),
		Persister: persister,
		Path:      cfg.Storage.Path,
		scripts:   make(map[string]bool),
	}

	snap, err := persister.Read(cfg.Storage.Path)
	if errors.Is(err, fault.ErrStorageNotFound) {
		slog.Info("OpenSession() - no storage file, starting empty", "path", cfg.Storage.Path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.Storage.Path, err)
	}

	skipped, err := s.Storage.Load(snap)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.Storage.Path, err)
	}
	if skipped > 0 {
		slog.Warn("OpenSession() - skipped invalid elements", "path", cfg.Storage.Path, "skipped", skipped)
	}
	return s, nil
}

// Save writes the collection to the session path.
func (s *Session) Save() error {
	if err := s.Storage.Save(s.Persister, s.Path); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) markDirty() {
	s.dirty = true
}

// enterScript guards against a script executing itself, directly or
// through other scripts.
func (s *Session) enterScript(path string) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if s.scripts[abs] {
		return nil, fmt.Errorf("script %s is already running: %w", path, ErrRecursiveScript)
	}
	s.scripts[abs] = true
	return func() { delete(s.scripts, abs) }, nil
}
