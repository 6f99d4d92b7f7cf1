package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/guyvdb/dragonstore/fault"
)

const (
	FormatBolt = "bolt"
	FormatYAML = "yaml"
)

// ForPath returns the persister for format, or, when format is empty, the
// one matching the extension of path. Anything that is not .yaml or .yml is
// stored in a bolt file.
func ForPath(path, format string, typeManager TypeManager) (Persister, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatBolt
		}
	}

	switch strings.ToLower(format) {
	case FormatBolt:
		return NewBoltFile(typeManager), nil
	case FormatYAML:
		return NewYAMLFile(typeManager), nil
	}
	return nil, fmt.Errorf("%w: %q", fault.ErrUnknownFormat, format)
}
