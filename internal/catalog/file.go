package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/mpx/internal/models"
	"github.com/desertthunder/mpx/internal/shared"
	"gopkg.in/yaml.v3"
)

// File reads entries from a TOML (.toml) or YAML (.yaml, .yml) document:
//
//	[[entries]]
//	id = "a1"
//	name = "Road trip"
//
// Entries without an id are assigned a generated one.
type File struct {
	Path string
}

type fileCatalog struct {
	Entries []models.Entry `toml:"entries" yaml:"entries"`
}

func (f File) Entries(ctx context.Context) ([]models.Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc fileCatalog
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: catalog file extension %q", shared.ErrUnsupportedFormat, ext)
	}

	entries := make([]models.Entry, len(doc.Entries))
	for i, e := range doc.Entries {
		if e.ID == "" {
			e.ID = shared.GenerateID()
		}
		entries[i] = e
	}
	return entries, nil
}
