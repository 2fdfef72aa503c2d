package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pdxmph/contacts-board/internal/contacts"
)

type tomlDocument struct {
	ExportedAt time.Time          `toml:"exported_at"`
	Total      int                `toml:"total"`
	Contacts   []contacts.Contact `toml:"contacts"`
}

// TOMLExporter writes snapshots as a TOML document with one
// [[contacts]] table per row
type TOMLExporter struct{}

// NewTOMLExporter creates a new TOML exporter
func NewTOMLExporter() Exporter {
	return &TOMLExporter{}
}

// Name returns the format identifier
func (e *TOMLExporter) Name() string {
	return "toml"
}

// Extension returns the TOML file extension
func (e *TOMLExporter) Extension() string {
	return ".toml"
}

// Export writes the snapshot to path
func (e *TOMLExporter) Export(ctx context.Context, path string, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	doc := tomlDocument{
		ExportedAt: snap.ExportedAt.UTC(),
		Total:      len(snap.Contacts),
		Contacts:   snap.Contacts,
	}
	return writeTOML(path, doc)
}

// writeTOML encodes doc into a new file at path. The file must not exist;
// if encoding or closing fails it is removed again, so no partial snapshot
// is left behind.
func writeTOML(path string, doc any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// ReadTOML decodes a snapshot written by TOMLExporter
func ReadTOML(path string) (Snapshot, error) {
	var doc tomlDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return Snapshot{ExportedAt: doc.ExportedAt, Contacts: doc.Contacts}, nil
}

func init() {
	Register("toml", func() Exporter { return NewTOMLExporter() })
}
