package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/pdxmph/contacts-board/internal/contacts"
)

// Snapshot is the set of rows written by an exporter
type Snapshot struct {
	ExportedAt time.Time
	Contacts   []contacts.Contact
}

// Exporter defines the interface every snapshot format must implement
type Exporter interface {
	// Name returns the format identifier (e.g., "sqlite", "toml")
	Name() string

	// Extension returns the file extension, including the dot
	Extension() string

	// Export writes the snapshot to path. It fails if path already exists.
	Export(ctx context.Context, path string, snap Snapshot) error
}

// ExporterFactory is a function that creates a new instance of an Exporter
type ExporterFactory func() Exporter

// FileName builds a timestamped file name for an exporter inside dir. When
// that name is taken a counter is appended, as in contacts-20261018-150405-2.db,
// so two exports within the same second both succeed.
func FileName(dir string, e Exporter, at time.Time) string {
	base := "contacts-" + at.Format("20060102-150405")
	path := filepath.Join(dir, base+e.Extension())
	for n := 2; exists(path); n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, n, e.Extension()))
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ToDir writes list into a new timestamped file in dir and returns its path.
// The rows are copied, so callers may keep mutating their own slice.
func ToDir(ctx context.Context, e Exporter, dir string, list []contacts.Contact, at time.Time, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path := FileName(dir, e, at)
	snap := Snapshot{ExportedAt: at, Contacts: slices.Clone(list)}

	if err := e.Export(ctx, path, snap); err != nil {
		logger.Error("export failed", zap.String("format", e.Name()), zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("exporting %s snapshot: %w", e.Name(), err)
	}

	logger.Info("snapshot exported",
		zap.String("format", e.Name()),
		zap.String("path", path),
		zap.Int("rows", len(list)))
	return path, nil
}
