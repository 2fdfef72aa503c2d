package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    age INTEGER NOT NULL,
    phone TEXT NOT NULL,
    access TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot (
    exported_at DATETIME NOT NULL,
    total INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contacts_id ON contacts (id);
CREATE INDEX IF NOT EXISTS idx_contacts_access ON contacts (access);`

// SQLiteExporter writes snapshots into a fresh SQLite database
type SQLiteExporter struct{}

// NewSQLiteExporter creates a new SQLite exporter
func NewSQLiteExporter() Exporter {
	return &SQLiteExporter{}
}

// Name returns the format identifier
func (e *SQLiteExporter) Name() string {
	return "sqlite"
}

// Extension returns the database file extension
func (e *SQLiteExporter) Extension() string {
	return ".db"
}

// Export creates the database at path with the snapshot rows. Ids are not a
// primary key because the store can hold duplicates.
func (e *SQLiteExporter) Export(ctx context.Context, path string, snap Snapshot) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO contacts (id, name, email, age, phone, access)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, c := range snap.Contacts {
		if _, err := insert.ExecContext(ctx, c.ID, c.Name, c.Email, c.Age, c.Phone, c.Access); err != nil {
			return fmt.Errorf("inserting contact %d: %w", c.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot (exported_at, total) VALUES (?, ?)`,
		snap.ExportedAt.UTC(), len(snap.Contacts),
	); err != nil {
		return fmt.Errorf("inserting snapshot row: %w", err)
	}

	return tx.Commit()
}

func init() {
	Register("sqlite", func() Exporter { return NewSQLiteExporter() })
}
