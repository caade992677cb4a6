// Package history keeps an append-only SQLite journal of batch outcomes.
// It is bookkeeping only: renaming decisions never consult it, and metadata
// is never cached across runs.
package history

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/doc-renamer/internal/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS run_file (
	id           TEXT PRIMARY KEY,
	run_id       TEXT NOT NULL,
	source_path  TEXT NOT NULL,
	content_hash TEXT,
	format       TEXT NOT NULL,
	status       TEXT NOT NULL,
	reason       TEXT,
	new_name     TEXT,
	dest_path    TEXT,
	recorded_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_file_run ON run_file(run_id);
`

// Recordable is the subset of a pipeline outcome the journal persists.
// Declared here so history does not import the pipeline package.
type Recordable interface {
	JournalRow() (sourcePath, format, status, reason, newName, destPath string)
}

type Journal struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the journal database at path.
func Open(path string, logger *slog.Logger) (*Journal, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "open journal "+path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "init journal schema")
	}
	return &Journal{db: db, logger: logger}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one outcome row. The source content hash is best-effort:
// a file that vanished mid-run still gets its outcome journaled.
func (j *Journal) Record(ctx context.Context, runID uuid.UUID, o Recordable) error {
	source, format, status, reason, newName, destPath := o.JournalRow()

	hash, err := hashFile(source)
	if err != nil {
		j.logger.Warn("journal.hash_failed", "path", source, "error", err)
		hash = ""
	}

	_, err = j.db.ExecContext(ctx,
		`INSERT INTO run_file (id, run_id, source_path, content_hash, format, status, reason, new_name, dest_path, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), runID.String(), source, hash, format,
		status, reason, newName, destPath,
		time.Now().UTC().Format(time.RFC3339),
	)
	return common.WrapError(err, "insert journal row")
}

// RunCounts returns placed/skipped totals for one run, mostly for tests and
// ad-hoc inspection with the sqlite CLI.
func (j *Journal) RunCounts(ctx context.Context, runID uuid.UUID) (placed, skipped int, err error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM run_file WHERE run_id = ? GROUP BY status`, runID.String())
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, 0, err
		}
		switch status {
		case "PLACED":
			placed = n
		case "SKIPPED":
			skipped = n
		}
	}
	return placed, skipped, rows.Err()
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
