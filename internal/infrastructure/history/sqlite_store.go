package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/pkg/filesystem"
	"github.com/sheldir/provsh/internal/ports"
)

// SQLiteStore persists the provision log in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path; when empty, the
// default ~/.provsh/history/provisions.db is used. When the database cannot
// be opened the store degrades to the JSONL file store at the same location.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".provsh", "history", "provisions.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		// fallback to file store
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS provisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		variable TEXT,
		status TEXT,
		reason TEXT,
		profile_path TEXT,
		dialect TEXT
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.ProvisionRecord) error {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO provisions
		(timestamp, variable, status, reason, profile_path, dialect)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Variable,
		string(record.Status),
		record.Reason,
		record.ProfilePath,
		string(record.Dialect),
	)
	return err
}

// Records returns log entries, newest first (limit optional).
func (s *SQLiteStore) Records(limit int) ([]domain.ProvisionRecord, error) {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Records(limit)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, variable, status, reason, profile_path, dialect FROM provisions ORDER BY datetime(timestamp) DESC")
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.ProvisionRecord
	for rows.Next() {
		var rec domain.ProvisionRecord
		var ts, status, dialect string
		if err := rows.Scan(&ts, &rec.Variable, &status, &rec.Reason, &rec.ProfilePath, &dialect); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Status = domain.ProvisionStatus(status)
		rec.Dialect = domain.ShellDialect(dialect)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all log entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM provisions")
	return err
}

// ExportJSON writes the provision log to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0)
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func fallbackPath(dbPath string) string {
	return strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".jsonl"
}

var _ ports.ProvisionLog = (*SQLiteStore)(nil)
