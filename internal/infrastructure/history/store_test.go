package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheldir/provsh/internal/domain"
)

func sampleRecord(variable string, status domain.ProvisionStatus, ts time.Time) domain.ProvisionRecord {
	return domain.ProvisionRecord{
		Timestamp:   ts,
		Variable:    variable,
		Status:      status,
		Reason:      "test reason",
		ProfilePath: "/home/u/.zshrc",
		Dialect:     domain.DialectZsh,
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisions.db")
	store := NewSQLiteStore(path)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(sampleRecord("A_KEY", domain.StatusUpdated, base)))
	require.NoError(t, store.Save(sampleRecord("B_KEY", domain.StatusSkipped, base.Add(time.Minute))))

	records, err := store.Records(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "B_KEY", records[0].Variable)
	assert.Equal(t, domain.StatusSkipped, records[0].Status)
	assert.Equal(t, "A_KEY", records[1].Variable)
	assert.Equal(t, domain.DialectZsh, records[1].Dialect)
	assert.Equal(t, "/home/u/.zshrc", records[1].ProfilePath)
}

func TestSQLiteStoreLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisions.db")
	store := NewSQLiteStore(path)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(sampleRecord("K", domain.StatusUpdated, base.Add(time.Duration(i)*time.Second))))
	}

	records, err := store.Records(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestSQLiteStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisions.db")
	store := NewSQLiteStore(path)

	require.NoError(t, store.Save(sampleRecord("K", domain.StatusUpdated, time.Now())))
	require.NoError(t, store.Clear())

	records, err := store.Records(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLiteStoreExportJSON(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "provisions.db"))
	require.NoError(t, store.Save(sampleRecord("K", domain.StatusFailed, time.Now())))

	dest := filepath.Join(dir, "export.jsonl")
	require.NoError(t, store.ExportJSON(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"variable":"K"`)
	assert.Contains(t, string(data), `"status":"failed"`)
}

func TestSQLiteStoreExportPreservesStoredTimestamps(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "provisions.db"))

	// A record with a zero timestamp exports exactly as stored.
	rec := sampleRecord("K", domain.StatusUpdated, time.Time{})
	require.NoError(t, store.Save(rec))

	dest := filepath.Join(dir, "export.jsonl")
	require.NoError(t, store.ExportJSON(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"0001-01-01T00:00:00Z"`)
}

func TestSQLiteStoreFallsBackWhenDatabaseUnusable(t *testing.T) {
	// A directory at the database path makes initialization fail; the store
	// degrades to the JSONL fallback and stays usable.
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "provisions.db")
	require.NoError(t, os.Mkdir(dbPath, 0o755))

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Save(sampleRecord("K", domain.StatusUpdated, time.Now())))

	records, err := store.Records(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "K", records[0].Variable)

	// The fallback lives next to the unusable database path.
	_, err = os.Stat(fallbackPath(dbPath))
	assert.NoError(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisions.jsonl")
	store := NewFileStore(path)

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.Save(sampleRecord("A_KEY", domain.StatusUpdated, base)))
	require.NoError(t, store.Save(sampleRecord("B_KEY", domain.StatusSkipped, base.Add(time.Minute))))

	records, err := store.Records(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "B_KEY", records[0].Variable)
	assert.Equal(t, "A_KEY", records[1].Variable)

	limited, err := store.Records(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "B_KEY", limited[0].Variable)
}

func TestFileStoreClearAndMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provisions.jsonl")
	store := NewFileStore(path)

	// Clearing or reading a store that never saved anything is fine.
	require.NoError(t, store.Clear())
	records, err := store.Records(0)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, store.Save(sampleRecord("K", domain.StatusUpdated, time.Now())))
	require.NoError(t, store.Clear())
	records, err = store.Records(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
