package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/vitaliksorokov/pump-short-bot/internal/domain"
)

// FileStore keeps the settings table in a single JSON file keyed by
// stringified user id. Every save rewrites the whole table through a
// temp file plus rename, so the file on disk is always either the
// pre-save or the post-save version.
//
// The mutex serializes table rewrites; a load→handle→save sequence for
// the same user is still last-writer-wins at record granularity, which
// is accepted (one human edits one menu at a time).
type FileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewFileStore creates the store and the parent directory of path.
func NewFileStore(path string, log *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: path, log: log}, nil
}

// Load returns the settings for userID merged over defaults.
func (fs *FileStore) Load(userID int64) domain.Settings {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	table := fs.readTable()
	return decodeEntry(table[strconv.FormatInt(userID, 10)])
}

// Save writes the record for userID and atomically replaces the table file.
func (fs *FileStore) Save(userID int64, s domain.Settings) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	table := fs.readTable()
	entry, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	table[strconv.FormatInt(userID, 10)] = entry

	return fs.writeTable(table)
}

// All returns every stored record, decoded and repaired over defaults.
func (fs *FileStore) All() map[int64]domain.Settings {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	table := fs.readTable()
	out := make(map[int64]domain.Settings, len(table))
	for key, entry := range table {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			fs.log.Warn("skipping non-numeric settings key", zap.String("key", key))
			continue
		}
		out[id] = decodeEntry(entry)
	}
	return out
}

// readTable reads the whole table. A missing file is an empty table;
// a corrupt one is logged and likewise treated as empty, so the next
// successful save repairs it.
func (fs *FileStore) readTable() map[string]json.RawMessage {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fs.log.Warn("settings table unreadable, treating as empty", zap.Error(err))
		}
		return map[string]json.RawMessage{}
	}
	var table map[string]json.RawMessage
	if err := json.Unmarshal(data, &table); err != nil {
		fs.log.Warn("settings table corrupt, treating as empty", zap.Error(err))
		return map[string]json.RawMessage{}
	}
	if table == nil {
		table = map[string]json.RawMessage{}
	}
	return table
}

// writeTable persists the table via temp file + atomic rename.
func (fs *FileStore) writeTable(table map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp table: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace table: %w", err)
	}
	return nil
}

// decodeEntry repairs one stored entry field by field over defaults.
func decodeEntry(entry json.RawMessage) domain.Settings {
	if entry == nil {
		return domain.DefaultSettings()
	}
	var raw map[string]any
	if err := json.Unmarshal(entry, &raw); err != nil {
		return domain.DefaultSettings()
	}
	return domain.FromMap(raw)
}
