package store

import "github.com/vitaliksorokov/pump-short-bot/internal/domain"

// Store defines persistence for per-user settings records.
type Store interface {
	// Load returns the settings for userID, merged over defaults.
	// It never fails: a missing user yields the default record and an
	// unreadable table is treated as empty.
	Load(userID int64) domain.Settings
	// Save writes the record for userID and persists the whole table
	// atomically. Write failures propagate.
	Save(userID int64, s domain.Settings) error
	// All returns every stored record, decoded and repaired.
	All() map[int64]domain.Settings
}
