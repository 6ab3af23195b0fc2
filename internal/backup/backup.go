// Package backup writes and restores encrypted copies of the event list.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dukerupert/weekcal/internal/calendar"
	"github.com/dukerupert/weekcal/internal/model"
	"github.com/dukerupert/weekcal/internal/store"
)

var ErrNoPassphrase = errors.New("backup passphrase is empty")

// Snapshots is the part of the snapshot store a backup needs.
type Snapshots interface {
	Save(events []model.Event) error
	Load() []model.Event
}

// Export encrypts the current event list to path and returns how many
// events were written.
func Export(snapshots Snapshots, path, passphrase string) (int, error) {
	if passphrase == "" {
		return 0, ErrNoPassphrase
	}

	events := snapshots.Load()
	data, err := json.Marshal(events)
	if err != nil {
		return 0, fmt.Errorf("marshal events: %w", err)
	}

	sealed, err := Encrypt(data, passphrase)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, sealed, 0600); err != nil {
		return 0, fmt.Errorf("write backup: %w", err)
	}
	return len(events), nil
}

// Import decrypts the backup at path and replaces the stored event list
// with it. Unlike a normal load, a malformed backup is an error and nothing
// is overwritten.
func Import(snapshots Snapshots, path, passphrase string) (int, error) {
	if passphrase == "" {
		return 0, ErrNoPassphrase
	}

	sealed, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read backup: %w", err)
	}

	data, err := Decrypt(sealed, passphrase)
	if err != nil {
		return 0, err
	}

	events, err := store.DecodeEvents(data)
	if err != nil {
		return 0, err
	}
	if _, skipped := calendar.NewEvents(events); len(skipped) > 0 {
		return 0, fmt.Errorf("import backup: event %q: %w", skipped[0].ID, calendar.ErrDuplicateID)
	}

	if err := snapshots.Save(events); err != nil {
		return 0, err
	}
	return len(events), nil
}
