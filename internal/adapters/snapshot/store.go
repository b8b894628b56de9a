// Package snapshot provides durable storage for the previous
// leaderboard snapshot.
package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"rankwatch/internal/domain/model"
)

// Default store configuration constants.
const (
	defaultPath     = "leaderboard.json"
	defaultFileMode = 0o644
)

// Store persists one snapshot between runs.
type Store interface {
	// Load returns the previously persisted snapshot, or nil when no
	// snapshot has been saved yet. Returns ErrCorruptState when the
	// persisted data cannot be decoded.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save replaces the persisted snapshot. Returns ErrPersist on
	// write failure.
	Save(ctx context.Context, snap *model.Snapshot) error
}

// FileStore implements Store on a single JSON file. The persisted
// form is an indented record array with stable field ordering, kept
// human-diffable on purpose.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore with default configuration.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{
		path: defaultPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and decodes the snapshot file. A missing file is not an
// error; it simply means this is the first run.
func (s *FileStore) Load(_ context.Context) (*model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrCorruptState, s.path, err)
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCorruptState, s.path, err)
	}
	return model.NewSnapshot(records), nil
}

// Save writes the snapshot as indented JSON, replacing any previous
// file content.
func (s *FileStore) Save(_ context.Context, snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap.Records(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersist, err)
	}

	if err := os.WriteFile(s.path, data, defaultFileMode); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersist, s.path, err)
	}
	return nil
}
