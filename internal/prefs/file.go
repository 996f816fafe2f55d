package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// itemStore is the subset of *gdata.Manager the file store needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// savedSettings is the document written to the per-user data directory.
type savedSettings struct {
	FinishScore int `json:"finishScore"`
}

const settingsItem = "settings"

// FileStore keeps preferences in the per-user application data directory,
// the way a mobile app keeps them in device storage.
type FileStore struct {
	items itemStore
}

// NewFileStore opens the data directory for appName.
func NewFileStore(appName string) (*FileStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("opening app data for %q: %w", appName, err)
	}
	return &FileStore{items: m}, nil
}

func (s *FileStore) LoadFinishScore(_ context.Context) (int, error) {
	data, err := s.items.LoadItem(settingsItem)
	if err != nil {
		return 0, fmt.Errorf("loading settings: %w", err)
	}
	if data == nil {
		return 0, ErrNotFound
	}

	var saved savedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("parsing settings: %w", err)
	}
	if saved.FinishScore == 0 {
		return 0, ErrNotFound
	}
	return saved.FinishScore, nil
}

func (s *FileStore) SaveFinishScore(_ context.Context, score int) error {
	data, err := json.Marshal(savedSettings{FinishScore: score})
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}
	if err := s.items.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
