// Package storage persists the trained model on disk.
package storage

import (
	"chat-engine/domain"
	"chat-engine/errors"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// ModelFile stores a TrainedModel as indented JSON at a fixed path.
type ModelFile struct {
	path string
	log  *slog.Logger
}

func NewModelFile(path string, log *slog.Logger) *ModelFile {
	return &ModelFile{path: path, log: log}
}

func (m *ModelFile) Path() string {
	return m.path
}

// Save writes to a temporary file in the same directory and renames it over
// the previous model, so readers only ever see a complete file.
func (m *ModelFile) Save(model domain.TrainedModel) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	if err := renameio.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	m.log.Info("Model saved", "path", m.path, "bytes", len(data))
	return nil
}

// Load reads the model back. A missing file, invalid JSON or a model without
// network or responses is reported as ErrModelLoad.
func (m *ModelFile) Load() (domain.TrainedModel, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return domain.TrainedModel{}, fmt.Errorf("%w: %v", errors.ErrModelLoad, err)
	}
	var model domain.TrainedModel
	if err := json.Unmarshal(data, &model); err != nil {
		return domain.TrainedModel{}, fmt.Errorf("%w: %v", errors.ErrModelLoad, err)
	}
	if len(model.Network) == 0 || string(model.Network) == "null" {
		return domain.TrainedModel{}, fmt.Errorf("%w: %s has no network", errors.ErrModelLoad, m.path)
	}
	if model.Responses == nil {
		return domain.TrainedModel{}, fmt.Errorf("%w: %s has no responses", errors.ErrModelLoad, m.path)
	}
	if model.Vocabulary == nil {
		model.Vocabulary = []string{}
	}
	return model, nil
}
