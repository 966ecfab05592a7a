// Package runtime owns the model lifecycle and composes the engine per turn.
package runtime

import (
	"chat-engine/domain"
	"chat-engine/errors"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"

	stderrors "errors"

	"github.com/go-playground/validator/v10"
)

const (
	IntentsFile   = "intents.json"
	KnowledgeFile = "knowledge-base.json"
)

// TrainingDataLoader reads intents.json and knowledge-base.json from a directory.
type TrainingDataLoader struct {
	fs        fs.FS
	log       *slog.Logger
	validator *validator.Validate
}

// NewTrainingDataLoader creates a loader over the provided filesystem, usually os.DirFS(dataDir).
func NewTrainingDataLoader(f fs.FS, log *slog.Logger) *TrainingDataLoader {
	return &TrainingDataLoader{fs: f, log: log, validator: validator.New()}
}

// Load decodes and validates both files independently. A file that is
// missing or malformed contributes nothing and its failure, wrapped in
// ErrDataLoad, is returned next to whatever could be loaded.
func (l *TrainingDataLoader) Load() (domain.TrainingData, error) {
	var data domain.TrainingData
	var errs []error

	var intents domain.IntentsFile
	if err := l.decode(IntentsFile, &intents); err != nil {
		errs = append(errs, err)
	} else {
		data.Intents = intents.Intents
	}

	var knowledge domain.KnowledgeFile
	if err := l.decode(KnowledgeFile, &knowledge); err != nil {
		errs = append(errs, err)
	} else {
		data.QAPairs = knowledge.QAPairs
	}

	l.log.Info("Training data loaded", "intents", len(data.Intents), "qa_pairs", len(data.QAPairs))
	return data, stderrors.Join(errs...)
}

func (l *TrainingDataLoader) decode(name string, target any) error {
	raw, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrDataLoad, name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: %v", errors.ErrDataLoad, name, err)
	}
	if err := l.validator.Struct(target); err != nil {
		return fmt.Errorf("%w: %w: %s: %v", errors.ErrDataLoad, errors.ErrInvalidRecord, name, err)
	}
	return nil
}
