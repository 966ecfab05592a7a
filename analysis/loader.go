// Package analysis scores the sentiment of a message and extracts the entities it mentions.
package analysis

import (
	"bufio"
	"bytes"
	"chat-engine/errors"
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed lexicon/*
var lexiconFolder embed.FS

const (
	positiveFile      = "lexicon/positive.txt"
	negativeFile      = "lexicon/negative.txt"
	placesFile        = "lexicon/places.txt"
	organizationsFile = "lexicon/organizations.txt"
	namesFile         = "lexicon/names.txt"
)

// LoadWordList reads one entry per line, skipping blank lines and '#' comments.
// Duplicates are dropped and the first occurrence order is kept.
func LoadWordList(fsys fs.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var words []string
	unique := make(map[string]struct{})

	// Use a scanner to handle different line endings (\n vs \r\n) correctly
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := unique[line]; ok {
			continue
		}
		unique[line] = struct{}{}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w in %s", errors.ErrEmptyWords, path)
	}
	return words, nil
}
