package listing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"blockpharm/internal/domain"
)

// cardsDocument is the on-disk layout of a card file:
//
//	cards:
//	  - label: "LDX <-> DXB"
//	    open: true
//	  - label: "LDN <-> LAX"
type cardsDocument struct {
	Cards []domain.CardDisplayInput `yaml:"cards"`
}

// FileProvider reads the card sequence from a YAML file on every call,
// so edits show up without a restart.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the YAML file at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the backing file path.
func (p *FileProvider) Path() string { return p.path }

// Cards loads and validates the card file.
func (p *FileProvider) Cards(ctx context.Context) ([]domain.CardDisplayInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p.path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read card file %s: %w", p.path, err)
	}
	return ParseCards(raw)
}

// ParseCards decodes a YAML card document. Keys other than label and open
// are rejected.
func ParseCards(raw []byte) ([]domain.CardDisplayInput, error) {
	var doc cardsDocument
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse card file: %w", err)
	}
	if len(doc.Cards) == 0 {
		return nil, ErrNoCards
	}
	for i, c := range doc.Cards {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
	}
	return doc.Cards, nil
}

// NewProvider picks the file provider when path is set, otherwise the
// built-in cards.
func NewProvider(path string) Provider {
	if path == "" {
		return NewStaticProvider()
	}
	return NewFileProvider(path)
}
