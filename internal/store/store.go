// Package store loads the text templates configs are rendered from.
package store

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrTemplateUnreadable = errors.New("template unreadable")
)

// TemplateStore returns the raw text of a named template. Implementations
// wrap ErrTemplateNotFound when they do not know name.
type TemplateStore interface {
	Load(name string) (string, error)
}

// Template is a stored template with its bookkeeping.
type Template struct {
	Name      string
	Body      string
	Checksum  string
	UpdatedAt time.Time
}

// Chain looks name up in each store in order. A store that does not know the
// name passes to the next one; any other failure stops the lookup.
type Chain []TemplateStore

func (c Chain) Load(name string) (string, error) {
	for _, s := range c {
		if s == nil {
			continue
		}
		text, err := s.Load(name)
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
}
