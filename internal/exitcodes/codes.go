// Package exitcodes maps failures to process exit codes.
package exitcodes

import (
	"errors"

	"njeeny/internal/nginx"
	"njeeny/internal/prompt"
	"njeeny/internal/settings"
	"njeeny/internal/store"
)

const (
	Success      = 0
	GeneralError = 1

	// InvalidArgs indicates invalid command-line arguments or flags
	InvalidArgs = 2

	// ConfigError indicates an unreadable or invalid config file
	ConfigError = 3

	// InputClosed indicates the terminal closed before the wizard finished
	InputClosed = 4

	// SchemaMismatch indicates the question tree has no entry for the chosen cms
	SchemaMismatch = 5

	// TemplateError indicates a template could not be found or read
	TemplateError = 6

	// GenerationIncomplete indicates answers required for rendering were missing
	GenerationIncomplete = 7
)

// CodeForError returns the exit code for err. An explicit ErrorWithCode
// anywhere in the chain wins over the sentinel errors.
func CodeForError(err error) int {
	if err == nil {
		return Success
	}

	var ec *ErrorWithCode
	if errors.As(err, &ec) {
		return ec.Code
	}

	switch {
	case errors.Is(err, prompt.ErrInputClosed):
		return InputClosed
	case errors.Is(err, settings.ErrSchemaMismatch):
		return SchemaMismatch
	case errors.Is(err, store.ErrTemplateNotFound), errors.Is(err, store.ErrTemplateUnreadable):
		return TemplateError
	case errors.Is(err, nginx.ErrRedirectIncomplete):
		return GenerationIncomplete
	}
	return GeneralError
}
