package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/pmrewrite/packages/collection"
)

// Exit codes for pmrewrite CLI
const (
	// ExitSuccess indicates the collection was rewritten
	ExitSuccess = 0

	// ExitFailure indicates the collection could not be read or written
	ExitFailure = 1

	// ExitParseError indicates malformed JSON or a collection missing required fields
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitCodeFor maps a rewrite error to an exit code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, collection.ErrInvalidJSON),
		errors.Is(err, collection.ErrMissingField),
		errors.Is(err, collection.ErrUnexpectedType):
		return ExitParseError
	default:
		return ExitFailure
	}
}
