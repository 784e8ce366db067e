// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for logging and cancellation
//   - Return domain types, never file-format DTOs
//   - Error returns use domain error types (ErrIO, ErrParse, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/roster/internal/domain"
)

// RosterStore persists a roster as a whole document.
//
// Example usage in application layer:
//
//	type RosterService struct {
//	    store ports.RosterStore
//	}
type RosterStore interface {
	// Load reads every complete person from the document at path, in
	// document order. Incomplete entries are skipped, not reported.
	// Returns domain.ErrIO if the document cannot be read and
	// domain.ErrParse if it is not well-formed.
	Load(ctx context.Context, path string) ([]domain.Person, error)

	// Save writes people to path, replacing any existing document.
	// Returns domain.ErrIO if the document cannot be written.
	Save(ctx context.Context, path string, people []domain.Person) error
}
