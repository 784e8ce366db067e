// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates the domain roster and the
// persistence port.
//
// What does NOT belong here:
//   - Prompting and printing (that's the repl adapter)
//   - XML details (that's the xmlstore adapter)
//   - Ordering rules (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/roster/internal/domain"
	"github.com/jsamuelsen/roster/internal/platform/logging"
	"github.com/jsamuelsen/roster/internal/ports"
)

// RosterService owns the single in-memory roster of a session and exposes
// the roster use cases. It is not safe for concurrent use.
type RosterService struct {
	roster *domain.Roster
	store  ports.RosterStore
	logger *slog.Logger
}

// RosterServiceConfig contains the dependencies of the roster service.
type RosterServiceConfig struct {
	Store  ports.RosterStore
	Logger *slog.Logger
}

// NewRosterService creates an empty roster service.
// Panics if Store is nil. Defaults logger to slog.Default() if nil.
func NewRosterService(cfg RosterServiceConfig) *RosterService {
	if cfg.Store == nil {
		panic("RosterService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		roster: domain.NewRoster(),
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.RosterService")),
	}
}

// Add validates and inserts a person, keeping the roster sorted by name.
func (s *RosterService) Add(ctx context.Context, name, zodiac, year string) (domain.Person, error) {
	p, err := domain.NewPerson(name, zodiac, year)
	if err != nil {
		return domain.Person{}, fmt.Errorf("adding person: %w", err)
	}

	s.roster.Add(p)

	s.loggerFor(ctx).DebugContext(ctx, "person added",
		slog.String("name", p.Name),
		slog.Int("size", s.roster.Len()),
	)

	return p, nil
}

// List renders the roster as a text table.
func (s *RosterService) List(_ context.Context) string {
	return s.roster.Render()
}

// Select returns everyone named exactly name, in roster order.
// Returns domain.ErrNotFound when nobody matches.
func (s *RosterService) Select(ctx context.Context, name string) ([]domain.Person, error) {
	found := s.roster.FindByName(name)

	s.loggerFor(ctx).DebugContext(ctx, "select finished",
		slog.String("name", name),
		slog.Int("matches", len(found)),
	)

	if len(found) == 0 {
		return nil, domain.NewNotFoundError("person", name)
	}

	return found, nil
}

// People returns a copy of the roster contents.
func (s *RosterService) People() []domain.Person {
	return s.roster.People()
}

// Load replaces the roster with the contents of the document at path.
// On failure the current roster is left untouched.
func (s *RosterService) Load(ctx context.Context, path string) (int, error) {
	logger := s.loggerFor(ctx)

	people, err := s.store.Load(ctx, path)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load roster",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return 0, fmt.Errorf("loading roster: %w", err)
	}

	// Replace re-sorts by name, so list right after a load shows name
	// order rather than document order.
	s.roster.Replace(people)

	logger.InfoContext(ctx, "roster loaded",
		slog.String("path", path),
		slog.Int("size", s.roster.Len()),
	)

	return s.roster.Len(), nil
}

// Save writes the roster to path, overwriting whatever is there.
func (s *RosterService) Save(ctx context.Context, path string) error {
	logger := s.loggerFor(ctx)

	if err := s.store.Save(ctx, path, s.roster.People()); err != nil {
		logger.ErrorContext(ctx, "failed to save roster",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return fmt.Errorf("saving roster: %w", err)
	}

	logger.InfoContext(ctx, "roster saved",
		slog.String("path", path),
		slog.Int("size", s.roster.Len()),
	)

	return nil
}

func (s *RosterService) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.LoggerFrom(ctx); ok {
		return logger.With(slog.String("component", "app.RosterService"))
	}

	return s.logger
}
