package xmlstore

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/roster/internal/domain"
	"github.com/jsamuelsen/roster/internal/platform/logging"
	"github.com/jsamuelsen/roster/internal/ports"
)

// DefaultFileMode is the permission given to saved roster files.
const DefaultFileMode os.FileMode = 0o644

// FileStoreConfig contains configuration for the file store.
type FileStoreConfig struct {
	// FileMode is applied to every saved document. Defaults to DefaultFileMode.
	FileMode os.FileMode

	// Logger is the structured logger.
	Logger *slog.Logger
}

// FileStore implements ports.RosterStore on top of local XML files.
type FileStore struct {
	mode   os.FileMode
	logger *slog.Logger
}

// NewFileStore creates a file store. Defaults logger to slog.Default() if nil.
func NewFileStore(cfg FileStoreConfig) *FileStore {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mode := cfg.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}

	return &FileStore{
		mode:   mode,
		logger: logger.With(slog.String("component", "xmlstore.FileStore")),
	}
}

// Load reads the roster document at path.
// Implements ports.RosterStore.
func (s *FileStore) Load(ctx context.Context, path string) ([]domain.Person, error) {
	logger := s.loggerFor(ctx)
	logger.Log(ctx, logging.LevelTrace, "opening roster file", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewIOError("opening", path, err)
	}
	defer func() { _ = f.Close() }()

	res, err := Decode(f)
	if err != nil {
		var syntaxErr *xml.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, domain.NewParseError(path, syntaxErr.Line, syntaxErr)
		}

		return nil, domain.NewIOError("reading", path, err)
	}

	if res.Skipped > 0 {
		logger.DebugContext(ctx, "skipped incomplete entries",
			slog.String("path", path),
			slog.Int("skipped", res.Skipped),
		)
	}

	logger.DebugContext(ctx, "roster file decoded",
		slog.String("path", path),
		slog.Int("people", len(res.People)),
	)

	return res.People, nil
}

// Save writes people to path through a temporary file in the same directory,
// then renames it over the target.
// Implements ports.RosterStore.
func (s *FileStore) Save(ctx context.Context, path string, people []domain.Person) error {
	var buf bytes.Buffer
	if err := Encode(&buf, people); err != nil {
		return domain.NewIOError("encoding", path, err)
	}

	if err := s.writeFile(path, buf.Bytes()); err != nil {
		return err
	}

	s.loggerFor(ctx).DebugContext(ctx, "roster file written",
		slog.String("path", path),
		slog.Int("people", len(people)),
		slog.Int("bytes", buf.Len()),
	)

	return nil
}

// writeFile replaces path with b. The temporary file is removed on every
// failure path.
func (s *FileStore) writeFile(path string, b []byte) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return domain.NewIOError("creating", path, err)
	}
	tmp := f.Name()

	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return domain.NewIOError("writing", path, err)
	}

	if err := f.Chmod(s.mode); err != nil {
		_ = f.Close()
		return domain.NewIOError("writing", path, err)
	}

	if err := f.Close(); err != nil {
		return domain.NewIOError("writing", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return domain.NewIOError("replacing", path, err)
	}

	return nil
}

func (s *FileStore) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := logging.LoggerFrom(ctx); ok {
		return logger.With(slog.String("component", "xmlstore.FileStore"))
	}

	return s.logger
}

// Compile-time assertion that FileStore implements ports.RosterStore.
var _ ports.RosterStore = (*FileStore)(nil)
