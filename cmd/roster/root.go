package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/roster/internal/adapters/repl"
	"github.com/jsamuelsen/roster/internal/adapters/xmlstore"
	"github.com/jsamuelsen/roster/internal/app"
	"github.com/jsamuelsen/roster/internal/domain"
	"github.com/jsamuelsen/roster/internal/platform/config"
	"github.com/jsamuelsen/roster/internal/platform/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configDir string
	profile   string
	file      string
}

// appEnv is everything a subcommand needs once config and logging are up.
type appEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *app.RosterService
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	env := &appEnv{}

	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Keep a roster of people with their zodiac sign and birth year",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return env.setup(opts, errOut)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return env.interactive(cmd.Context(), in, out, errOut)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "config profile to layer over base.yaml (default $APP_ENVIRONMENT)")
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "roster XML file (overrides roster.file)")

	cmd.AddCommand(newListCmd(env, out), newSelectCmd(env, out))

	return cmd
}

// setup loads and validates configuration, then builds logging and the
// roster service. Invalid configuration fails fast.
func (env *appEnv) setup(opts *rootOptions, logOut io.Writer) error {
	profile := opts.profile
	if profile == "" {
		profile = os.Getenv("APP_ENVIRONMENT")
	}

	cfg, err := config.Load(opts.configDir, profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if opts.file != "" {
		cfg.Roster.File = opts.file
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, logOut)
	logging.SetDefault(logger)

	logger.Debug("starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	store := xmlstore.NewFileStore(xmlstore.FileStoreConfig{Logger: logger})

	env.cfg = cfg
	env.logger = logger
	env.svc = app.NewRosterService(app.RosterServiceConfig{Store: store, Logger: logger})

	return nil
}

// interactive runs the command loop, loading roster.file first and saving
// it back afterwards when autosave is on. A missing start-up file means
// starting empty.
func (env *appEnv) interactive(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	ctx = logging.WithContext(ctx, env.logger)
	file := env.cfg.Roster.File

	if file != "" {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			env.logger.InfoContext(ctx, "roster file not found, starting empty", slog.String("path", file))
		} else if _, err := env.svc.Load(ctx, file); err != nil {
			return err
		}
	}

	session := repl.NewSession(repl.SessionConfig{
		Service: env.svc,
		In:      in,
		Out:     out,
		ErrOut:  errOut,
		Prompt:  env.cfg.Roster.Prompt,
		Logger:  env.logger,
	})

	runErr := session.Run(ctx)

	if env.cfg.Roster.Autosave {
		if err := env.svc.Save(ctx, file); err != nil {
			return errors.Join(runErr, err)
		}
	}

	return runErr
}

// loadFile loads the configured roster file for the one-shot commands.
func (env *appEnv) loadFile(ctx context.Context) error {
	if env.cfg.Roster.File == "" {
		return domain.NewValidationError("file", "is required: pass --file or set roster.file")
	}

	_, err := env.svc.Load(ctx, env.cfg.Roster.File)

	return err
}

func newListCmd(env *appEnv, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the roster file as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := env.loadFile(ctx); err != nil {
				return err
			}

			fmt.Fprintln(out, env.svc.List(ctx))

			return nil
		},
	}
}

func newSelectCmd(env *appEnv, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: "Show everyone in the roster file with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := env.loadFile(ctx); err != nil {
				return err
			}

			found, err := env.svc.Select(ctx, args[0])
			if domain.IsNotFound(err) {
				fmt.Fprintln(out, repl.NotFoundMessage(args[0]))
				return nil
			}

			if err != nil {
				return err
			}

			repl.WriteMatches(out, found)

			return nil
		},
	}
}
