package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "roster",
			Version:     "1.0.0",
			Environment: "local",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "pretty",
		},
		Roster: RosterConfig{
			Prompt: DefaultPrompt,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name is required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "staging"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment must be one of")
	})
}

func TestConfig_Validate_ValidEnvironments(t *testing.T) {
	for _, env := range []string{"local", "dev", "qa", "prod", "test"} {
		t.Run(env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				cfg := validConfig()
				cfg.Log.Level = level

				assert.NoError(t, cfg.Validate())
			})
		}
	})

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "DEBUG"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("valid log formats", func(t *testing.T) {
		for _, format := range []string{"json", "text", "pretty"} {
			t.Run(format, func(t *testing.T) {
				cfg := validConfig()
				cfg.Log.Format = format

				assert.NoError(t, cfg.Validate())
			})
		}
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format must be one of: json text pretty")
	})
}

func TestConfig_Validate_LogFileConfig(t *testing.T) {
	t.Run("file logging disabled - path not required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = false
		cfg.Log.File.Path = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("file logging enabled - path required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when")
	})

	t.Run("max size bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.MaxSizeMB = 2048

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.max_size must be at most 1024")
	})

	t.Run("max age reported under its config key", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.MaxAgeDays = 400

		err := cfg.Validate()
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []FieldProblem{{Key: "log.file.max_age", Message: "must be at most 365"}}, verr.Problems)
	})
}

func TestConfig_Validate_RosterConfig(t *testing.T) {
	t.Run("autosave without file", func(t *testing.T) {
		cfg := validConfig()
		cfg.Roster.Autosave = true

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "roster.autosave requires file to be set")
	})

	t.Run("autosave with file", func(t *testing.T) {
		cfg := validConfig()
		cfg.Roster.Autosave = true
		cfg.Roster.File = "people.xml"

		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty prompt", func(t *testing.T) {
		cfg := validConfig()
		cfg.Roster.Prompt = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "roster.prompt is required")
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldProblem{
		{Key: "app.name", Message: "is required"},
		{Key: "log.level", Message: "must be one of: trace debug info warn error"},
	}, verr.Problems)
}

func TestDescribe_UnknownTag(t *testing.T) {
	assert.Equal(t, "failed validation: email", describe("email", ""))
}

func TestFormatFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.roster.file":       "roster.file",
		"Config.log.file.max_size": "log.file.max_size",
		"Config":                   "config",
		"Config.App.Environment":   "app.environment",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, formatFieldPath(in))
		})
	}
}
