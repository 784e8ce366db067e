package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their koanf names, so namespaces read
// "Config.log.file.max_size".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// FieldProblem is one rejected configuration key.
type FieldProblem struct {
	Key     string // dotted koanf key, e.g. "roster.prompt"
	Message string
}

func (p FieldProblem) String() string {
	return p.Key + " " + p.Message
}

// ValidationError lists every rejected key of a configuration.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}

	return "config validation failed:\n  " + strings.Join(lines, "\n  ")
}

// Validate checks c against its struct tags. The session should not start
// with an invalid config, so callers treat any error as fatal.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	problems := make([]FieldProblem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, FieldProblem{
			Key:     formatFieldPath(fe.Namespace()),
			Message: describe(fe.Tag(), fe.Param()),
		})
	}

	return &ValidationError{Problems: problems}
}

// tagMessages renders a validator tag and its parameter as prose.
var tagMessages = map[string]func(param string) string{
	"required":         func(string) string { return "is required" },
	"required_if":      func(p string) string { return "is required when " + p },
	"excluded_without": func(p string) string { return "requires " + strings.ToLower(p) + " to be set" },
	"min":              func(p string) string { return "must be at least " + p },
	"max":              func(p string) string { return "must be at most " + p },
	"oneof":            func(p string) string { return "must be one of: " + p },
}

func describe(tag, param string) string {
	if msg, ok := tagMessages[tag]; ok {
		return msg(param)
	}

	return fmt.Sprintf("failed validation: %s", tag)
}

// formatFieldPath turns the validator namespace "Config.log.file.max_size"
// into the koanf key "log.file.max_size". Untagged fields keep their Go name,
// lowercased.
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}

	return strings.ToLower(namespace)
}
