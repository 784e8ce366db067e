package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Person is one stored roster entry. Values are immutable once built by
// NewPerson; two Persons are equal when all three fields are equal.
type Person struct {
	// Name is the person's full name. The roster is ordered by it.
	Name string `validate:"required,xmlchars"`

	// Zodiac is the categorical attribute (zodiac sign).
	Zodiac string `validate:"required,xmlchars"`

	// Year is kept as text exactly as entered or loaded.
	Year string `validate:"required,xmlchars"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("xmlchars", func(fl validator.FieldLevel) bool {
		return storable(fl.Field().String())
	})

	return v
}

// storable reports whether s is valid UTF-8 made only of characters an
// XML 1.0 document can carry.
func storable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= utf8.MaxRune:
		default:
			return false
		}
	}

	return true
}

var fieldMessages = map[string]string{
	"required": "is required",
	"xmlchars": "contains characters that cannot be stored",
}

// NewPerson builds a Person, failing with a ValidationError when any field
// is absent or holds characters a roster file cannot store.
func NewPerson(name, zodiac, year string) (Person, error) {
	p := Person{Name: name, Zodiac: zodiac, Year: year}
	if err := p.Validate(); err != nil {
		return Person{}, err
	}

	return p, nil
}

// Validate checks p the way NewPerson does. It exists for Persons built as
// struct literals.
func (p Person) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "failed validation: " + fe.Tag()
		}

		return NewValidationError(strings.ToLower(fe.Field()), msg)
	}

	return NewValidationError("", err.Error())
}
