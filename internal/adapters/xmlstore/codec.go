// Package xmlstore persists rosters as XML documents on the local file system.
//
// The document layout is fixed:
//
//	<?xml version='1.0' encoding='utf-8'?>
//	<people>
//	  <human>
//	    <name>...</name>
//	    <zodiac>...</zodiac>
//	    <year>...</year>
//	  </human>
//	</people>
//
// On read, every child of the root is a person whatever its tag, the three
// field elements may come in any order, and a child missing any field (or
// holding an empty one) is skipped. On write, fields are always emitted in
// name, zodiac, year order.
package xmlstore

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/jsamuelsen/roster/internal/domain"
)

// Field element names inside each person.
const (
	nameElement   = "name"
	zodiacElement = "zodiac"
	yearElement   = "year"
)

// Declaration is written at the top of every saved document.
const Declaration = `<?xml version='1.0' encoding='utf-8'?>` + "\n"

// peopleXML and humanXML are the write-side DTOs.
type peopleXML struct {
	XMLName xml.Name   `xml:"people"`
	Humans  []humanXML `xml:"human"`
}

type humanXML struct {
	Name   string `xml:"name"`
	Zodiac string `xml:"zodiac"`
	Year   string `xml:"year"`
}

// field is one optionally observed text value.
type field struct {
	value string
	ok    bool
}

// parseField turns the text of a field element into a field. Elements
// without text count as not observed.
func parseField(text string) field {
	if text == "" {
		return field{}
	}

	return field{value: text, ok: true}
}

// humanDTO accumulates the fields seen inside one child of the root.
type humanDTO struct {
	name   field
	zodiac field
	year   field
}

func (h *humanDTO) observe(tag, text string) {
	f := parseField(text)
	if !f.ok {
		return
	}

	switch tag {
	case nameElement:
		h.name = f
	case zodiacElement:
		h.zodiac = f
	case yearElement:
		h.year = f
	}
}

// toDomain converts the DTO once all three fields have been observed.
func (h *humanDTO) toDomain() (domain.Person, error) {
	switch {
	case !h.name.ok:
		return domain.Person{}, domain.NewValidationError(nameElement, "not present")
	case !h.zodiac.ok:
		return domain.Person{}, domain.NewValidationError(zodiacElement, "not present")
	case !h.year.ok:
		return domain.Person{}, domain.NewValidationError(yearElement, "not present")
	}

	return domain.NewPerson(h.name.value, h.zodiac.value, h.year.value)
}

// Result is the outcome of decoding a roster document.
type Result struct {
	// People holds the complete entries in document order.
	People []domain.Person

	// Skipped counts children of the root dropped as incomplete.
	Skipped int
}

// Decode reads a roster document from r. Structural problems are reported
// as *xml.SyntaxError; any other error comes from r itself.
func Decode(r io.Reader) (Result, error) {
	dec := xml.NewDecoder(r)
	// The byte stream is always treated as UTF-8, whatever the declaration says.
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	var (
		res       Result
		depth     int
		rootSeen  bool
		rootDone  bool
		current   humanDTO
		fieldTag  string
		text      strings.Builder
		capturing bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if !rootSeen {
				return Result{}, syntaxError(dec, "no element found")
			}

			return res, nil
		}

		if err != nil {
			return Result{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootDone {
				return Result{}, syntaxError(dec, "junk after document element")
			}

			depth++

			switch depth {
			case 1:
				rootSeen = true
			case 2:
				current = humanDTO{}
			case 3:
				fieldTag = t.Name.Local
				text.Reset()
				capturing = true
			default:
				capturing = false
			}

		case xml.EndElement:
			switch depth {
			case 1:
				rootDone = true
			case 2:
				p, verr := current.toDomain()
				if verr != nil {
					res.Skipped++
				} else {
					res.People = append(res.People, p)
				}
			case 3:
				current.observe(fieldTag, text.String())
				capturing = false
			}

			depth--

		case xml.CharData:
			if depth == 0 && !blank(t) {
				if rootDone {
					return Result{}, syntaxError(dec, "junk after document element")
				}

				return Result{}, syntaxError(dec, "text outside the root element")
			}

			if depth == 3 && capturing {
				text.Write(t)
			}
		}
	}
}

// blank reports whether text between top-level markup is ignorable.
func blank(t xml.CharData) bool {
	return len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) == 0
}

var utf8BOM = []byte("\ufeff")

func syntaxError(dec *xml.Decoder, msg string) error {
	line, _ := dec.InputPos()

	return &xml.SyntaxError{Msg: msg, Line: line}
}

// Encode writes people to w as a complete roster document. Nothing is
// written when a person fails domain validation.
func Encode(w io.Writer, people []domain.Person) error {
	doc := peopleXML{Humans: make([]humanXML, 0, len(people))}
	for _, p := range people {
		if err := p.Validate(); err != nil {
			return err
		}


		doc.Humans = append(doc.Humans, humanXML{Name: p.Name, Zodiac: p.Zodiac, Year: p.Year})
	}

	if _, err := io.WriteString(w, Declaration); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")

	return err
}
