package domain

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPerson(t *testing.T, name, zodiac, year string) Person {
	t.Helper()

	p, err := NewPerson(name, zodiac, year)
	require.NoError(t, err)

	return p
}

func names(people []Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.Name)
	}

	return out
}

func TestNewPerson(t *testing.T) {
	tests := []struct {
		name       string
		fields     [3]string
		wantErr    bool
		wantField  string
		wantPerson Person
	}{
		{
			name:       "all fields present",
			fields:     [3]string{"Ivanov I.I.", "Aries", "2001"},
			wantPerson: Person{Name: "Ivanov I.I.", Zodiac: "Aries", Year: "2001"},
		},
		{
			name:      "missing name",
			fields:    [3]string{"", "Aries", "2001"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "missing zodiac",
			fields:    [3]string{"Ivanov I.I.", "", "2001"},
			wantErr:   true,
			wantField: "zodiac",
		},
		{
			name:      "missing year",
			fields:    [3]string{"Ivanov I.I.", "Aries", ""},
			wantErr:   true,
			wantField: "year",
		},
		{
			name:      "control character in name",
			fields:    [3]string{"x\x01y", "Leo", "1"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "noncharacter in zodiac",
			fields:    [3]string{"Ivanov I.I.", "Leo\uFFFE", "2001"},
			wantErr:   true,
			wantField: "zodiac",
		},
		{
			name:      "invalid utf-8 in year",
			fields:    [3]string{"Ivanov I.I.", "Aries", "20\xff01"},
			wantErr:   true,
			wantField: "year",
		},
		{
			name:       "tab newline and cyrillic are kept",
			fields:     [3]string{" Иванов\tИ.И.", "Овен\r\n", "2001 😀"},
			wantPerson: Person{Name: " Иванов\tИ.И.", Zodiac: "Овен\r\n", Year: "2001 😀"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPerson(tt.fields[0], tt.fields[1], tt.fields[2])

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Equal(t, Person{}, p)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPerson, p)
		})
	}
}

func TestRoster_AddKeepsNameOrder(t *testing.T) {
	inputs := []string{"Petrov", "Abramov", "Sidorov", "Ivanov", "Abramov", "Zaitsev", "Bykov"}

	r := NewRoster()
	for i, n := range inputs {
		r.Add(mustPerson(t, n, "Leo", "1990"))

		got := names(r.People())
		assert.Len(t, got, i+1)
		assert.True(t, slices.IsSorted(got), "roster not sorted after add #%d: %v", i+1, got)
	}
}

func TestRoster_AddExample(t *testing.T) {
	r := NewRoster()
	r.Add(mustPerson(t, "Ivanova A.A.", "Leo", "1995"))
	r.Add(mustPerson(t, "Ivanov I.I.", "Aries", "2001"))

	assert.Equal(t, []string{"Ivanov I.I.", "Ivanova A.A."}, names(r.People()))
}

func TestRoster_AddDuplicatesKeepInsertionOrder(t *testing.T) {
	r := NewRoster()
	r.Add(mustPerson(t, "Alice", "Leo", "1990"))
	r.Add(mustPerson(t, "Bob", "Aries", "1991"))
	r.Add(mustPerson(t, "Alice", "Virgo", "1992"))

	people := r.People()
	require.Len(t, people, 3)
	assert.Equal(t, "Leo", people[0].Zodiac)
	assert.Equal(t, "Virgo", people[1].Zodiac)
	assert.Equal(t, "Bob", people[2].Name)
}

func TestRoster_FindByName(t *testing.T) {
	r := NewRoster(
		mustPerson(t, "Alice", "Leo", "1990"),
		mustPerson(t, "Carol", "Pisces", "1980"),
		mustPerson(t, "Alice", "Virgo", "1992"),
	)

	t.Run("returns every match in roster order", func(t *testing.T) {
		found := r.FindByName("Alice")
		require.Len(t, found, 2)
		assert.Equal(t, "Leo", found[0].Zodiac)
		assert.Equal(t, "Virgo", found[1].Zodiac)
	})

	t.Run("exact match only", func(t *testing.T) {
		assert.Empty(t, r.FindByName("alice"))
		assert.Empty(t, r.FindByName("Alic"))
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		found := r.FindByName("Nobody")
		assert.NotNil(t, found)
		assert.Empty(t, found)
	})
}

func TestRoster_ReplaceSortsStably(t *testing.T) {
	r := NewRoster(mustPerson(t, "Old", "Leo", "1900"))

	r.Replace([]Person{
		{Name: "Zed", Zodiac: "Leo", Year: "1"},
		{Name: "Amy", Zodiac: "Aries", Year: "2"},
		{Name: "Amy", Zodiac: "Taurus", Year: "3"},
	})

	people := r.People()
	assert.Equal(t, []string{"Amy", "Amy", "Zed"}, names(people))
	assert.Equal(t, "Aries", people[0].Zodiac)
	assert.Equal(t, "Taurus", people[1].Zodiac)
	assert.Equal(t, 3, r.Len())
}

func TestRoster_PeopleIsACopy(t *testing.T) {
	r := NewRoster(mustPerson(t, "Alice", "Leo", "1990"))

	people := r.People()
	people[0].Name = "Mallory"

	assert.Equal(t, "Alice", r.People()[0].Name)
}

func TestRoster_ReplaceDoesNotAliasInput(t *testing.T) {
	in := []Person{{Name: "B", Zodiac: "Leo", Year: "1"}, {Name: "A", Zodiac: "Leo", Year: "2"}}

	r := NewRoster()
	r.Replace(in)

	assert.Equal(t, "B", in[0].Name, "input slice must not be reordered")
	in[1].Name = "Z"
	assert.Equal(t, "A", r.People()[0].Name)
}

func TestRoster_ByteOrder(t *testing.T) {
	r := NewRoster()
	for _, n := range []string{"ivanov", "Ivanov", "Яковлев", "Абрамов", "Zz"} {
		r.Add(mustPerson(t, n, "Leo", "1990"))
	}

	got := names(r.People())
	want := slices.Clone(got)
	slices.SortFunc(want, strings.Compare)
	assert.Equal(t, want, got)
	assert.Equal(t, "Ivanov", got[0])
}
