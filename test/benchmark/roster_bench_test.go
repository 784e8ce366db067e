package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen/roster/internal/adapters/xmlstore"
	"github.com/jsamuelsen/roster/internal/domain"
)

var zodiacs = []string{"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo"}

// samplePeople returns n people with names in reverse order, the worst case
// for sorted insertion.
func samplePeople(n int) []domain.Person {
	people := make([]domain.Person, n)
	for i := range people {
		people[i] = domain.Person{
			Name:   fmt.Sprintf("Person %05d", n-i),
			Zodiac: zodiacs[i%len(zodiacs)],
			Year:   fmt.Sprintf("%d", 1950+i%70),
		}
	}

	return people
}

// BenchmarkRosterAdd measures sorted insertion into a growing roster.
func BenchmarkRosterAdd(b *testing.B) {
	people := samplePeople(500)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r := domain.NewRoster()
		for _, p := range people {
			r.Add(p)
		}
	}
}

// BenchmarkRosterRender measures table rendering.
func BenchmarkRosterRender(b *testing.B) {
	r := domain.NewRoster(samplePeople(500)...)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = r.Render()
	}
}

// BenchmarkDecode measures parsing a document already in memory.
func BenchmarkDecode(b *testing.B) {
	var buf bytes.Buffer
	if err := xmlstore.Encode(&buf, samplePeople(500)); err != nil {
		b.Fatal(err)
	}

	doc := buf.Bytes()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := xmlstore.Decode(bytes.NewReader(doc)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFileStore_SaveLoad measures a full save and load through the
// file system.
func BenchmarkFileStore_SaveLoad(b *testing.B) {
	store := xmlstore.NewFileStore(xmlstore.FileStoreConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	path := filepath.Join(b.TempDir(), "people.xml")
	people := samplePeople(500)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := store.Save(ctx, path, people); err != nil {
			b.Fatal(err)
		}

		if _, err := store.Load(ctx, path); err != nil {
			b.Fatal(err)
		}
	}
}
