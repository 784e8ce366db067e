package domain

import (
	"slices"
	"strings"
)

// Roster is the in-memory collection of people, kept sorted by name.
// It owns its slice; every accessor hands out a copy.
type Roster struct {
	people []Person
}

// NewRoster creates a roster holding people, sorted by name.
func NewRoster(people ...Person) *Roster {
	r := &Roster{}
	r.Replace(people)

	return r
}

// Add inserts p after any existing entries with the same name.
// Duplicate names are allowed.
func (r *Roster) Add(p Person) {
	i := upperBound(r.people, p.Name)
	r.people = slices.Insert(r.people, i, p)
}

// Replace discards the current contents and takes a sorted copy of people.
// Entries with equal names keep their relative order.
func (r *Roster) Replace(people []Person) {
	r.people = slices.Clone(people)
	slices.SortStableFunc(r.people, func(a, b Person) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// FindByName returns every person whose name equals target exactly, in
// roster order. The result is empty, never nil, when nobody matches.
func (r *Roster) FindByName(target string) []Person {
	found := []Person{}

	for _, p := range r.people {
		if p.Name == target {
			found = append(found, p)
		}
	}

	return found
}

// People returns a copy of the roster contents in order.
func (r *Roster) People() []Person {
	return slices.Clone(r.people)
}

// Len reports the number of people in the roster.
func (r *Roster) Len() int {
	return len(r.people)
}

// upperBound returns the first index whose name sorts after name.
func upperBound(people []Person, name string) int {
	lo, hi := 0, len(people)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if people[mid].Name <= name {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
