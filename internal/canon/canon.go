// Package canon holds the fixed 73-book Catholic canon used as the reference
// list for every translation stored in the database.
package canon

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of books in the canon.
const Size = 73

var (
	// ErrDuplicateCanonEntry is returned when a name or abbreviation appears twice
	ErrDuplicateCanonEntry = errors.New("duplicate canon entry")
	// ErrOrderConflict is returned when canonical orders are repeated or not contiguous
	ErrOrderConflict = errors.New("canon order conflict")
	// ErrCanonSize is returned when the list does not hold exactly Size books
	ErrCanonSize = errors.New("canon must contain exactly 73 books")
)

// Testament distinguishes the Old and New Testaments
type Testament string

const (
	TestamentOld Testament = "OLD"
	TestamentNew Testament = "NEW"
)

// Group is the traditional grouping a book belongs to
type Group string

const (
	GroupPentateuch Group = "PENTATEUCH"
	GroupHistorical Group = "HISTORICAL"
	GroupWisdom     Group = "WISDOM"
	GroupProphets   Group = "PROPHETS"
	GroupGospels    Group = "GOSPELS"
	GroupActs       Group = "ACTS"
	GroupEpistles   Group = "EPISTLES"
	GroupRevelation Group = "REVELATION"
)

// Descriptor is the canonical metadata of one book
type Descriptor struct {
	Name               string
	Abbreviation       string
	Order              int
	Testament          Testament
	Group              Group
	IsDeuterocanonical bool
}

// Key returns the URL-safe, case-insensitive abbreviation key ("1 Sm" -> "1-sm")
func (d Descriptor) Key() string {
	return Key(d.Abbreviation)
}

// Key normalizes an abbreviation into its lookup key
func Key(abbreviation string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(abbreviation)), " ", "-")
}

var (
	byName = make(map[string]Descriptor, Size)
	byKey  = make(map[string]Descriptor, Size)
)

func init() {
	if err := Validate(books); err != nil {
		panic(fmt.Sprintf("canon: static book table is invalid: %v", err))
	}
	for _, b := range books {
		byName[b.Name] = b
		byKey[b.Key()] = b
	}
}

// Books returns the canon in traditional order. The slice is a copy.
func Books() []Descriptor {
	out := make([]Descriptor, len(books))
	copy(out, books)
	return out
}

// ByName looks up a book by its canonical name
func ByName(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// ByKey looks up a book by abbreviation or abbreviation key, case-insensitively
func ByKey(key string) (Descriptor, bool) {
	d, ok := byKey[Key(key)]
	return d, ok
}

// Validate checks a book list against the canon invariants: exactly Size
// entries, unique names, abbreviations and keys, and orders forming 1..Size.
func Validate(list []Descriptor) error {
	if len(list) != Size {
		return fmt.Errorf("%w: got %d", ErrCanonSize, len(list))
	}

	names := make(map[string]bool, len(list))
	abbrs := make(map[string]bool, len(list))
	keys := make(map[string]bool, len(list))
	orders := make(map[int]string, len(list))

	for _, b := range list {
		if names[b.Name] {
			return fmt.Errorf("%w: name %q", ErrDuplicateCanonEntry, b.Name)
		}
		if abbrs[b.Abbreviation] {
			return fmt.Errorf("%w: abbreviation %q", ErrDuplicateCanonEntry, b.Abbreviation)
		}
		if keys[b.Key()] {
			return fmt.Errorf("%w: abbreviation key %q", ErrDuplicateCanonEntry, b.Key())
		}
		if other, ok := orders[b.Order]; ok {
			return fmt.Errorf("%w: order %d used by %q and %q", ErrOrderConflict, b.Order, other, b.Name)
		}
		if b.Order < 1 || b.Order > len(list) {
			return fmt.Errorf("%w: order %d of %q outside 1..%d", ErrOrderConflict, b.Order, b.Name, len(list))
		}
		names[b.Name] = true
		abbrs[b.Abbreviation] = true
		keys[b.Key()] = true
		orders[b.Order] = b.Name
	}
	return nil
}
