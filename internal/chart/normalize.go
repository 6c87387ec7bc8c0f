package chart

import (
	"slices"
	"strings"
)

// Catalog is the normalized view of a set of chart entries.
type Catalog struct {
	// Appearances holds every entry with a usable credit list, in input order.
	Appearances []Appearance
	// Tracks holds the first appearance of each track id, in input order.
	Tracks []Appearance
	// Skipped counts entries dropped for an empty credit list.
	Skipped int
}

// ParseCredits splits a raw credit string into artist names. Names are
// trimmed, empty names are dropped and a name repeated within the same
// credit string is kept only once.
func ParseCredits(raw string) []string {
	var credits []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(credits, name) {
			continue
		}
		credits = append(credits, name)
	}
	return credits
}

// Normalize parses credits once per entry and deduplicates tracks by id,
// keeping the first occurrence. The input slice is not modified.
func Normalize(entries []Entry) *Catalog {
	catalog := &Catalog{
		Appearances: make([]Appearance, 0, len(entries)),
	}
	seen := make(map[string]bool)
	for _, entry := range entries {
		credits := ParseCredits(entry.Artists)
		if len(credits) == 0 {
			catalog.Skipped++
			continue
		}

		appearance := Appearance{Entry: entry, Credits: credits}
		catalog.Appearances = append(catalog.Appearances, appearance)
		if seen[entry.TrackID] {
			continue
		}
		seen[entry.TrackID] = true
		catalog.Tracks = append(catalog.Tracks, appearance)
	}
	return catalog
}

// FilterCountries keeps the entries charted in one of the given
// countries. An empty country list keeps every entry.
func FilterCountries(entries []Entry, countries []string) []Entry {
	if len(countries) == 0 {
		return entries
	}
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if slices.Contains(countries, entry.Country) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// DescribeCountries renders a country filter for display.
func DescribeCountries(countries []string) string {
	if len(countries) == 0 {
		return "All Countries"
	}
	return strings.Join(countries, ", ")
}
