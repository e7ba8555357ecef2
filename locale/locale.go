// Package locale provides month-name lookup tables used when decomposing
// textual dates. The default table covers English and German names and
// abbreviations; additional locales can be loaded from YAML and merged.
package locale

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Months maps lowercase month names and abbreviations to month numbers 1-12.
type Months map[string]int

// Default returns the built-in English and German month table.
func Default() Months {
	return Months{
		"january": 1, "jan": 1, "januar": 1,
		"february": 2, "feb": 2, "februar": 2,
		"march": 3, "mar": 3, "märz": 3, "mär": 3,
		"april": 4, "apr": 4,
		"may": 5, "mai": 5,
		"june": 6, "jun": 6, "juni": 6,
		"july": 7, "jul": 7, "juli": 7,
		"august": 8, "aug": 8,
		"september": 9, "sep": 9, "sept": 9,
		"october": 10, "oct": 10, "oktober": 10, "okt": 10,
		"november": 11, "nov": 11,
		"december": 12, "dec": 12, "dezember": 12, "dez": 12,
	}
}

// Number resolves a month-name token to its number. Commas, periods, and
// spaces are stripped and the lookup is case-insensitive. Unknown names
// return -1.
func (m Months) Number(name string) int {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if n, ok := m[s]; ok {
		return n
	}
	return -1
}

// Load reads a YAML mapping of month name to number (1-12).
func Load(r io.Reader) (Months, error) {
	var raw map[string]int
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode month table: %w", err)
	}
	m := make(Months, len(raw))
	for name, n := range raw {
		if n < 1 || n > 12 {
			return nil, fmt.Errorf("month %q out of range: %d", name, n)
		}
		m[strings.ToLower(name)] = n
	}
	return m, nil
}

// Merge returns a copy of m with the entries of other added, other winning
// on conflicts.
func (m Months) Merge(other Months) Months {
	merged := make(Months, len(m)+len(other))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
