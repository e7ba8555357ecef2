package datescan

import (
	"fmt"

	"github.com/araddon/dateparse"
)

// ParseLenient parses a string that should hold a date but may use a layout
// outside the catalog. The catalog is tried first so results keep their
// format provenance; unknown layouts fall back to heuristic detection.
func ParseLenient(s string) (*ExtractedDate, error) {
	if d := Parse(s); d != nil {
		return d, nil
	}
	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return nil, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	d := FromTime(t)
	d.DateString = s
	return d, nil
}
