package datescan

import (
	"strings"
	"testing"
)

func TestParseLenient_CatalogFirst(t *testing.T) {
	d, err := ParseLenient("2010-06-12")
	if err != nil {
		t.Fatalf("ParseLenient error: %v", err)
	}
	// Catalog hits keep their format provenance.
	if d.Format != IDISOYMD {
		t.Errorf("Format = %s, want %s", d.Format, IDISOYMD)
	}
	if got := d.NormalizedString(false); got != "2010-06-12" {
		t.Errorf("date = %s, want 2010-06-12", got)
	}
}

func TestParseLenient_Fallback(t *testing.T) {
	// The trailing zone name keeps the catalog formats from matching.
	d, err := ParseLenient("Mon Jan 2 15:04:05 MST 2006")
	if err != nil {
		t.Fatalf("ParseLenient error: %v", err)
	}
	if d.Format != "" {
		t.Errorf("fallback result should carry no format, got %s", d.Format)
	}
	if d.Year != 2006 || d.Month != 1 || d.Day != 2 || d.Hour != 15 {
		t.Errorf("got %d-%d-%d %d, want 2006-1-2 15", d.Year, d.Month, d.Day, d.Hour)
	}
	if d.DateString != "Mon Jan 2 15:04:05 MST 2006" {
		t.Errorf("DateString = %q", d.DateString)
	}
}

func TestParseLenient_Error(t *testing.T) {
	_, err := ParseLenient("definitely not a date")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "cannot parse date") {
		t.Errorf("error = %v", err)
	}
}
