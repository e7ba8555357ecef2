package datescan

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizedString(t *testing.T) {
	tests := []struct {
		name                                   string
		year, month, day, hour, minute, second int
		withTime                               bool
		want                                   string
	}{
		{"full", 2010, 7, 2, 19, 7, 49, true, "2010-07-02 19:07:49"},
		{"time suppressed", 2010, 7, 2, 19, 7, 49, false, "2010-07-02"},
		{"no second", 2010, 12, 31, 22, 37, -1, true, "2010-12-31 22:37"},
		{"no minute", 2010, 12, 31, 22, -1, -1, true, "2010-12-31 22"},
		{"day exact", 2010, 7, 2, -1, -1, -1, true, "2010-07-02"},
		{"month exact", 2010, 7, -1, -1, -1, -1, true, "2010-07"},
		{"year exact", 2010, -1, -1, -1, -1, -1, true, "2010"},
		{"no year", -1, 7, 25, -1, -1, -1, true, "0-07-25"},
		{"gap stops at month", 2010, 7, -1, 19, 7, 49, true, "2010-07"},
		{"unset", -1, -1, -1, -1, -1, -1, true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newExtractedDate()
			d.Year, d.Month, d.Day = tt.year, tt.month, tt.day
			d.Hour, d.Minute, d.Second = tt.hour, tt.minute, tt.second
			if got := d.NormalizedString(tt.withTime); got != tt.want {
				t.Errorf("NormalizedString(%v) = %q, want %q", tt.withTime, got, tt.want)
			}
		})
	}
}

func TestTime_ZoneAcronym(t *testing.T) {
	d := Parse("Tue, 02 Jul 2010 19:07:49 GMT")
	if d == nil {
		t.Fatal("Parse returned nil")
	}
	if d.TimeZone != "GMT" {
		t.Errorf("TimeZone = %q, want GMT", d.TimeZone)
	}
	if got := d.UnixMilli(); got != 1278097669000 {
		t.Errorf("UnixMilli() = %d, want 1278097669000", got)
	}
}

func TestTime_Defaults(t *testing.T) {
	d := Parse("2010-06")
	if d == nil {
		t.Fatal("Parse returned nil")
	}
	want := time.Date(2010, time.June, 1, 0, 0, 0, 0, time.Local)
	if got := d.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestFromTime_RoundTrip(t *testing.T) {
	ref := time.Date(2012, time.July, 24, 11, 54, 23, 0, time.UTC)
	d := FromTime(ref)
	if d.Exactness() != ExactSecond {
		t.Errorf("Exactness() = %v, want %v", d.Exactness(), ExactSecond)
	}
	if got := d.NormalizedString(true); got != "2012-07-24 11:54:23" {
		t.Errorf("NormalizedString(true) = %q", got)
	}
}

func TestDifference(t *testing.T) {
	a, err := ParseFormat("2012-07-24", ISO8601YMD)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFormat("2012-07-25 10:00:00", ISO8601YMDTime)
	if err != nil {
		t.Fatal(err)
	}

	// Truncated to the common day exactness, the dates are one day apart;
	// b's time of day does not count.
	if got := a.Difference(b, 24*time.Hour); got != 1 {
		t.Errorf("Difference(days) = %v, want 1", got)
	}
	if got := a.Difference(b, time.Hour); got != 24 {
		t.Errorf("Difference(hours) = %v, want 24", got)
	}
	if got := b.Difference(a, 24*time.Hour); got != 1 {
		t.Errorf("Difference is not symmetric: %v", got)
	}
	if got := a.Difference(nil, time.Hour); got != -1 {
		t.Errorf("Difference(nil) = %v, want -1", got)
	}
	if got := a.Difference(b, 0); got != -1 {
		t.Errorf("Difference(unit 0) = %v, want -1", got)
	}
	if got := a.Difference(newExtractedDate(), time.Hour); got != -1 {
		t.Errorf("Difference(unset) = %v, want -1", got)
	}
}

func TestString(t *testing.T) {
	d := Parse("2010-06-12")
	if d == nil {
		t.Fatal("Parse returned nil")
	}
	s := d.String()
	if !strings.Contains(s, "normalizedDate=2010-06-12") || !strings.Contains(s, string(IDISOYMD)) {
		t.Errorf("String() = %q", s)
	}
}

func TestZoneOffset(t *testing.T) {
	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"GMT", 0, true},
		{"utc", 0, true},
		{"Z", 0, true},
		{"MEZ", 3600, true},
		{"AEST", 36000, true},
		{"EST", -18000, true},
		{"XYZ", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := zoneOffset(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Errorf("zoneOffset(%q) = %d, %v, want %d, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
