package datescan

import (
	"testing"
)

func TestParse_Catalog(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		format FormatID
	}{
		{"2010-06-12", "2010-06-12", IDISOYMD},
		{"2010-06", "2010-06", IDISOYM},
		{"2010-W29-5", "2010-07-22", IDISOYWD},
		{"2010-W29", "2010-07", IDISOYW},
		{"2010-203", "2010-07-22", IDISOYD},
		{"20100725", "2010-07-25", IDISOYMDCompact},
		{"2010W295", "2010-07-22", IDISOYWDCompact},
		{"2010203", "2010-07-22", IDISOYDCompact},
		{"2010-07-02 19:07:49", "2010-07-02 19:07:49", IDISOYMDTime},
		{"2012-07-24 11:54:23", "2012-07-24 11:54:23", IDISOYMDTime},
		{"2010-07-02T19:07:49Z", "2010-07-02 19:07:49", IDISOYMDTime},
		{"2010-12-31 22:37-02:30", "2011-01-01 01:07", IDISOYMDTime},
		{"7/23/2010 3:35:58 PM", "2010-07-23 15:35:58", IDUSAMonthDayYearTime},
		{"23.7.2010 3:35:58 PM", "2010-07-23 15:35:58", IDEUDayMonthYearTime},
		{"July 23rd, 2010 3:35:58 PM", "2010-07-23 15:35:58", IDUSAMonthNameDayYearTime},
		{"23. Juli 2010 3:35:58 PM", "2010-07-23 15:35:58", IDEUDayMonthNameYearTime},
		{"02. Juli 2010 20:07:49 +0100", "2010-07-02 19:07:49", IDEUDayMonthNameYearTime},
		{"06-Feb-06 13:10", "2006-02-06 13:10", IDEUDayMonthNameYearTime},
		{"Tue, 02 Jul 2010 19:07:49 GMT", "2010-07-02 19:07:49", IDRFC1123},
		{"Tuesday, 02-Jul-10 19:07:49 GMT", "2010-07-02 19:07:49", IDRFC1036},
		{"Tue Jul 2 19:07:49 2010", "2010-07-02 19:07:49", IDANSIC},
		{"Mon, 18 Apr 2011 09:16:00 GMT-0700", "2011-04-18 16:16:00", IDRFC1123Offset},
		{"23.07.2010", "2010-07-23", IDEUDayMonthYear},
		{"7/23/2010", "2010-07-23", IDUSAMonthDayYear},
		{"April 6, 2009", "2009-04-06", IDUSAMonthNameDayYear},
		{"Sept. 3, 2010", "2010-09-03", IDUSAMonthNameDayYear},
		{"Sept.3, 2010", "2010-09-03", IDUSAMonthNameDayYear},
		{"23. Juli 2010", "2010-07-23", IDEUDayMonthNameYear},
		{"2009-Jul-13", "2009-07-13", IDYearMonthNameDay},
		{"August 2010", "2010-08", IDMonthNameYear},
		{"25.07.", "0-07-25", IDEUDayMonth},
		{"07/25", "0-07-25", IDUSAMonthDay},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if got == nil {
				t.Fatalf("Parse(%q) = nil", tt.input)
			}
			if s := got.NormalizedString(true); s != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, s, tt.want)
			}
			if got.Format != tt.format {
				t.Errorf("Parse(%q) format = %s, want %s", tt.input, got.Format, tt.format)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, input := range []string{"", "hello world", "13/32/2010", "2010-13-01"} {
		if got := Parse(input); got != nil {
			t.Errorf("Parse(%q) = %v, want nil", input, got)
		}
	}
}

func TestParse_Layout(t *testing.T) {
	got := Parse("August 2010")
	if got == nil {
		t.Fatal("Parse returned nil")
	}
	if got.Layout() != "MMMM YYYY" {
		t.Errorf("Layout() = %q, want %q", got.Layout(), "MMMM YYYY")
	}
}

func TestParseFormat_Errors(t *testing.T) {
	d, err := ParseFormat("garbage", ISO8601YMD)
	if !IsMalformed(err) {
		t.Errorf("ParseFormat(garbage) error = %v, want malformed segment", err)
	}
	if d == nil {
		t.Fatal("ParseFormat should return a best-effort date alongside the error")
	}

	d, err = ParseFormat("Tue, 02 Jul 2010 25:07:49 GMT", RFC1123)
	if !IsInvalidField(err) {
		t.Errorf("ParseFormat(hour 25) error = %v, want invalid field", err)
	}
	if d.Year != 2010 || d.Hour != 25 {
		t.Errorf("best-effort fields = year %d hour %d, want 2010 and 25", d.Year, d.Hour)
	}
}

func TestFindFirst_Offset(t *testing.T) {
	got := FindFirst("updated on 2012-07-24 around noon")
	if got == nil {
		t.Fatal("FindFirst returned nil")
	}
	if got.NormalizedString(false) != "2012-07-24" {
		t.Errorf("date = %s, want 2012-07-24", got.NormalizedString(false))
	}
	if got.Offset != 11 {
		t.Errorf("Offset = %d, want 11", got.Offset)
	}
	if got.DateString != "2012-07-24" {
		t.Errorf("DateString = %q, want %q", got.DateString, "2012-07-24")
	}
}

func TestFindFirst_CollapsesWhitespace(t *testing.T) {
	got := FindFirst("released\n\ton  23. Juli 2010 in Berlin")
	if got == nil {
		t.Fatal("FindFirst returned nil")
	}
	if got.NormalizedString(false) != "2010-07-23" {
		t.Errorf("date = %s, want 2010-07-23", got.NormalizedString(false))
	}
	if got.Offset != 14 {
		t.Errorf("Offset = %d, want 14", got.Offset)
	}
}

func TestFindFirst_OffsetInOriginalText(t *testing.T) {
	text := "updated  on\t2012-07-24 around noon"
	got := FindFirst(text)
	if got == nil {
		t.Fatal("FindFirst returned nil")
	}
	// Whitespace runs shrink during scanning; the reported offset must
	// still point into the caller's text.
	if got.Offset != 12 {
		t.Errorf("Offset = %d, want 12", got.Offset)
	}
	if s := text[got.Offset : got.Offset+len(got.DateString)]; s != got.DateString {
		t.Errorf("text at Offset = %q, want %q", s, got.DateString)
	}
}

func TestFindAll_MasksConsumedSpans(t *testing.T) {
	got := FindAll("Published 2012-07-24, archived 07/24/2012 later")
	if len(got) != 2 {
		t.Fatalf("FindAll returned %d dates, want 2: %v", len(got), got)
	}
	if got[0].Format != IDISOYMD || got[0].Offset != 10 {
		t.Errorf("first = %s at %d, want %s at 10", got[0].Format, got[0].Offset, IDISOYMD)
	}
	if got[1].Format != IDUSAMonthDayYear || got[1].Offset != 31 {
		t.Errorf("second = %s at %d, want %s at 31", got[1].Format, got[1].Offset, IDUSAMonthDayYear)
	}
}

func TestFindAll_CatalogOrder(t *testing.T) {
	got := FindAll("am 23.07.2010 und 2010-08-01")
	if len(got) != 2 {
		t.Fatalf("FindAll returned %d dates, want 2: %v", len(got), got)
	}
	// Results come back in catalog-scan order, so the ISO date wins even
	// though it appears later in the text.
	if got[0].NormalizedString(false) != "2010-08-01" || got[0].Offset != 18 {
		t.Errorf("first = %s at %d, want 2010-08-01 at 18", got[0].NormalizedString(false), got[0].Offset)
	}
	if got[1].NormalizedString(false) != "2010-07-23" || got[1].Offset != 3 {
		t.Errorf("second = %s at %d, want 2010-07-23 at 3", got[1].NormalizedString(false), got[1].Offset)
	}
}

func TestFindAllFormat_DigitNeighborGuard(t *testing.T) {
	if got := FindAllFormat("item 920141231 catalog", ISO8601YMDCompact); len(got) != 0 {
		t.Errorf("leading digit: got %v, want no results", got)
	}
	if got := FindAllFormat("touched 2014-12-3156 times", ISO8601YMD); len(got) != 0 {
		t.Errorf("trailing digit: got %v, want no results", got)
	}
}

func TestFindAllFormat_TrailingSlashExemption(t *testing.T) {
	got := FindAllFormat("www.example.com/2012/07/24/5-things/", URLYMD)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].NormalizedString(false) != "2012-07-24" {
		t.Errorf("date = %s, want 2012-07-24", got[0].NormalizedString(false))
	}
}

func TestFindFirst_URLFormats(t *testing.T) {
	got := FindFirst("http://www.example.com/2010/07/20/article.html", URLFormats()...)
	if got == nil {
		t.Fatal("FindFirst returned nil")
	}
	if got.NormalizedString(false) != "2010-07-20" {
		t.Errorf("date = %s, want 2010-07-20", got.NormalizedString(false))
	}
}

func TestFindFirstFormat_ContextYear(t *testing.T) {
	got := FindFirstFormat("the church was built in 1992 already", ContextYear)
	if got == nil {
		t.Fatal("FindFirstFormat returned nil")
	}
	if got.Year != 1992 {
		t.Errorf("Year = %d, want 1992", got.Year)
	}
	if got.NormalizedString(false) != "1992" {
		t.Errorf("date = %s, want 1992", got.NormalizedString(false))
	}
	// Provenance covers just the year, not the context keyword.
	if got.DateString != "1992" {
		t.Errorf("DateString = %q, want %q", got.DateString, "1992")
	}
	if got.Offset != 24 {
		t.Errorf("Offset = %d, want 24", got.Offset)
	}
	// The context formats never run as part of the default catalog.
	if d := FindFirst("built in 1992 already"); d != nil {
		t.Errorf("FindFirst matched context year by default: %v", d)
	}
}

func TestFinder_Profile(t *testing.T) {
	f := Finder{Profile: NewProfile()}
	f.FindAll("released on 2010-06-12")
	snap := f.Profile.Snapshot()
	if len(snap) != len(AllFormats()) {
		t.Errorf("profiled %d formats, want %d", len(snap), len(AllFormats()))
	}
	if _, ok := snap[IDISOYMD]; !ok {
		t.Errorf("no timing recorded for %s", IDISOYMD)
	}
}
