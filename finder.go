// Package datescan extracts calendar dates of varying granularity from
// free-form text without knowing their format in advance. A fixed catalog of
// roughly forty formats (ISO 8601, RFC 1123/1036, ANSI C, US, EU, URL-style,
// and month-name layouts) is tried in priority order; matched substrings are
// decomposed into field values and returned with their position and format
// provenance.
package datescan

import (
	"log"
	"time"

	"github.com/dedene/datescan/locale"
)

// Finder scans text for dates. The zero value uses the full catalog and the
// default month-name table; a Finder is safe for concurrent use once
// constructed.
type Finder struct {
	// Formats restricts the catalog; nil means AllFormats.
	Formats []*Format
	// Months resolves month-name tokens; nil means locale.Default.
	Months locale.Months
	// Logger receives notes about skipped matches; nil disables logging.
	Logger *log.Logger
	// Profile accumulates per-format scan time; nil disables timing.
	Profile *Profile
}

var defaultFinder Finder

var defaultMonths = locale.Default()

// scanText is the finder's working buffer: the input with whitespace runs
// (including line breaks) collapsed to single spaces, the separator the
// catalog patterns assume. orig holds the original index of every buffer
// byte so match offsets can be reported against the caller's text.
type scanText struct {
	buf  []byte
	orig []int
}

func collapseText(s string) *scanText {
	st := &scanText{
		buf:  make([]byte, 0, len(s)),
		orig: make([]int, 0, len(s)),
	}
	inRun := false
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			if !inRun {
				st.buf = append(st.buf, ' ')
				st.orig = append(st.orig, i)
				inRun = true
			}
			continue
		}
		inRun = false
		st.buf = append(st.buf, s[i])
		st.orig = append(st.orig, i)
	}
	return st
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func (f *Finder) formats() []*Format {
	if f.Formats != nil {
		return f.Formats
	}
	return allFormats
}

func (f *Finder) months() locale.Months {
	if f.Months != nil {
		return f.Months
	}
	return defaultMonths
}

func (f *Finder) logf(format string, args ...any) {
	if f.Logger != nil {
		f.Logger.Printf(format, args...)
	}
}

// Parse matches the whole string against the catalog formats in order and
// decomposes it with the first format that matches. Returns nil when no
// format matches or none of the matching formats can decompose the string.
func (f *Finder) Parse(s string) *ExtractedDate {
	for _, format := range f.formats() {
		if !format.anchored.MatchString(s) {
			continue
		}
		d, err := f.ParseFormat(s, format)
		if err != nil {
			f.logf("cannot decompose %q as %s: %v", s, format.ID, err)
			continue
		}
		return d
	}
	return nil
}

// ParseFormat decomposes a string known to be in the given format. The
// returned date is filled best-effort even when an error is reported.
func (f *Finder) ParseFormat(s string, format *Format) (*ExtractedDate, error) {
	return decompose(s, format, f.months())
}

// FindFirst returns the first accepted date in the text, scanning the given
// formats (or the full catalog) in order. Nil when the text contains no
// usable date.
func (f *Finder) FindFirst(text string, formats ...*Format) *ExtractedDate {
	if len(formats) == 0 {
		formats = f.formats()
	}
	st := collapseText(text)
	for _, format := range formats {
		if dates := f.scan(st, format); len(dates) > 0 {
			return dates[0]
		}
	}
	return nil
}

// FindAll returns every non-overlapping date in the text. Results come back
// in catalog-scan order, not text order; re-sort by Offset when text order
// matters. Spans consumed by an earlier format are masked so a later, looser
// format cannot claim them again.
func (f *Finder) FindAll(text string, formats ...*Format) []*ExtractedDate {
	if len(formats) == 0 {
		formats = f.formats()
	}
	st := collapseText(text)
	var result []*ExtractedDate
	for _, format := range formats {
		result = append(result, f.scan(st, format)...)
	}
	return result
}

// FindFirstFormat applies a single known format to the text, tolerant of
// surrounding non-date content. Nil when the format does not match.
func (f *Finder) FindFirstFormat(text string, format *Format) *ExtractedDate {
	dates := f.FindAllFormat(text, format)
	if len(dates) == 0 {
		return nil
	}
	return dates[0]
}

// FindAllFormat returns every match of a single format in the text.
func (f *Finder) FindAllFormat(text string, format *Format) []*ExtractedDate {
	return f.scan(collapseText(text), format)
}

// scan runs one format over the buffer, applies the digit/period neighbor
// guard, masks accepted spans in place, and decomposes the matches. Offsets
// are translated back to the caller's text.
func (f *Finder) scan(st *scanText, format *Format) []*ExtractedDate {
	started := time.Now()
	text := string(st.buf)
	var result []*ExtractedDate
	for _, span := range format.matchSpans(text) {
		start, end := span[0], span[1]
		// Dates must not start mid-decimal; a longer pattern will match if
		// it really is a date.
		if start > 0 && text[start-1] == '.' {
			continue
		}
		// A digit right before or after the match means we caught a slice
		// of a longer number. Matches ending in "/" skip the trailing
		// check: URL-style dates legitimately end that way.
		if start > 0 && isDigit(text[start-1]) {
			continue
		}
		if end < len(text) && text[end-1] != '/' && isDigit(text[end]) {
			continue
		}
		match := text[start:end]
		for i := start; i < end; i++ {
			st.buf[i] = 'x'
		}
		d, err := decompose(match, format, f.months())
		if err != nil {
			f.logf("skipping %q (%s): %v", match, format.ID, err)
			continue
		}
		d.Offset = st.orig[start]
		result = append(result, d)
	}
	if f.Profile != nil {
		f.Profile.add(format.ID, time.Since(started))
	}
	return result
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Parse matches a whole string against the catalog using the default Finder.
func Parse(s string) *ExtractedDate {
	return defaultFinder.Parse(s)
}

// ParseFormat decomposes a string with a known format using the default
// Finder.
func ParseFormat(s string, format *Format) (*ExtractedDate, error) {
	return defaultFinder.ParseFormat(s, format)
}

// FindFirst returns the first date in the text using the default Finder.
func FindFirst(text string, formats ...*Format) *ExtractedDate {
	return defaultFinder.FindFirst(text, formats...)
}

// FindAll returns all dates in the text using the default Finder.
func FindAll(text string, formats ...*Format) []*ExtractedDate {
	return defaultFinder.FindAll(text, formats...)
}

// FindFirstFormat applies a single format to the text using the default
// Finder.
func FindFirstFormat(text string, format *Format) *ExtractedDate {
	return defaultFinder.FindFirstFormat(text, format)
}

// FindAllFormat returns all matches of a single format using the default
// Finder.
func FindAllFormat(text string, format *Format) []*ExtractedDate {
	return defaultFinder.FindAllFormat(text, format)
}
