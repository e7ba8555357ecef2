package datescan

import (
	"strconv"
	"strings"
	"time"
)

// Unit lengths for relative dates. Minute, hour, and day are exact; month
// and year are fixed approximations, not calendar-accurate.
const (
	relativeDay   = 24 * time.Hour
	relativeMonth = 30 * relativeDay
	relativeYear  = 365 * relativeDay
)

// FindRelative resolves expressions like "3 days ago" or "1 year ago"
// against the given reference instant. The result carries full second
// exactness. Nil when the text contains no relative date.
func (f *Finder) FindRelative(text string, ref time.Time) *ExtractedDate {
	for _, format := range relativeFormats {
		match := format.re.FindString(text)
		if match == "" {
			continue
		}
		numTok, _, _ := strings.Cut(match, " ")
		n, err := strconv.ParseInt(numTok, 10, 64)
		if err != nil {
			f.logf("skipping %q (%s): %v", match, format.ID, err)
			continue
		}
		var unit time.Duration
		switch format.ID {
		case IDRelativeMin:
			unit = time.Minute
		case IDRelativeHour:
			unit = time.Hour
		case IDRelativeDay:
			unit = relativeDay
		case IDRelativeMonth:
			unit = relativeMonth
		case IDRelativeYear:
			unit = relativeYear
		}
		d := FromTime(ref.Add(-time.Duration(n) * unit))
		d.DateString = match
		d.Format = format.ID
		d.layout = format.Layout
		return d
	}
	return nil
}

// FindRelative resolves a relative date using the default Finder.
func FindRelative(text string, ref time.Time) *ExtractedDate {
	return defaultFinder.FindRelative(text, ref)
}
