package datescan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ExtractedDate is a date extracted from text. The information available
// varies with the source, so any of the calendar fields may be unset,
// indicated by -1. Values are constructed by this package and read-only
// afterwards.
type ExtractedDate struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	// TimeZone is the zone acronym split off the matched string, if any.
	TimeZone string
	// UTCOffsetMinutes is the numeric UTC offset that was applied to the
	// time fields during decomposition, 0 when none was present.
	UTCOffsetMinutes int
	// IgnoreTimeZone makes Time() disregard the recorded zone acronym.
	IgnoreTimeZone bool

	// DateString is the raw matched substring.
	DateString string
	// Offset is the start of the match in the original text, accounting
	// for the whitespace collapsing the finder performs. Finder results
	// only; -1 for directly parsed strings.
	Offset int
	// Format identifies the catalog entry that matched.
	Format FormatID

	layout string
}

func newExtractedDate() *ExtractedDate {
	return &ExtractedDate{
		Year: -1, Month: -1, Day: -1, Hour: -1, Minute: -1, Second: -1,
		Offset: -1,
	}
}

// FromTime builds a fully set date (second exactness) from a time value.
func FromTime(t time.Time) *ExtractedDate {
	d := newExtractedDate()
	d.Year = t.Year()
	d.Month = int(t.Month())
	d.Day = t.Day()
	d.Hour = t.Hour()
	d.Minute = t.Minute()
	d.Second = t.Second()
	return d
}

// Now builds a fully set date from the current wall clock.
func Now() *ExtractedDate {
	return FromTime(time.Now())
}

// Layout returns the layout template of the matched format, e.g.
// "YYYY-MM-DD", or "" for dates not produced by the catalog.
func (d *ExtractedDate) Layout() string { return d.layout }

// NormalizedString renders the date as YYYY[-MM[-DD[ HH[:MM[:SS]]]]],
// truncating at the first unset field. An unset year renders as 0, an unset
// month as 0; the resulting trailing "-0" is trimmed.
func (d *ExtractedDate) NormalizedString(withTime bool) string {
	var sb strings.Builder
	if d.Year == -1 {
		sb.WriteString("0")
	} else {
		sb.WriteString(strconv.Itoa(d.Year))
	}
	sb.WriteString("-")
	if d.Month == -1 {
		sb.WriteString("0")
	} else {
		sb.WriteString(pad2(d.Month))
	}
	if d.Day != -1 {
		sb.WriteString("-")
		sb.WriteString(pad2(d.Day))
		if d.Hour != -1 && withTime {
			sb.WriteString(" ")
			sb.WriteString(pad2(d.Hour))
			if d.Minute != -1 {
				sb.WriteString(":")
				sb.WriteString(pad2(d.Minute))
				if d.Second != -1 {
					sb.WriteString(":")
					sb.WriteString(pad2(d.Second))
				}
			}
		}
	}
	s := sb.String()
	if strings.HasSuffix(s, "-0") {
		s = s[:len(s)-2]
	}
	return s
}

func (d *ExtractedDate) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ExtractedDate [normalizedDate=%s", d.NormalizedString(true))
	if d.Format != "" {
		fmt.Fprintf(&sb, ", format=%s", d.Format)
	}
	if d.TimeZone != "" {
		fmt.Fprintf(&sb, ", timeZone=%s", d.TimeZone)
	}
	sb.WriteString("]")
	return sb.String()
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Time builds a calendar instant from the date, defaulting unset fields to
// year 0, January, day 1, and zero time. The recorded zone acronym is used
// when present and not disabled via IgnoreTimeZone, else local time.
func (d *ExtractedDate) Time() time.Time {
	loc := time.Local
	if d.TimeZone != "" && !d.IgnoreTimeZone {
		if off, ok := zoneOffset(d.TimeZone); ok {
			loc = time.FixedZone(strings.ToUpper(d.TimeZone), off)
		}
	}
	return time.Date(d.yearOrZero(), d.monthOrJanuary(), d.dayOrFirst(),
		zeroIfUnset(d.Hour), zeroIfUnset(d.Minute), zeroIfUnset(d.Second), 0, loc)
}

// UnixMilli returns the epoch milliseconds of Time().
func (d *ExtractedDate) UnixMilli() int64 {
	return d.Time().UnixMilli()
}

func (d *ExtractedDate) yearOrZero() int {
	if d.Year == -1 {
		return 0
	}
	return d.Year
}

func (d *ExtractedDate) monthOrJanuary() time.Month {
	if d.Month == -1 {
		return time.January
	}
	return time.Month(d.Month)
}

func (d *ExtractedDate) dayOrFirst() int {
	if d.Day == -1 {
		return 1
	}
	return d.Day
}

func zeroIfUnset(v int) int {
	if v == -1 {
		return 0
	}
	return v
}

// Exactness walks the fields from year downward and stops at the first
// unset one. A field set past a gap (e.g. day without month) does not count
// toward the exactness; the normalized string and Difference build on the
// same derivation.
func (d *ExtractedDate) Exactness() Exactness {
	ex := ExactUnset
	if d.Year != -1 {
		ex = ExactYear
		if d.Month != -1 {
			ex = ExactMonth
			if d.Day != -1 {
				ex = ExactDay
				if d.Hour != -1 {
					ex = ExactHour
					if d.Minute != -1 {
						ex = ExactMinute
						if d.Second != -1 {
							ex = ExactSecond
						}
					}
				}
			}
		}
	}
	return ex
}

// Difference returns the absolute difference between the two dates in the
// given unit, rounded to two decimals. Both sides are truncated to their
// common exactness first, so a day-exact and a second-exact date compare at
// day granularity. Returns -1 when the dates cannot be compared.
func (d *ExtractedDate) Difference(other *ExtractedDate, unit time.Duration) float64 {
	if other == nil || unit <= 0 {
		return -1
	}
	ex := CommonExactness(d.Exactness(), other.Exactness())
	if ex == ExactUnset {
		return -1
	}
	diff := math.Abs(float64(d.truncated(ex).Sub(other.truncated(ex))))
	return math.Round(diff*100/float64(unit)) / 100
}

// truncated builds a UTC instant carrying only the fields the given
// exactness provides, the rest fixed to January 1st midnight.
func (d *ExtractedDate) truncated(ex Exactness) time.Time {
	year := 0
	month := time.January
	day := 1
	var hour, minute, second int
	if ex.Provides(ExactYear) {
		year = d.Year
		if ex.Provides(ExactMonth) {
			month = time.Month(d.Month)
			if ex.Provides(ExactDay) {
				day = d.Day
				if ex.Provides(ExactHour) {
					hour = d.Hour
					if ex.Provides(ExactMinute) {
						minute = d.Minute
						if ex.Provides(ExactSecond) {
							second = d.Second
						}
					}
				}
			}
		}
	}
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}
