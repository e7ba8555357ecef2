package datescan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dedene/datescan/locale"
)

// decomposeRule extracts field values from the working string of a
// parseState. One rule exists per catalog entry; several entries that only
// differ in their separator share a rule.
type decomposeRule func(p *parseState) error

// parseState accumulates field values while a matched substring is taken
// apart. It is function-local to decompose and never escapes; the result is
// converted into an ExtractedDate and the state discarded.
type parseState struct {
	s      string
	months locale.Months

	year   int
	month  int
	day    int
	hour   int
	minute int
	second int

	timeZone      string
	offsetMinutes int
}

var (
	timeZoneRe   = regexp.MustCompile(`(?i)` + zoneAcronym)
	fracSecRe    = regexp.MustCompile(`\.(\d)*`)
	newlineRe    = regexp.MustCompile(`\n.*`)
	dotSpaceRe   = regexp.MustCompile(`\.\s?`)
	commaSpaceRe = regexp.MustCompile(`,\s|,|\s`)
)

// decompose applies the format's rule to the raw matched substring. On
// failure the partially filled value is still returned alongside the error,
// matching the engine's tolerance for secondary failures.
func decompose(raw string, f *Format, months locale.Months) (*ExtractedDate, error) {
	p := &parseState{
		s: raw, months: months,
		year: -1, month: -1, day: -1, hour: -1, minute: -1, second: -1,
	}
	if rest, zone, ok := splitTimeZone(raw); ok {
		p.s = rest
		p.timeZone = zone
	}
	var err error
	if f.rule != nil {
		err = f.rule(p)
	}
	if err == nil {
		err = p.validate()
	}
	d := newExtractedDate()
	d.Year = p.year
	d.Month = p.month
	d.Day = p.day
	d.Hour = p.hour
	d.Minute = p.minute
	d.Second = p.second
	d.TimeZone = p.timeZone
	d.UTCOffsetMinutes = p.offsetMinutes
	d.DateString = raw
	d.Format = f.ID
	d.layout = f.Layout
	return d, err
}

// validate bounds-checks every set field. Values outside plausible ranges
// are never clamped; the match is reported as unusable instead.
func (p *parseState) validate() error {
	checks := []struct {
		name   string
		v      int
		lo, hi int
	}{
		{"month", p.month, 1, 12},
		{"day", p.day, 1, 31},
		{"hour", p.hour, 0, 23},
		{"minute", p.minute, 0, 59},
		{"second", p.second, 0, 59},
	}
	for _, c := range checks {
		if c.v != -1 && (c.v < c.lo || c.v > c.hi) {
			return fmt.Errorf("%s %d: %w", c.name, c.v, ErrInvalidFieldValue)
		}
	}
	return nil
}

// Context year: the match includes the context keyword, the year is the
// trailing four digits.
func ruleContextYear(p *parseState) error {
	s := strings.TrimSpace(p.s)
	if len(s) < 4 {
		return fmt.Errorf("no year in %q: %w", p.s, ErrMalformedSegment)
	}
	y, err := strconv.Atoi(s[len(s)-4:])
	if err != nil {
		return fmt.Errorf("bad year in %q: %w", p.s, ErrMalformedSegment)
	}
	p.year = y
	return nil
}

func ruleYMDTime(p *parseState) error {
	sep := "T"
	if !strings.Contains(p.s, "T") {
		sep = " "
	}
	parts := splitTokens(p.s, sep)
	if len(parts) < 2 {
		return fmt.Errorf("expected date and time in %q: %w", p.s, ErrMalformedSegment)
	}
	date, err := splitDateTokens(parts[0])
	if err != nil {
		return err
	}
	if err := p.setDateTokens(date, 0, 1, 2); err != nil {
		return err
	}
	return p.setTimeValues(parts[1])
}

func ruleYMD(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, 0, 1, 2)
}

func ruleYM(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "-"), 0, 1, -1)
}

// URL year-month, any of the URL separator symbols.
func ruleYM2(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, 0, 1, -1)
}

func ruleYWDTime(p *parseState) error {
	sep := "T"
	if !strings.Contains(p.s, "T") {
		sep = " "
	}
	parts := splitTokens(p.s, sep)
	if len(parts) < 2 {
		return fmt.Errorf("expected date and time in %q: %w", p.s, ErrMalformedSegment)
	}
	if err := p.setWeekDate(parts[0], true, true); err != nil {
		return err
	}
	return p.setTimeValues(parts[1])
}

func ruleYWD(p *parseState) error {
	return p.setWeekDate(p.s, true, true)
}

func ruleYW(p *parseState) error {
	return p.setWeekDate(p.s, false, true)
}

func ruleYDTime(p *parseState) error {
	sep := "T"
	if !strings.Contains(p.s, "T") {
		sep = " "
	}
	parts := splitTokens(p.s, sep)
	if len(parts) < 2 {
		return fmt.Errorf("expected date and time in %q: %w", p.s, ErrMalformedSegment)
	}
	if err := p.setDayOfYear(parts[0], true); err != nil {
		return err
	}
	return p.setTimeValues(parts[1])
}

func ruleYD(p *parseState) error {
	return p.setDayOfYear(p.s, true)
}

func ruleYMDCompact(p *parseState) error {
	if len(p.s) < 8 {
		return fmt.Errorf("expected 8 digits in %q: %w", p.s, ErrMalformedSegment)
	}
	y, err1 := strconv.Atoi(p.s[0:4])
	m, err2 := strconv.Atoi(p.s[4:6])
	d, err3 := strconv.Atoi(p.s[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("bad digits in %q: %w", p.s, ErrMalformedSegment)
	}
	p.year, p.month, p.day = y, m, d
	return nil
}

func ruleYWDCompact(p *parseState) error {
	return p.setWeekDate(p.s, true, false)
}

func ruleYWCompact(p *parseState) error {
	return p.setWeekDate(p.s, false, false)
}

func ruleYDCompact(p *parseState) error {
	return p.setDayOfYear(p.s, false)
}

func ruleURLMonthNameDay(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "/"), 0, 1, 2)
}

// URL dates with arbitrary path folders between year and month, e.g.
// 2010/archive/07/20 or 2010/archive/07_20.
func ruleURLSplit(p *parseState) error {
	parts := splitTokens(p.s, "/")
	if len(parts) < 2 {
		return fmt.Errorf("expected year and month/day in %q: %w", p.s, ErrMalformedSegment)
	}
	y, err := normalizeYear(parts[0])
	if err != nil {
		return err
	}
	p.year = y
	last := parts[len(parts)-1]
	if day, err := strconv.Atoi(last); err == nil {
		p.day = day
		if len(parts) < 3 {
			return fmt.Errorf("no month token in %q: %w", p.s, ErrMalformedSegment)
		}
		month, err := strconv.Atoi(parts[len(parts)-2])
		if err != nil {
			return fmt.Errorf("bad month token %q: %w", parts[len(parts)-2], ErrMalformedSegment)
		}
		p.month = month
		return nil
	}
	sub, err := splitDateTokens(last)
	if err != nil {
		return err
	}
	if len(sub) < 2 {
		return fmt.Errorf("expected month and day in %q: %w", last, ErrMalformedSegment)
	}
	month, err1 := strconv.Atoi(sub[0])
	day, err2 := strconv.Atoi(sub[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("bad month/day tokens in %q: %w", last, ErrMalformedSegment)
	}
	p.month, p.day = month, day
	return nil
}

func ruleEUDayMonthYear(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, 2, 1, 0)
}

func ruleUSAMonthDayYear(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, 2, 0, 1)
}

func ruleEUDayMonthNameYear(p *parseState) error {
	s := dotSpaceRe.ReplaceAllString(p.s, " ")
	s = strings.ReplaceAll(s, "-", " ")
	return p.setDateTokens(splitTokens(s, " "), 2, 1, 0)
}

func ruleUSAMonthNameDayYear(p *parseState) error {
	s := commaSpaceRe.ReplaceAllString(p.s, " ")
	parts := splitTokens(s, " ")
	// "Sept.3, 2010" splits into two tokens, month and day still joined.
	if len(parts) == 2 {
		sub := strings.SplitN(parts[0], ".", 2)
		if len(sub) < 2 {
			return fmt.Errorf("expected month and day in %q: %w", parts[0], ErrMalformedSegment)
		}
		parts = []string{sub[0], sub[1], parts[1]}
	}
	return p.setDateTokens(parts, 2, 0, 1)
}

func ruleUSAMonthNameDayYearSep(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "-"), 2, 0, 1)
}

func ruleMonthNameYear(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, " "), 1, 0, -1)
}

func ruleYearMonthNameDay(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "-"), 0, 1, 2)
}

func ruleEUMonthYear(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, 1, 0, -1)
}

func ruleEUDayMonth(p *parseState) error {
	date, err := splitDateTokens(p.s)
	if err != nil {
		return err
	}
	return p.setDateTokens(date, -1, 1, 0)
}

func ruleEUDayMonthName(p *parseState) error {
	s := strings.ReplaceAll(p.s, ".", "")
	return p.setDateTokens(splitTokens(s, " "), -1, 1, 0)
}

func ruleUSAMonthDay(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "/"), -1, 0, 1)
}

func ruleUSAMonthNameDay(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, " "), -1, 0, 1)
}

func ruleUSAMonthYear(p *parseState) error {
	return p.setDateTokens(splitTokens(p.s, "/"), 1, 0, -1)
}

func ruleANSIC(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if err := p.setDateTokens(parts, 4, 1, 2); err != nil {
		return err
	}
	return p.setTimeValues(parts[3])
}

func ruleANSICOffset(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if err := p.setDateTokens(parts, 4, 1, 2); err != nil {
		return err
	}
	if len(parts) < 6 {
		return fmt.Errorf("no UTC offset token in %q: %w", p.s, ErrMalformedSegment)
	}
	return p.setTimeValues(parts[3] + parts[5])
}

func ruleRFC1123(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if err := p.setDateTokens(parts, 3, 2, 1); err != nil {
		return err
	}
	if len(parts) < 5 {
		return fmt.Errorf("no time token in %q: %w", p.s, ErrMalformedSegment)
	}
	return p.setTimeValues(parts[4])
}

func ruleRFC1036(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if len(parts) < 3 {
		return fmt.Errorf("expected weekday, date and time in %q: %w", p.s, ErrMalformedSegment)
	}
	if err := p.setDateTokens(splitTokens(parts[1], "-"), 2, 1, 0); err != nil {
		return err
	}
	return p.setTimeValues(parts[2])
}

func ruleRFC1123Offset(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if err := p.setDateTokens(parts, 3, 2, 1); err != nil {
		return err
	}
	if len(parts) < 6 {
		return fmt.Errorf("no UTC offset token in %q: %w", p.s, ErrMalformedSegment)
	}
	return p.setTimeValues(parts[4] + parts[5])
}

func ruleRFC1036Offset(p *parseState) error {
	parts := splitTokens(p.s, " ")
	if len(parts) < 4 {
		return fmt.Errorf("expected weekday, date, time and offset in %q: %w", p.s, ErrMalformedSegment)
	}
	if err := p.setDateTokens(splitTokens(parts[1], "-"), 2, 1, 0); err != nil {
		return err
	}
	return p.setTimeValues(parts[2] + parts[3])
}

func ruleEUDayMonthYearTime(p *parseState) error {
	return p.dateWithTime(p.s, 2, 1, 0, 1, false, false)
}

func ruleUSAMonthDayYearTime(p *parseState) error {
	return p.dateWithTime(p.s, 2, 0, 1, 1, false, false)
}

func ruleEUDayMonthNameYearTime(p *parseState) error {
	return p.dateWithTime(p.s, 2, 1, 0, 3, true, true)
}

func ruleUSAMonthNameDayYearTime(p *parseState) error {
	return p.dateWithTime(p.s, 2, 0, 1, 3, true, false)
}

// dateWithTime handles the time-bearing EU/US formats. The date tokens sit
// before timeFrom; everything from timeFrom on (minus "/" separators) is the
// time. When wordDate is set, the date part consists of space-separated
// tokens (day, month name, year); otherwise the first token holds the whole
// date with a symbol separator. stripDashes turns dash-separated word dates
// ("06-Feb-06 13:10") into space-separated ones first.
func (p *parseState) dateWithTime(s string, yearPos, monthPos, dayPos, timeFrom int, wordDate, stripDashes bool) error {
	m := meridiem(s)
	if m != "" {
		s = stripMeridiem(s, m)
	}
	if stripDashes && strings.Contains(s, "-") {
		s = strings.ReplaceAll(s, "-", " ")
	}
	parts := splitTokens(s, " ")
	if len(parts) == 0 {
		return fmt.Errorf("empty date %q: %w", p.s, ErrMalformedSegment)
	}
	if wordDate {
		if err := p.setDateTokens(parts, yearPos, monthPos, dayPos); err != nil {
			return err
		}
	} else {
		date, err := splitDateTokens(parts[0])
		if err != nil {
			return err
		}
		if err := p.setDateTokens(date, yearPos, monthPos, dayPos); err != nil {
			return err
		}
	}
	var b strings.Builder
	for i := timeFrom; i < len(parts); i++ {
		if !strings.Contains(parts[i], "/") {
			b.WriteString(parts[i])
		}
	}
	if err := p.setTimeValues(b.String()); err != nil {
		return err
	}
	p.apply24h(m)
	return nil
}

// setDateTokens assigns year, month, and day from the token slice by fixed
// positions; -1 marks a field the format does not carry. Year tokens are
// normalized to four digits, month tokens resolve numerically or through the
// month-name table, day tokens get their decorations stripped.
func (p *parseState) setDateTokens(parts []string, yearPos, monthPos, dayPos int) error {
	if yearPos != -1 {
		if yearPos >= len(parts) {
			return fmt.Errorf("no year token at position %d in %q: %w", yearPos, parts, ErrMalformedSegment)
		}
		y, err := normalizeYear(parts[yearPos])
		if err != nil {
			return err
		}
		p.year = y
	}
	if monthPos != -1 {
		if monthPos >= len(parts) {
			return fmt.Errorf("no month token at position %d in %q: %w", monthPos, parts, ErrMalformedSegment)
		}
		tok := strings.ReplaceAll(parts[monthPos], " ", "")
		if isDigits(tok) {
			m, err := strconv.Atoi(tok)
			if err != nil {
				return fmt.Errorf("bad month token %q: %w", tok, ErrMalformedSegment)
			}
			p.month = m
		} else {
			p.month = p.months.Number(tok)
		}
	}
	if dayPos != -1 {
		if dayPos >= len(parts) {
			return fmt.Errorf("no day token at position %d in %q: %w", dayPos, parts, ErrMalformedSegment)
		}
		d, err := strconv.Atoi(trimDigits(parts[dayPos]))
		if err != nil {
			return fmt.Errorf("bad day token %q: %w", parts[dayPos], ErrMalformedSegment)
		}
		p.day = d
	}
	return nil
}

// setTimeValues parses HH[:MM[:SS[.frac]]] with an optional trailing Z,
// +HH:MM, -HH:MM, or +HHMM offset. A detected offset is applied to the
// already-set fields via calendar rollover. Call after the date fields are
// set; the offset is ignored otherwise.
func (p *parseState) setTimeValues(ts string) error {
	actual := ts
	if strings.Contains(actual, ".") {
		actual = fracSecRe.ReplaceAllString(actual, "")
	}
	sep := ""
	switch {
	case strings.Contains(ts, "Z"):
		sep = "Z"
	case strings.Contains(ts, "+"):
		sep = "+"
	case strings.Contains(ts, "-"):
		sep = "-"
	}
	clean := actual
	diff := ""
	if sep != "" {
		parts := strings.Split(actual, sep)
		clean = parts[0]
		if sep != "Z" && len(parts) > 1 {
			diff = parts[1]
		}
	}
	if err := p.setClock(clean); err != nil {
		return err
	}
	if diff != "" {
		return p.applyTimeDiff(diff, sep)
	}
	return nil
}

// setClock sets hour, minute, second from HH:MM:SS, HH:MM, or HH. Only the
// components present are set.
func (p *parseState) setClock(ts string) error {
	if ts == "" || strings.Contains(ts, ":") {
		parts := strings.Split(strings.TrimSpace(ts), ":")
		if len(parts) == 0 || parts[0] == "" {
			return nil
		}
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("bad hour token %q: %w", parts[0], ErrMalformedSegment)
		}
		p.hour = h
		if len(parts) > 1 {
			m, err := strconv.Atoi(parts[1])
			if err != nil {
				return fmt.Errorf("bad minute token %q: %w", parts[1], ErrMalformedSegment)
			}
			p.minute = m
			if len(parts) > 2 {
				s, err := strconv.Atoi(parts[2])
				if err != nil {
					return fmt.Errorf("bad second token %q: %w", parts[2], ErrMalformedSegment)
				}
				p.second = s
			}
		}
		return nil
	}
	h, err := strconv.Atoi(ts)
	if err != nil {
		return fmt.Errorf("bad time token %q: %w", ts, ErrMalformedSegment)
	}
	p.hour = h
	return nil
}

// applyTimeDiff shifts the date by the given UTC offset. A "-" offset means
// the local time is behind UTC, so the hours are added to reach UTC, and
// vice versa. Requires year, month, day, and hour to be set: rolling over
// into an unknown day or month is undefined, so the offset is dropped then.
func (p *parseState) applyTimeDiff(diff, sign string) error {
	if p.year == -1 || p.month == -1 || p.day == -1 || p.hour == -1 {
		return nil
	}
	var dh, dm int
	var err error
	if strings.Contains(diff, ":") {
		parts := strings.Split(diff, ":")
		if len(parts) < 2 {
			return fmt.Errorf("bad UTC offset %q: %w", diff, ErrMalformedSegment)
		}
		if dh, err = strconv.Atoi(parts[0]); err == nil {
			dm, err = strconv.Atoi(parts[1])
		}
	} else if len(diff) == 4 {
		if dh, err = strconv.Atoi(diff[:2]); err == nil {
			dm, err = strconv.Atoi(diff[2:])
		}
	} else {
		dh, err = strconv.Atoi(diff)
	}
	if err != nil {
		return fmt.Errorf("bad UTC offset %q: %w", diff, ErrMalformedSegment)
	}

	base := 0
	if p.minute != -1 {
		base = p.minute
	}
	t := time.Date(p.year, time.Month(p.month), p.day, p.hour, base, 0, 0, time.UTC)
	delta := time.Duration(dh)*time.Hour + time.Duration(dm)*time.Minute
	if sign == "-" {
		t = t.Add(delta)
		p.offsetMinutes = -(dh*60 + dm)
	} else {
		t = t.Add(-delta)
		p.offsetMinutes = dh*60 + dm
	}
	p.year = t.Year()
	p.month = int(t.Month())
	p.day = t.Day()
	p.hour = t.Hour()
	if p.minute != -1 || dm != 0 {
		p.minute = t.Minute()
	}
	return nil
}

// setWeekDate resolves YYYY-Www[-D] (or the separator-less form) to year,
// month, and day. ISO 8601 week rules apply: the first week of a year has at
// least four days and weeks start on Monday. The day-of-week digit uses
// 1=Sunday .. 7=Saturday numbering within the Monday-started week; without a
// day, Monday is assumed.
func (p *parseState) setWeekDate(s string, withDay, withSep bool) error {
	var yearTok, weekTok, dayTok string
	if withSep {
		parts := splitTokens(s, "-")
		need := 2
		if withDay {
			need = 3
		}
		if len(parts) < need {
			return fmt.Errorf("expected %d week date tokens in %q: %w", need, s, ErrMalformedSegment)
		}
		yearTok, weekTok = parts[0], parts[1]
		if withDay {
			dayTok = parts[2]
		}
	} else {
		need := 7
		if withDay {
			need = 8
		}
		if len(s) < need {
			return fmt.Errorf("week date %q too short: %w", s, ErrMalformedSegment)
		}
		yearTok, weekTok = s[:4], s[4:7]
		if withDay {
			dayTok = s[7:8]
		}
	}
	if len(weekTok) < 2 {
		return fmt.Errorf("bad week token %q: %w", weekTok, ErrMalformedSegment)
	}
	year, err1 := strconv.Atoi(yearTok)
	week, err2 := strconv.Atoi(weekTok[1:])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("bad week date tokens in %q: %w", s, ErrMalformedSegment)
	}
	dayNum := 2 // Monday
	if withDay {
		if dayNum, err1 = strconv.Atoi(dayTok); err1 != nil {
			return fmt.Errorf("bad weekday token %q: %w", dayTok, ErrMalformedSegment)
		}
	}
	t := isoWeekStart(year, week).AddDate(0, 0, (dayNum-2+7)%7)
	p.year = t.Year()
	p.month = int(t.Month())
	if withDay {
		p.day = t.Day()
	}
	return nil
}

// isoWeekStart returns the Monday of the given ISO week. January 4th always
// lies in week one.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return monday.AddDate(0, 0, (week-1)*7)
}

// setDayOfYear resolves YYYY-DDD (or YYYYDDD) via calendar arithmetic.
func (p *parseState) setDayOfYear(s string, withSep bool) error {
	var yearTok, dayTok string
	if withSep {
		parts := splitTokens(s, "-")
		if len(parts) < 2 {
			return fmt.Errorf("expected year and day of year in %q: %w", s, ErrMalformedSegment)
		}
		yearTok, dayTok = parts[0], parts[1]
	} else {
		if len(s) < 5 {
			return fmt.Errorf("ordinal date %q too short: %w", s, ErrMalformedSegment)
		}
		yearTok, dayTok = s[:4], s[4:]
	}
	year, err1 := strconv.Atoi(yearTok)
	doy, err2 := strconv.Atoi(dayTok)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("bad ordinal date tokens in %q: %w", s, ErrMalformedSegment)
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
	p.year = t.Year()
	p.month = int(t.Month())
	p.day = t.Day()
	return nil
}

// apply24h converts the parsed hour to 24-hour form once the meridiem token
// is known. Call after setTimeValues.
func (p *parseState) apply24h(m string) {
	if p.hour == -1 || m == "" {
		return
	}
	switch {
	case strings.EqualFold(m, "pm") && 0 < p.hour && p.hour < 12:
		p.hour += 12
	case strings.EqualFold(m, "am") && p.hour == 12:
		p.hour = 0
	}
}

// meridiem returns the AM/PM token contained in s, or "".
func meridiem(s string) string {
	for _, m := range []string{"am", "AM", "pm", "PM"} {
		if strings.Contains(s, m) {
			return m
		}
	}
	return ""
}

func stripMeridiem(s, m string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, m, ""), "  ", " ")
}

// splitTimeZone splits a trailing zone acronym off the date string. The
// returned rest has the acronym replaced by a single space.
func splitTimeZone(s string) (rest, zone string, ok bool) {
	match := timeZoneRe.FindString(s)
	if match == "" {
		return s, "", false
	}
	zone = strings.TrimSpace(match)
	rest = timeZoneRe.ReplaceAllString(s, " ")
	rest = strings.ReplaceAll(rest, "  ", " ")
	return rest, zone, true
}

// separatorFor picks the date token separator by presence priority.
func separatorFor(s string) (string, bool) {
	for _, sep := range []string{".", "/", "_", "-"} {
		if strings.Contains(s, sep) {
			return sep, true
		}
	}
	return "", false
}

func splitDateTokens(s string) ([]string, error) {
	sep, ok := separatorFor(s)
	if !ok {
		return nil, fmt.Errorf("no separator in date %q: %w", s, ErrMalformedSegment)
	}
	return splitTokens(s, sep), nil
}

// splitTokens splits on sep and drops trailing empty tokens, so "25.07."
// yields two tokens, not three.
func splitTokens(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// normalizeYear strips decorations from a year token and expands two-digit
// years to four digits.
func normalizeYear(s string) (int, error) {
	y, err := strconv.Atoi(trimDigits(s))
	if err != nil {
		return 0, fmt.Errorf("bad year token %q: %w", s, ErrMalformedSegment)
	}
	return fourDigitYear(y, time.Now().Year()), nil
}

// fourDigitYear expands a two-digit year using the pivot rule: values past
// the current year's last two digits land in the 1900s, the rest in the
// 2000s.
func fourDigitYear(year, currentYear int) int {
	if year > 100 {
		return year
	}
	if year > currentYear-2000 {
		return year + 1900
	}
	return year + 2000
}

// trimDigits removes the decorations that may surround a day or year token:
// a leading apostrophe ('99), anything from a comma or period on, ordinal
// suffixes (3rd, 21st), and everything after a line break.
func trimDigits(s string) string {
	r := s
	if i := strings.IndexByte(r, '\''); i != -1 {
		r = r[i+1:]
	}
	if i := strings.IndexByte(r, ','); i != -1 {
		r = r[:i]
	}
	if i := strings.IndexByte(r, '.'); i != -1 {
		r = r[:i]
	}
	for _, suffix := range []string{"th", "st", "nd", "rd"} {
		if i := strings.Index(r, suffix); i != -1 {
			r = r[:i]
			break
		}
	}
	return newlineRe.ReplaceAllString(r, "")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
