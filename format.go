package datescan

import "regexp"

// FormatID identifies a date layout in the catalog. Relative-date formats use
// their unit name ("min", "hour", ...) as identifier.
type FormatID string

const (
	IDContextYear             FormatID = "context-yyyy"
	IDISOYMDTime              FormatID = "iso8601-ymd-t"
	IDISOYMDSepTime           FormatID = "iso8601-ymd-sep-t"
	IDISOYMD                  FormatID = "iso8601-ymd"
	IDISOYMDSep               FormatID = "iso8601-ymd-sep"
	IDISOYM                   FormatID = "iso8601-ym"
	IDISOYWDTime              FormatID = "iso8601-ywd-t"
	IDISOYWD                  FormatID = "iso8601-ywd"
	IDISOYW                   FormatID = "iso8601-yw"
	IDISOYDTime               FormatID = "iso8601-yd-t"
	IDISOYD                   FormatID = "iso8601-yd"
	IDISOYMDCompact           FormatID = "iso8601-ymd-compact"
	IDISOYWDCompact           FormatID = "iso8601-ywd-compact"
	IDISOYWCompact            FormatID = "iso8601-yw-compact"
	IDISOYDCompact            FormatID = "iso8601-yd-compact"
	IDURLYMD                  FormatID = "url-ymd"
	IDURLMonthNameDay         FormatID = "url-y-mmmm-d"
	IDURLYM                   FormatID = "url-ym"
	IDURLSplit                FormatID = "url-split-ymd"
	IDEUDayMonthYear          FormatID = "eu-d-mm-y"
	IDEUDayMonthYearTime      FormatID = "eu-d-mm-y-t"
	IDEUMonthYear             FormatID = "eu-mm-y"
	IDEUDayMonth              FormatID = "eu-d-mm"
	IDEUDayMonthNameYear      FormatID = "eu-d-mmmm-y"
	IDEUDayMonthName          FormatID = "eu-d-mmmm"
	IDEUDayMonthNameYearTime  FormatID = "eu-d-mmmm-y-t"
	IDUSAMonthDayYear         FormatID = "usa-mm-d-y"
	IDUSAMonthDayYearTime     FormatID = "usa-mm-d-y-t"
	IDUSAMonthDayYearSep      FormatID = "usa-mm-d-y-sep"
	IDUSAMonthDayYearSepTime  FormatID = "usa-mm-d-y-sep-t"
	IDUSAMonthYear            FormatID = "usa-mm-y"
	IDUSAMonthDay             FormatID = "usa-mm-d"
	IDUSAMonthNameDayYear     FormatID = "usa-mmmm-d-y"
	IDUSAMonthNameDayYearSep  FormatID = "usa-mmmm-d-y-sep"
	IDUSAMonthNameDayYearTime FormatID = "usa-mmmm-d-y-t"
	IDUSAMonthNameDay         FormatID = "usa-mmmm-d"
	IDMonthNameYear           FormatID = "eusa-mmmm-y"
	IDYearMonthNameDay        FormatID = "eusa-y-mmm-d"
	IDRFC1123                 FormatID = "rfc1123"
	IDRFC1123Offset           FormatID = "rfc1123-utc"
	IDRFC1036                 FormatID = "rfc1036"
	IDRFC1036Offset           FormatID = "rfc1036-utc"
	IDANSIC                   FormatID = "ansi-c"
	IDANSICOffset             FormatID = "ansi-c-utc"
	IDRelativeMin             FormatID = "min"
	IDRelativeHour            FormatID = "hour"
	IDRelativeDay             FormatID = "day"
	IDRelativeMonth           FormatID = "mon"
	IDRelativeYear            FormatID = "year"
)

// Format pairs a search pattern with its symbolic identifier, a layout
// template, and the decomposition rule that turns a matched substring into
// field values. The rule is registered together with the pattern so the two
// cannot drift apart.
type Format struct {
	ID     FormatID
	Layout string

	re       *regexp.Regexp
	anchored *regexp.Regexp
	rule     decomposeRule
	capture  int
}

// Pattern returns the compiled search pattern.
func (f *Format) Pattern() *regexp.Regexp { return f.re }

func (f *Format) String() string { return f.Layout }

func newFormat(id FormatID, layout, expr string, rule decomposeRule) *Format {
	return &Format{
		ID:       id,
		Layout:   layout,
		re:       regexp.MustCompile(expr),
		anchored: regexp.MustCompile(`\A(?:` + expr + `)\z`),
		rule:     rule,
	}
}

// withCapture narrows the format's reported span to the named group. The
// surrounding pattern text still has to match but stays out of the date's
// provenance.
func withCapture(f *Format, group string) *Format {
	f.capture = f.re.SubexpIndex(group)
	return f
}

// matchSpans returns the spans a scan should consider: whole matches, or the
// capture group's span for formats that declare one.
func (f *Format) matchSpans(text string) [][]int {
	if f.capture <= 0 {
		return f.re.FindAllStringIndex(text, -1)
	}
	var spans [][]int
	for _, m := range f.re.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, []int{m[2*f.capture], m[2*f.capture+1]})
	}
	return spans
}

// Pattern fragments, composed bottom-up into the catalog entries below.
const (
	longYear  = `((\d){4})`
	shortYear = `((\d){2})`

	monthNumDouble = `((0[1-9])|(1[0-2]))`
	monthNumNormal = `((1[0-2])|(0?[1-9]))`

	monthNameShortEN = `((?i:jan|feb|mar|apr|may|jun|jul|aug|sept|sep|oct|nov|dec))`
	monthNameShortDE = `((?i:jan|feb|mär|apr|mai|jun|jul|aug|sep|okt|nov|dez))`
	monthNameShort2  = `((` + monthNameShortEN + `)|(` + monthNameShortDE + `))`
	monthNameShort   = `(` + monthNameShort2 + `(\.)?)`
	monthNameLongEN  = `((?i:january|february|march|april|may|june|july|august|september|october|november|december))`
	monthNameLongDE  = `((?i:januar|februar|märz|april|mai|juni|juli|august|september|oktober|november|dezember))`
	monthNameLong    = `((` + monthNameLongEN + `)|(` + monthNameLongDE + `)|(` + monthNameShort + `))`
	monthNameLong2   = `((` + monthNameLongEN + `)|(` + monthNameLongDE + `)|(` + monthNameShort2 + `))`

	day0199    = `((0[1-9])|([1-9][0-9]))`
	day0099    = `([0-9][0-9])`
	dayOfYear  = `((0` + day0199 + `)|([12]` + day0099 + `)|(3(([0-5][0-9])|(6[0-6]))))`
	dayOfMonth = `((0[1-9])|([12][0-9])|(3[01]))`
	// 1-31 with one or two digits
	dayOfMonth1  = `(([1-9])|([12][0-9])|(3[01]))`
	dayOfMonth12 = `((` + dayOfMonth + `)|(` + dayOfMonth1 + `))`
	dayOfWeek    = `([1-7])`
	weekOfYear   = `(W((0[1-9])|([1-4][0-9])|(5[0-3])))`
	weekdayShort = `((Mon)|(Tue)|(Wed)|(Thu)|(Fri)|(Sat)|(Sun))`
	weekdayLong  = `((Monday)|(Tuesday)|(Wednesday)|(Thursday)|(Friday)|(Saturday)|(Sunday))`

	hour24     = `((1[0-9])|(2[0-4])|(0[0-9]))`
	hour12     = `((1[0-2])|(0[0-9]))`
	hour24Lead = `((1[0-9])|(2[0-4])|([0-9]))`
	hour12Lead = `((1[0-2])|([0-9]))`
	minSec     = `((0[0-9])|([1-5][0-9]))`

	zoneAcronym = `((\s)((\sUTC)|(UTC)|(MEZ)|(GMT)|(Z)|(AEST)|(BST)|(EST)))`

	timeSec     = hour24 + `:` + minSec + `:` + minSec
	floatSecOpt = `(((\.)(\d)*)?)`
	amPM        = `((\s)((AM)|(PM)))`
	time24      = `(` + hour24 + `(:` + minSec + `(:` + minSec + floatSecOpt + `)?)?)`
	time24Lead  = `(` + hour24Lead + `(:` + minSec + `(:` + minSec + floatSecOpt + `)?)?)`
	time12      = `((` + hour12 + `(:` + minSec + `(:` + minSec + floatSecOpt + `)?)?)` + amPM + `?)`
	time12Lead  = `((` + hour12Lead + `(:` + minSec + `(:` + minSec + floatSecOpt + `)?)?)` + amPM + `?)`
	timeAny     = `(` + time12 + `|` + time24 + `|` + time12Lead + `|` + time24Lead + `)`
	timeSep     = `((\s)|(\s)/(\s))`
	gmtOpt      = `((\s)?((GMT)|(UTC)|(Z))?)`
	diffUTC     = `(` + gmtOpt + `(\s)?((\+)|(-))` + hour24 + `((:)?` + minSec + `)?)`
	isoTime     = `(((T)|(\s))` + time24 + `(` + diffUTC + `|(Z))?)`

	apostrophe = `('?)`
	ordinalOpt = `(((st)|(nd)|(rd)|(th))?)`
	// YYYY or (')?YY
	yearShortLong = `(` + longYear + `|(` + apostrophe + shortYear + `))`
	urlSym        = `[/\._-]`
	sepSym        = `([/\._-])`
)

// Separator variants of the base ISO and US patterns.
const (
	isoYMDSep1 = yearShortLong + `/` + monthNumDouble + `/` + dayOfMonth
	isoYMDSep2 = yearShortLong + `\.` + monthNumDouble + `\.` + dayOfMonth
	isoYMDSep3 = yearShortLong + `_` + monthNumDouble + `_` + dayOfMonth

	urlYMD1 = yearShortLong + `(/)` + monthNumDouble + `(/)` + dayOfMonth + `(/)`
	urlYMD2 = yearShortLong + `(_)` + monthNumDouble + `(_)` + dayOfMonth
	urlYMD3 = yearShortLong + `(\.)` + monthNumDouble + `(\.)` + dayOfMonth
	urlYMD4 = yearShortLong + `(-)` + monthNumDouble + `(-)` + dayOfMonth

	euDMY1 = dayOfMonth12 + `(\.)` + monthNumNormal + `(\.)` + yearShortLong
	euDMY2 = dayOfMonth12 + `(/)` + monthNumNormal + `(/)` + yearShortLong
	euDMY3 = dayOfMonth12 + `(_)` + monthNumNormal + `(_)` + yearShortLong
	euDMY4 = dayOfMonth12 + `(-)` + monthNumNormal + `(-)` + yearShortLong
	euDMY  = `((` + euDMY1 + `)|(` + euDMY2 + `)|(` + euDMY3 + `)|(` + euDMY4 + `))`

	usaMDYSep1 = monthNumNormal + `\.` + dayOfMonth12 + `\.` + yearShortLong
	usaMDYSep2 = monthNumNormal + `-` + dayOfMonth12 + `-` + yearShortLong
	usaMDYSep3 = monthNumNormal + `_` + dayOfMonth12 + `_` + yearShortLong
	usaMDYSep  = `((` + usaMDYSep1 + `)|(` + usaMDYSep2 + `)|(` + usaMDYSep3 + `))`
)

// The catalog. The matching decomposition rules live in logic.go.
var (
	// ContextYear matches a bare four-digit year preceded by a context
	// keyword; only the year itself enters the reported span. Not part of
	// AllFormats; callers opt in explicitly.
	ContextYear = withCapture(newFormat(IDContextYear,
		"YYYY",
		`((in)|(of)|(from)|(year)|(until)|(through)|(during))\s(?P<year>[0-9]{4})`,
		ruleContextYear), "year")

	ISO8601YMDTime = newFormat(IDISOYMDTime,
		"YYYY-MM-DDTHH:MM:SS+HH:MM",
		yearShortLong+`-`+monthNumDouble+`-`+dayOfMonth+isoTime,
		ruleYMDTime)
	ISO8601YMDSepTime = newFormat(IDISOYMDSepTime,
		"YYYY-MM-DDTHH:MM:SS+HH:MM",
		`((`+isoYMDSep1+isoTime+`)|(`+isoYMDSep2+isoTime+`)|(`+isoYMDSep3+isoTime+`))`,
		ruleYMDTime)
	ISO8601YMD = newFormat(IDISOYMD,
		"YYYY-MM-DD",
		yearShortLong+`-`+monthNumDouble+`-`+dayOfMonth,
		ruleYMD)
	ISO8601YMDSep = newFormat(IDISOYMDSep,
		"YYYY-MM-DD",
		`((`+isoYMDSep1+`)|(`+isoYMDSep2+`)|(`+isoYMDSep3+`))`,
		ruleYMD)
	ISO8601YM = newFormat(IDISOYM,
		"YYYY-MM",
		yearShortLong+`-`+monthNumDouble,
		ruleYM)
	ISO8601YWDTime = newFormat(IDISOYWDTime,
		"YYYY-WW-DTHH:MM:SS+HH:MM",
		longYear+`-`+weekOfYear+`-`+dayOfWeek+isoTime,
		ruleYWDTime)
	ISO8601YWD = newFormat(IDISOYWD,
		"YYYY-WW-D",
		longYear+`-`+weekOfYear+`-`+dayOfWeek,
		ruleYWD)
	ISO8601YW = newFormat(IDISOYW,
		"YYYY-WW",
		longYear+`-`+weekOfYear,
		ruleYW)
	ISO8601YDTime = newFormat(IDISOYDTime,
		"YYYY-DDDTHH:MM:SS+HH:MM",
		longYear+`-`+dayOfYear+isoTime,
		ruleYDTime)
	ISO8601YD = newFormat(IDISOYD,
		"YYYY-DDD",
		longYear+`-`+dayOfYear,
		ruleYD)
	ISO8601YMDCompact = newFormat(IDISOYMDCompact,
		"YYYYMMDD",
		longYear+monthNumDouble+dayOfMonth,
		ruleYMDCompact)
	ISO8601YWDCompact = newFormat(IDISOYWDCompact,
		"YYYYWWD",
		longYear+weekOfYear+dayOfWeek,
		ruleYWDCompact)
	ISO8601YWCompact = newFormat(IDISOYWCompact,
		"YYYYWW",
		longYear+weekOfYear,
		ruleYWCompact)
	ISO8601YDCompact = newFormat(IDISOYDCompact,
		"YYYYDDD",
		longYear+dayOfYear,
		ruleYDCompact)

	URLYMD = newFormat(IDURLYMD,
		"YYYY_MM_DD",
		`((`+urlYMD1+`)|(`+urlYMD2+`)|(`+urlYMD3+`)|(`+urlYMD4+`))`,
		ruleYMD)
	URLMonthNameDay = newFormat(IDURLMonthNameDay,
		"YYYY_MMMM_DD_URL",
		yearShortLong+`(/)`+monthNameLong+`(/)`+dayOfMonth+`(/)`,
		ruleURLMonthNameDay)
	URLYM = newFormat(IDURLYM,
		"YYYY_MM",
		yearShortLong+urlSym+monthNumDouble,
		ruleYM2)
	// URLSplit covers dates whose year and month are separated by
	// arbitrary path folders, e.g. 2010/threads/07-20.
	URLSplit = newFormat(IDURLSplit,
		"YYYY.x.MM.DD",
		longYear+`/(.)+/`+monthNumDouble+urlSym+dayOfMonth,
		ruleURLSplit)

	EUDayMonthYear = newFormat(IDEUDayMonthYear,
		"DD.MM.YYYY",
		euDMY,
		ruleEUDayMonthYear)
	EUDayMonthYearTime = newFormat(IDEUDayMonthYearTime,
		"DD.MM.YYYY HH:MM:SS +UTC",
		`(`+euDMY+timeSep+timeAny+`(`+diffUTC+`|`+zoneAcronym+`)?)`,
		ruleEUDayMonthYearTime)
	EUMonthYear = newFormat(IDEUMonthYear,
		"MM.YYYY",
		monthNumNormal+sepSym+yearShortLong,
		ruleEUMonthYear)
	EUDayMonth = newFormat(IDEUDayMonth,
		"DD.MM.",
		dayOfMonth12+`\.`+monthNumNormal+`\.`,
		ruleEUDayMonth)
	EUDayMonthNameYear = newFormat(IDEUDayMonthNameYear,
		"DD. MMMM YYYY",
		dayOfMonth12+`(((\.)?`+ordinalOpt+`\s)|(-))`+monthNameLong+`(((,)?\s)|(-))`+yearShortLong,
		ruleEUDayMonthNameYear)
	EUDayMonthName = newFormat(IDEUDayMonthName,
		"DD.MMMM",
		dayOfMonth12+`(\.)? `+monthNameLong,
		ruleEUDayMonthName)
	EUDayMonthNameYearTime = newFormat(IDEUDayMonthNameYearTime,
		"DD. MMMM YYYY HH:MM:SS +UTC",
		dayOfMonth12+`(((\.)?\s)|(-))`+monthNameLong+`(((,)?\s)|(-))`+yearShortLong+timeSep+timeAny+`(`+diffUTC+`|`+zoneAcronym+`)?`,
		ruleEUDayMonthNameYearTime)

	USAMonthDayYear = newFormat(IDUSAMonthDayYear,
		"MM/DD/YYYY",
		monthNumNormal+`/`+dayOfMonth12+`/`+yearShortLong,
		ruleUSAMonthDayYear)
	USAMonthDayYearTime = newFormat(IDUSAMonthDayYearTime,
		"MM/DD/YYYY HH:MM:SS +UTC",
		monthNumNormal+`/`+dayOfMonth12+`/`+yearShortLong+timeSep+timeAny+`(`+diffUTC+`|`+zoneAcronym+`)?`,
		ruleUSAMonthDayYearTime)
	USAMonthDayYearSep = newFormat(IDUSAMonthDayYearSep,
		"MM/DD/YYYY",
		usaMDYSep,
		ruleUSAMonthDayYear)
	USAMonthDayYearSepTime = newFormat(IDUSAMonthDayYearSepTime,
		"MM/DD/YYYY HH:MM:SS +UTC",
		usaMDYSep+timeSep+timeAny+`(`+diffUTC+`|`+zoneAcronym+`)?`,
		ruleUSAMonthDayYearTime)
	USAMonthYear = newFormat(IDUSAMonthYear,
		"MM/YYYY",
		monthNumNormal+`/`+yearShortLong,
		ruleUSAMonthYear)
	USAMonthDay = newFormat(IDUSAMonthDay,
		"MM/DD",
		monthNumNormal+`/`+dayOfMonth12,
		ruleUSAMonthDay)
	USAMonthNameDayYear = newFormat(IDUSAMonthNameDayYear,
		"MMMM DD, YYYY",
		monthNameLong2+`((\s)|(\.)|((\.)(\s)))`+dayOfMonth12+`(((`+ordinalOpt+`)(,)?)|(\.)?)`+` `+yearShortLong,
		ruleUSAMonthNameDayYear)
	USAMonthNameDayYearSep = newFormat(IDUSAMonthNameDayYearSep,
		"MMMM-DD-YYYY",
		monthNameLong+`-`+dayOfMonth12+`-`+yearShortLong,
		ruleUSAMonthNameDayYearSep)
	USAMonthNameDayYearTime = newFormat(IDUSAMonthNameDayYearTime,
		"MMMM DD, YYYY HH:MM:SS +UTC",
		monthNameLong+` `+dayOfMonth12+ordinalOpt+`, `+yearShortLong+`(,)?`+timeSep+timeAny+`(`+diffUTC+`|`+zoneAcronym+`)?`,
		ruleUSAMonthNameDayYearTime)
	USAMonthNameDay = newFormat(IDUSAMonthNameDay,
		"MMMM DD",
		monthNameLong+` `+dayOfMonth12+ordinalOpt,
		ruleUSAMonthNameDay)

	MonthNameYear = newFormat(IDMonthNameYear,
		"MMMM YYYY",
		monthNameLong+` `+yearShortLong,
		ruleMonthNameYear)
	YearMonthNameDay = newFormat(IDYearMonthNameDay,
		"YYYY-MMM-D",
		longYear+`-`+monthNameLong+`-`+dayOfMonth12,
		ruleYearMonthNameDay)

	RFC1123 = newFormat(IDRFC1123,
		"WD, DD MMM YYYY HH:MM:SS TZ",
		weekdayShort+`, `+dayOfMonth+` `+monthNameShortEN+` `+longYear+` `+timeSec+zoneAcronym,
		ruleRFC1123)
	RFC1036 = newFormat(IDRFC1036,
		"WWD, DD-MMM-YY HH:MM:SS TZ",
		weekdayLong+`, `+dayOfMonth+`-`+monthNameShortEN+`-`+shortYear+` `+timeSec+zoneAcronym,
		ruleRFC1036)
	RFC1123Offset = newFormat(IDRFC1123Offset,
		"WD, DD MMM YYYY HH:MM:SS +UTC",
		weekdayShort+`, `+dayOfMonth+` `+monthNameShortEN+` `+longYear+` `+timeSec+` `+diffUTC,
		ruleRFC1123Offset)
	RFC1036Offset = newFormat(IDRFC1036Offset,
		"WWD, DD-MMM-YY HH:MM:SS +UTC",
		weekdayLong+`, `+dayOfMonth+`-`+monthNameShortEN+`-`+shortYear+` `+timeSec+` `+diffUTC,
		ruleRFC1036Offset)
	ANSIC = newFormat(IDANSIC,
		"WD MMM DD_1 HH:MM:SS YYYY",
		weekdayShort+` `+monthNameShortEN+` `+dayOfMonth1+` `+timeSec+` `+longYear,
		ruleANSIC)
	ANSICOffset = newFormat(IDANSICOffset,
		"WD MMM DD_1 HH:MM:SS YYYY +UTC",
		weekdayShort+` `+monthNameShortEN+` `+dayOfMonth1+` `+timeSec+` `+longYear+` `+diffUTC,
		ruleANSICOffset)

	RelativeMinutes = newFormat(IDRelativeMin, "min", `(?i:\d* ((minute)|(minutes)) ago)`, nil)
	RelativeHours   = newFormat(IDRelativeHour, "hour", `(?i:\d* ((hour)|(hours)) ago)`, nil)
	RelativeDays    = newFormat(IDRelativeDay, "day", `(?i:\d* ((day)|(days)) ago)`, nil)
	RelativeMonths  = newFormat(IDRelativeMonth, "mon", `(?i:\d* ((month)|(months)) ago)`, nil)
	RelativeYears   = newFormat(IDRelativeYear, "year", `(?i:\d* ((year)|(years)) ago)`, nil)
)

// Ordering matters throughout: shorter patterns also match inside longer
// ones, so the more specific format must get the first shot at a position
// (the finder masks consumed spans, see finder.go).
var (
	rfcFormats = []*Format{ANSICOffset, ANSIC, RFC1036Offset, RFC1036, RFC1123Offset, RFC1123}

	timeFormats = []*Format{ISO8601YDTime, ISO8601YMDTime, ISO8601YWDTime, USAMonthDayYearTime,
		EUDayMonthYearTime, USAMonthNameDayYearTime, EUDayMonthNameYearTime, USAMonthDayYearSepTime}

	threePartFormats = []*Format{ISO8601YMD, USAMonthDayYear, EUDayMonthYear, USAMonthNameDayYear,
		USAMonthNameDayYearSep, EUDayMonthNameYear, ISO8601YWD, URLYMD, USAMonthDayYearSep,
		YearMonthNameDay, ISO8601YMDSep}

	twoPartFormats = []*Format{ISO8601YD, ISO8601YM, ISO8601YW, MonthNameYear, USAMonthDay,
		USAMonthYear, USAMonthNameDay, EUDayMonth, EUDayMonthName, EUMonthYear, URLYM}

	onePartFormats = []*Format{ISO8601YDCompact, ISO8601YMDCompact, ISO8601YWCompact, ISO8601YWDCompact}

	allFormats = concatFormats(rfcFormats, timeFormats, threePartFormats, twoPartFormats, onePartFormats)

	urlFormats = []*Format{URLYMD, URLMonthNameDay, URLSplit, ISO8601YMDCompact, ISO8601YWD,
		ISO8601YD, URLYM, ISO8601YW}

	htmlHeadFormats = []*Format{RFC1123, RFC1036, ANSICOffset, ANSIC, ISO8601YMDTime,
		ISO8601YMDSepTime, ISO8601YMD, ISO8601YMDSep, ISO8601YWD, ISO8601YD, ISO8601YM, ISO8601YW}

	relativeFormats = []*Format{RelativeMinutes, RelativeHours, RelativeDays, RelativeMonths, RelativeYears}
)

func concatFormats(groups ...[]*Format) []*Format {
	var all []*Format
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// AllFormats returns the complete catalog in scan priority order: RFC
// formats, time-bearing formats, three-part, two-part, then one-part
// (separator-less) formats.
func AllFormats() []*Format {
	return append([]*Format(nil), allFormats...)
}

// URLFormats returns the formats commonly found in URL paths.
func URLFormats() []*Format {
	return append([]*Format(nil), urlFormats...)
}

// HTTPFormats returns the formats found in HTTP headers.
func HTTPFormats() []*Format {
	return append([]*Format(nil), rfcFormats...)
}

// HTMLHeadFormats returns the formats found in HTML head metadata.
func HTMLHeadFormats() []*Format {
	return append([]*Format(nil), htmlHeadFormats...)
}

// RelativeFormats returns the "<n> <unit> ago" formats, resolved by
// FindRelative rather than by the decomposer.
func RelativeFormats() []*Format {
	return append([]*Format(nil), relativeFormats...)
}
