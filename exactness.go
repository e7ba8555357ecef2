package datescan

// Exactness is the finest granularity level an extracted date actually
// carries, as a total order from ExactUnset up to ExactSecond.
type Exactness int

const (
	ExactUnset Exactness = iota
	ExactYear
	ExactMonth
	ExactDay
	ExactHour
	ExactMinute
	ExactSecond
)

var exactnessNames = map[Exactness]string{
	ExactUnset:  "unset",
	ExactYear:   "year",
	ExactMonth:  "month",
	ExactDay:    "day",
	ExactHour:   "hour",
	ExactMinute: "minute",
	ExactSecond: "second",
}

func (e Exactness) String() string {
	if name, ok := exactnessNames[e]; ok {
		return name
	}
	return "unknown"
}

// Provides reports whether e is at least as fine-grained as other.
func (e Exactness) Provides(other Exactness) bool {
	return e >= other
}

// CommonExactness returns the coarser of the two levels, the finest
// granularity at which both dates can be compared.
func CommonExactness(a, b Exactness) Exactness {
	if a < b {
		return a
	}
	return b
}
