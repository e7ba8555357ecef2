package datescan

// Fixed offsets in seconds east of UTC for the zone acronyms the catalog
// recognizes. Acronyms that are ambiguous across regions carry a single
// fixed reading.
var zoneOffsets = map[string]int{
	"utc":  0,
	"gmt":  0,
	"z":    0,
	"mez":  1 * 3600,
	"bst":  1 * 3600,
	"est":  -5 * 3600,
	"aest": 10 * 3600,
}

// zoneOffset resolves a zone acronym case-insensitively to its fixed offset
// in seconds east of UTC.
func zoneOffset(name string) (int, bool) {
	off, ok := zoneOffsets[lowerASCII(name)]
	return off, ok
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
