package datescan

import "testing"

func TestExactness_Order(t *testing.T) {
	levels := []Exactness{ExactUnset, ExactYear, ExactMonth, ExactDay, ExactHour, ExactMinute, ExactSecond}
	for i := 1; i < len(levels); i++ {
		if !levels[i].Provides(levels[i-1]) {
			t.Errorf("%v should provide %v", levels[i], levels[i-1])
		}
		if levels[i-1].Provides(levels[i]) {
			t.Errorf("%v should not provide %v", levels[i-1], levels[i])
		}
	}
	if !ExactDay.Provides(ExactDay) {
		t.Error("a level should provide itself")
	}
}

func TestCommonExactness(t *testing.T) {
	if got := CommonExactness(ExactSecond, ExactDay); got != ExactDay {
		t.Errorf("CommonExactness(second, day) = %v, want day", got)
	}
	if got := CommonExactness(ExactYear, ExactMinute); got != ExactYear {
		t.Errorf("CommonExactness(year, minute) = %v, want year", got)
	}
	if got := CommonExactness(ExactUnset, ExactSecond); got != ExactUnset {
		t.Errorf("CommonExactness(unset, second) = %v, want unset", got)
	}
}

func TestExtractedDate_Exactness(t *testing.T) {
	tests := []struct {
		name                                   string
		year, month, day, hour, minute, second int
		want                                   Exactness
	}{
		{"unset", -1, -1, -1, -1, -1, -1, ExactUnset},
		{"year", 2010, -1, -1, -1, -1, -1, ExactYear},
		{"month", 2010, 7, -1, -1, -1, -1, ExactMonth},
		{"day", 2010, 7, 2, -1, -1, -1, ExactDay},
		{"hour", 2010, 7, 2, 19, -1, -1, ExactHour},
		{"minute", 2010, 7, 2, 19, 7, -1, ExactMinute},
		{"second", 2010, 7, 2, 19, 7, 49, ExactSecond},
		// A field set past a gap does not count.
		{"day without month", 2010, -1, 5, -1, -1, -1, ExactYear},
		{"time without day", 2010, 7, -1, 19, 7, 49, ExactMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newExtractedDate()
			d.Year, d.Month, d.Day = tt.year, tt.month, tt.day
			d.Hour, d.Minute, d.Second = tt.hour, tt.minute, tt.second
			if got := d.Exactness(); got != tt.want {
				t.Errorf("Exactness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExactness_String(t *testing.T) {
	if got := ExactDay.String(); got != "day" {
		t.Errorf("String() = %q, want day", got)
	}
	if got := Exactness(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
