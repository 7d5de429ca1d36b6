package resume

import "testing"

func TestFindDateRange(t *testing.T) {
	cases := []struct {
		line    string
		start   YearMonth
		end     YearMonth
		current bool
	}{
		{"Jan 2020 - Mar 2022", YearMonth{2020, 1}, YearMonth{2022, 3}, false},
		{"January 2020 – March 2022", YearMonth{2020, 1}, YearMonth{2022, 3}, false},
		{"01/2020 - 03/2022", YearMonth{2020, 1}, YearMonth{2022, 3}, false},
		{"2019 to present", YearMonth{2019, 0}, YearMonth{}, true},
		{"2018-2021", YearMonth{2018, 0}, YearMonth{2021, 0}, false},
		{"Sep 2017 until Dec 2019", YearMonth{2017, 9}, YearMonth{2019, 12}, false},
		{"Acme Corp | Jun 2021 - Current", YearMonth{2021, 6}, YearMonth{}, true},
	}
	for _, tc := range cases {
		dr, ok := findDateRange(tc.line)
		if !ok {
			t.Errorf("findDateRange(%q) found no range", tc.line)
			continue
		}
		if dr.start != tc.start || dr.end != tc.end || dr.current != tc.current {
			t.Errorf("findDateRange(%q) = %+v/%+v current=%v, want %+v/%+v current=%v",
				tc.line, dr.start, dr.end, dr.current, tc.start, tc.end, tc.current)
		}
	}
}

func TestFindDateRangeRejectsNoise(t *testing.T) {
	for _, line := range []string{
		"Senior Software Engineer",
		"Improved latency by 40-60 percent",
		"Phone: 555-123-4567",
		"",
	} {
		if _, ok := findDateRange(line); ok {
			t.Errorf("findDateRange(%q) matched, want no match", line)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	cases := []struct {
		token string
		want  YearMonth
		ok    bool
	}{
		{"Feb 2021", YearMonth{2021, 2}, true},
		{"September 2019", YearMonth{2019, 9}, true},
		{"07/2018", YearMonth{2018, 7}, true},
		{"2015", YearMonth{2015, 0}, true},
		{"13/2018", YearMonth{}, false},
		{"1850", YearMonth{}, false},
		{"soon", YearMonth{}, false},
	}
	for _, tc := range cases {
		got, ok := parseYearMonth(tc.token)
		if ok != tc.ok || got != tc.want {
			t.Errorf("parseYearMonth(%q) = %+v, %v; want %+v, %v", tc.token, got, ok, tc.want, tc.ok)
		}
	}
}
