package resume

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	monthPat = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`
	datePat  = `(?:` + monthPat + `\.?,?\s+\d{4}|\d{1,2}[/.]\d{4}|\d{4})`
)

var rangeRe = regexp.MustCompile(`(?i)(` + datePat + `)(?:\s*[-–—~]\s*|\s+(?:to|until)\s+)(` + datePat + `|present|current|now|ongoing)`)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

type dateRange struct {
	start   YearMonth
	end     YearMonth
	current bool
	pos     int
	endPos  int
}

// findDateRange locates the first employment date range in the line.
func findDateRange(line string) (dateRange, bool) {
	m := rangeRe.FindStringSubmatchIndex(line)
	if m == nil {
		return dateRange{}, false
	}
	start, ok := parseYearMonth(line[m[2]:m[3]])
	if !ok {
		return dateRange{}, false
	}
	dr := dateRange{start: start, pos: m[0], endPos: m[1]}
	endToken := strings.ToLower(strings.TrimSpace(line[m[4]:m[5]]))
	switch endToken {
	case "present", "current", "now", "ongoing":
		dr.current = true
	default:
		end, ok := parseYearMonth(endToken)
		if !ok {
			return dateRange{}, false
		}
		dr.end = end
	}
	return dr, true
}

// parseYearMonth reads "Jan 2020", "01/2020" or a bare "2019". A bare
// year leaves the month unset.
func parseYearMonth(token string) (YearMonth, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.Trim(token, ".,")

	if fields := strings.Fields(token); len(fields) == 2 {
		name := strings.Trim(fields[0], ".,")
		if len(name) > 3 {
			name = name[:3]
		}
		month, ok := monthNumbers[name]
		if !ok {
			return YearMonth{}, false
		}
		year, ok := parseYear(fields[1])
		if !ok {
			return YearMonth{}, false
		}
		return YearMonth{Year: year, Month: month}, true
	}

	if idx := strings.IndexAny(token, "/."); idx > 0 {
		month, err := strconv.Atoi(token[:idx])
		if err != nil || month < 1 || month > 12 {
			return YearMonth{}, false
		}
		year, ok := parseYear(token[idx+1:])
		if !ok {
			return YearMonth{}, false
		}
		return YearMonth{Year: year, Month: month}, true
	}

	year, ok := parseYear(token)
	if !ok {
		return YearMonth{}, false
	}
	return YearMonth{Year: year}, true
}

func parseYear(s string) (int, bool) {
	year, err := strconv.Atoi(strings.Trim(s, ".,"))
	if err != nil || year < 1950 || year > 2100 {
		return 0, false
	}
	return year, true
}

var yearRe = regexp.MustCompile(`\b(19[5-9]\d|20\d{2})\b`)

// findYear returns the first plausible four-digit year in the line.
func findYear(line string) int {
	m := yearRe.FindString(line)
	if m == "" {
		return 0
	}
	year, _ := strconv.Atoi(m)
	return year
}
