// Package resume extracts a structured candidate record from plain resume
// text. Parsing is heuristic and loss-tolerant: fields that cannot be
// recognized come back empty rather than failing the document.
package resume

import (
	"time"

	"screening-backend/internal/vocab"
)

// YearMonth is a month-granular date. The zero value means unknown.
type YearMonth struct {
	Year  int
	Month int
}

// IsZero reports whether the date is unknown.
func (ym YearMonth) IsZero() bool { return ym.Year == 0 }

// index returns the date as a month count for interval arithmetic.
// A missing month is treated as January.
func (ym YearMonth) index() int {
	m := ym.Month
	if m == 0 {
		m = 1
	}
	return ym.Year*12 + m - 1
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.index() < other.index()
}

// Experience is one employment entry.
type Experience struct {
	Title        string
	Organization string
	Start        YearMonth
	End          YearMonth
	Current      bool
	Description  string
}

// Education is one degree entry.
type Education struct {
	Degree      string
	Institution string
	Field       string
	Year        int
	Level       vocab.EducationLevel
}

// Skills holds the candidate's skills split by kind.
type Skills struct {
	Technical []string
	Soft      []string
}

// Record is the structured form of one resume. Records are not mutated
// after Parse returns.
type Record struct {
	Name           string
	Email          string
	Phone          string
	Experience     []Experience
	Education      []Education
	Skills         Skills
	Certifications []string
	Languages      []string

	// LowConfidence marks records where fewer than two of experience,
	// education, and skills were recognized.
	LowConfidence bool
}

// TotalYears computes the candidate's experience span in years: latest
// end date minus earliest start date across all dated entries. Entries
// marked current end at now. Returns 0 when no entry carries a start
// date.
func (r Record) TotalYears(now time.Time) float64 {
	earliest, latest := 0, 0
	found := false
	for _, exp := range r.Experience {
		if exp.Start.IsZero() {
			continue
		}
		end := exp.End
		if exp.Current || end.IsZero() {
			end = YearMonth{Year: now.Year(), Month: int(now.Month())}
		}
		if end.Before(exp.Start) {
			continue
		}
		if !found || exp.Start.index() < earliest {
			earliest = exp.Start.index()
		}
		if !found || end.index() > latest {
			latest = end.index()
		}
		found = true
	}
	if !found {
		return 0
	}
	return float64(latest-earliest) / 12
}

// HighestEducation returns the highest degree level across entries.
func (r Record) HighestEducation() vocab.EducationLevel {
	best := vocab.LevelNone
	for _, edu := range r.Education {
		if edu.Level > best {
			best = edu.Level
		}
	}
	return best
}
