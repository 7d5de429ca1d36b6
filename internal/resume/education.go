package resume

import (
	"regexp"
	"strings"

	"screening-backend/internal/vocab"
)

var institutionRe = regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy|polytechnic)\b`)

var fieldRe = regexp.MustCompile(`(?i)\bin\s+([a-z][a-z &/\-]+)`)

// parseEducation reads degree entries from the education section. A line
// mentioning a degree keyword starts an entry; the institution, field and
// graduation year are looked up on the same line and the two lines after
// it.
func parseEducation(lines []string, v *vocab.Vocabulary) []Education {
	var entries []Education
	seen := make(map[string]struct{})
	for i, line := range lines {
		level := v.DegreeLevel(line)
		if level == vocab.LevelNone {
			continue
		}
		entry := Education{Level: level, Degree: degreeFromLine(line)}
		end := i + 3
		if end > len(lines) {
			end = len(lines)
		}
		for _, window := range lines[i:end] {
			if entry.Institution == "" {
				entry.Institution = institutionFromLine(window)
			}
			if entry.Year == 0 {
				entry.Year = findYear(window)
			}
		}
		if m := fieldRe.FindStringSubmatch(line); m != nil {
			entry.Field = strings.TrimSpace(m[1])
		}
		key := strings.ToLower(entry.Degree + "|" + entry.Institution)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}
	return entries
}

// degreeFromLine keeps the degree phrase, cutting trailing
// comma-separated detail such as the institution or year.
func degreeFromLine(line string) string {
	degree, _, _ := strings.Cut(line, ",")
	degree, _, _ = strings.Cut(degree, "|")
	return strings.TrimSpace(degree)
}

// institutionFromLine returns the comma segment naming an institution.
func institutionFromLine(line string) string {
	for _, seg := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '|' || r == ';'
	}) {
		seg = strings.TrimSpace(seg)
		if institutionRe.MatchString(seg) {
			return seg
		}
	}
	return ""
}
