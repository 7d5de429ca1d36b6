package resume

import (
	"strings"

	"screening-backend/internal/vocab"
)

// sectionNames lists the logical sections in document-agnostic order.
var sectionNames = []string{
	"summary",
	"experience",
	"education",
	"skills",
	"certifications",
	"languages",
}

// segment splits the text into the preamble before the first recognized
// heading (the header block) and one line list per logical section.
// Text after the last heading attaches to that heading's section.
func segment(text string, v *vocab.Vocabulary) (header []string, secs map[string][]string) {
	secs = make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if section, rest, ok := matchHeading(trimmed, v); ok {
			current = section
			if rest != "" {
				secs[current] = append(secs[current], rest)
			}
			continue
		}
		if current == "" {
			header = append(header, trimmed)
			continue
		}
		secs[current] = append(secs[current], trimmed)
	}
	return header, secs
}

// matchHeading reports whether the line is a section heading: either the
// heading phrase alone or "phrase: inline content". Inline content after
// the colon is returned as the section's first line.
func matchHeading(line string, v *vocab.Vocabulary) (section, rest string, ok bool) {
	lower := strings.ToLower(line)
	for _, name := range sectionNames {
		for _, phrase := range v.SectionHeadings(name) {
			if lower == phrase {
				return name, "", true
			}
			if strings.HasPrefix(lower, phrase+":") {
				return name, strings.TrimSpace(line[len(phrase)+1:]), true
			}
		}
	}
	return "", "", false
}
