package resume

import (
	"sort"
	"strings"

	"screening-backend/internal/vocab"
)

// parseSkillLines turns the skills section into classified skill sets.
// Terms the vocabulary does not know default to technical; that keeps
// niche tools a resume lists from disappearing.
func parseSkillLines(lines []string, v *vocab.Vocabulary) Skills {
	tech := make(map[string]struct{})
	soft := make(map[string]struct{})
	for _, line := range lines {
		line = stripBullet(line)
		// "Programming Languages: Go, Python" keeps only the list.
		if label, rest, found := strings.Cut(line, ":"); found && len(strings.Fields(label)) <= 4 {
			line = rest
		}
		for _, term := range splitTerms(line) {
			canonical := v.Canonical(term)
			if canonical == "" || len(strings.Fields(canonical)) > 4 {
				continue
			}
			switch {
			case v.IsSoft(canonical):
				soft[canonical] = struct{}{}
			default:
				tech[canonical] = struct{}{}
			}
		}
	}
	return Skills{Technical: sortedSet(tech), Soft: sortedSet(soft)}
}

// scanSkills sweeps the full text for known skill terms. It catches
// skills mentioned in prose when the resume has no skills section.
func scanSkills(text string, v *vocab.Vocabulary) Skills {
	tech := make(map[string]struct{})
	for _, term := range v.TechnicalScanTerms() {
		if vocab.TermIndex(text, term) >= 0 {
			tech[v.Canonical(term)] = struct{}{}
		}
	}
	soft := make(map[string]struct{})
	for _, term := range v.SoftScanTerms() {
		if vocab.TermIndex(text, term) >= 0 {
			soft[v.Canonical(term)] = struct{}{}
		}
	}
	return Skills{Technical: sortedSet(tech), Soft: sortedSet(soft)}
}

func mergeSkills(a, b Skills) Skills {
	return Skills{
		Technical: mergeSorted(a.Technical, b.Technical),
		Soft:      mergeSorted(a.Soft, b.Soft),
	}
}

func parseLanguages(lines []string, v *vocab.Vocabulary) []string {
	set := make(map[string]struct{})
	for _, line := range lines {
		line = stripBullet(line)
		for _, term := range splitTerms(line) {
			// Drop proficiency tails like "English (fluent)".
			if base, _, found := strings.Cut(term, "("); found {
				term = base
			}
			term = strings.TrimSpace(strings.ToLower(term))
			if v.IsLanguage(term) {
				set[term] = struct{}{}
			}
		}
	}
	return sortedSet(set)
}

func parseCertifications(lines []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, line := range lines {
		line = stripBullet(line)
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, line)
	}
	return out
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•*·"))
}

func splitTerms(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func sortedSet(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func mergeSorted(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	set := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}
	return sortedSet(set)
}
