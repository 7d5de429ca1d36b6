package requirement

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"screening-backend/internal/vocab"
)

var (
	expRangeRe  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:-|–|—|to)\s*\d{1,2}\s*\+?\s*years?\b`)
	expSingleRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)
)

// preferredIndicators mark a skill mention as nice-to-have rather than
// required. Absent any indicator a mention counts as required.
var preferredIndicators = []string{
	"preferred",
	"nice to have",
	"bonus",
	"plus",
	"advantage",
	"would be great",
	"ideal",
	"desirable",
}

const contextWindow = 100

// Parse extracts a structured requirement Record from a job title and
// free-text requirements. Terms the vocabulary does not know are
// silently discarded.
func Parse(jobTitle, text string, v *vocab.Vocabulary) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrEmptyRequirements
	}

	rec := Record{
		JobTitle:           strings.TrimSpace(jobTitle),
		MinExperienceYears: minExperience(text),
		EducationLevel:     educationLevel(text, v),
	}
	rec.RequiredSkills, rec.PreferredSkills = classifySkills(text, v)
	rec.SoftSkills = softSkills(text, v)
	return rec, nil
}

// minExperience finds the highest stated lower bound, e.g. "3+ years",
// "2-4 years", "minimum 5 years". Ranges contribute their lower end.
func minExperience(text string) *int {
	best := -1
	for _, m := range expRangeRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	// Strip ranges so "2-4 years" does not also count as "4 years".
	rest := expRangeRe.ReplaceAllString(text, " ")
	for _, m := range expSingleRe.FindAllStringSubmatch(rest, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}

// educationLevel returns the highest degree level mentioned anywhere in
// the text.
func educationLevel(text string, v *vocab.Vocabulary) vocab.EducationLevel {
	best := vocab.LevelNone
	for _, line := range strings.Split(text, "\n") {
		if level := v.DegreeLevel(line); level > best {
			best = level
		}
	}
	return best
}

// classifySkills scans for known technical skills and splits them into
// required and preferred based on the wording around each mention. The
// two lists are disjoint; required wins.
func classifySkills(text string, v *vocab.Vocabulary) (required, preferred []string) {
	requiredSet := make(map[string]struct{})
	preferredSet := make(map[string]struct{})
	for _, term := range v.TechnicalScanTerms() {
		idx := vocab.TermIndex(text, term)
		if idx < 0 {
			continue
		}
		canonical := v.Canonical(term)
		if isPreferredContext(text, idx, len(term)) {
			preferredSet[canonical] = struct{}{}
		} else {
			requiredSet[canonical] = struct{}{}
		}
	}
	for skill := range requiredSet {
		delete(preferredSet, skill)
	}
	return sortedSet(requiredSet), sortedSet(preferredSet)
}

// isPreferredContext inspects the text around a skill mention for
// nice-to-have wording.
func isPreferredContext(text string, idx, termLen int) bool {
	lo := idx - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := idx + termLen + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	context := strings.ToLower(text[lo:hi])
	for _, indicator := range preferredIndicators {
		if strings.Contains(context, indicator) {
			return true
		}
	}
	return false
}

func softSkills(text string, v *vocab.Vocabulary) []string {
	set := make(map[string]struct{})
	for _, term := range v.SoftScanTerms() {
		if vocab.TermIndex(text, term) >= 0 {
			set[v.Canonical(term)] = struct{}{}
		}
	}
	return sortedSet(set)
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
