package resume

import (
	"strings"

	"screening-backend/internal/vocab"
)

// Parse extracts a structured Record from plain resume text. Fields that
// cannot be recognized are left empty; the only failure mode is text so
// sparse that nothing usable came out of it.
func Parse(text string, v *vocab.Vocabulary) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrInsufficientContent
	}

	header, secs := segment(text, v)

	rec := Record{
		Email: extractEmail(text),
		Phone: extractPhone(text),
	}
	nameLines := header
	if len(nameLines) == 0 {
		nameLines = firstLines(text, 10)
	}
	rec.Name = extractName(nameLines, rec.Email)

	rec.Experience = parseExperience(secs["experience"], v)
	rec.Education = parseEducation(secs["education"], v)
	rec.Skills = mergeSkills(parseSkillLines(secs["skills"], v), scanSkills(text, v))
	rec.Certifications = parseCertifications(secs["certifications"])
	rec.Languages = parseLanguages(secs["languages"], v)

	hasContact := rec.Name != "" || rec.Email != "" || rec.Phone != ""
	hasSkills := len(rec.Skills.Technical)+len(rec.Skills.Soft) > 0
	if !hasContact && len(rec.Experience) == 0 && !hasSkills {
		return Record{}, ErrInsufficientContent
	}

	populated := 0
	if len(rec.Experience) > 0 {
		populated++
	}
	if len(rec.Education) > 0 {
		populated++
	}
	if hasSkills {
		populated++
	}
	rec.LowConfidence = populated < 2

	return rec, nil
}

func firstLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
