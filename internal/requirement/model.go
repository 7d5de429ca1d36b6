// Package requirement parses free-text job requirements into the
// structured form the matching engine consumes.
package requirement

import "screening-backend/internal/vocab"

// Record is the structured form of one job's requirements. Preferred
// skills are disjoint from required ones; when a skill is mentioned both
// ways, required wins.
type Record struct {
	JobTitle        string
	RequiredSkills  []string
	PreferredSkills []string
	SoftSkills      []string

	// MinExperienceYears is the lower bound stated in the text, nil
	// when no experience requirement was recognized.
	MinExperienceYears *int

	EducationLevel vocab.EducationLevel
}
