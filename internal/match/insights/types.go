// Package insights turns sub-scores into human-readable strengths and
// concerns. Output is deterministic: categories are visited in a fixed
// order and item lists are reported as given.
package insights

// Input carries the evaluated sub-scores plus the detail needed to make
// concerns concrete.
type Input struct {
	Technical  float64
	Experience float64
	Education  float64
	SoftSkills float64

	// MissingRequiredSkills and MissingSoftSkills name the required
	// items the resume did not cover, sorted.
	MissingRequiredSkills []string
	MissingSoftSkills     []string

	// MinExperienceYears is the stated lower bound, nil when none.
	MinExperienceYears *int

	// RequiredEducation is the required level name, "" when none.
	RequiredEducation string
}

// Summary is the generated narrative for one evaluation.
type Summary struct {
	Strengths []string
	Concerns  []string
}

type category int

const (
	catTechnical category = iota
	catExperience
	catEducation
	catSoftSkills
)

var categoryOrder = []category{catTechnical, catExperience, catEducation, catSoftSkills}

type band int

const (
	bandStrong band = iota
	bandMiddle
	bandWeak
)

const (
	strongFloor = 80
	weakCeiling = 50
)

func bandFor(score float64) band {
	switch {
	case score >= strongFloor:
		return bandStrong
	case score < weakCeiling:
		return bandWeak
	default:
		return bandMiddle
	}
}
