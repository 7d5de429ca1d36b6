package insights

import (
	"fmt"
	"strings"
)

func strengthFor(cat category) string {
	switch cat {
	case catTechnical:
		return "strong coverage of the required technical skills"
	case catExperience:
		return "experience comfortably meets the stated requirement"
	case catEducation:
		return "education meets or exceeds the required level"
	default:
		return "broad coverage of the desired soft skills"
	}
}

func concernFor(cat category, in Input) string {
	switch cat {
	case catTechnical:
		if len(in.MissingRequiredSkills) > 0 {
			return "missing required skills: " + strings.Join(in.MissingRequiredSkills, ", ")
		}
		return "limited overlap with the required technical skills"
	case catExperience:
		if in.MinExperienceYears != nil {
			return fmt.Sprintf("fewer than the required %d years of experience", *in.MinExperienceYears)
		}
		return "limited verifiable experience"
	case catEducation:
		if in.RequiredEducation != "" {
			return fmt.Sprintf("education falls below the required %s level", in.RequiredEducation)
		}
		return "no education information found"
	default:
		if len(in.MissingSoftSkills) > 0 {
			return "missing desired soft skills: " + strings.Join(in.MissingSoftSkills, ", ")
		}
		return "little evidence of the desired soft skills"
	}
}
