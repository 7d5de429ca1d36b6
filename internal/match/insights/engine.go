package insights

// Summarize builds the strengths and concerns for one evaluation.
// Categories scoring at or above 80 contribute a strength; categories
// below 50 contribute a concern; the middle band stays silent.
func Summarize(in Input) Summary {
	scores := map[category]float64{
		catTechnical:  in.Technical,
		catExperience: in.Experience,
		catEducation:  in.Education,
		catSoftSkills: in.SoftSkills,
	}
	var out Summary
	for _, cat := range categoryOrder {
		switch bandFor(scores[cat]) {
		case bandStrong:
			out.Strengths = append(out.Strengths, strengthFor(cat))
		case bandWeak:
			out.Concerns = append(out.Concerns, concernFor(cat, in))
		}
	}
	return out
}
