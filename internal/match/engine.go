package match

import (
	"math"
	"time"

	"screening-backend/internal/match/insights"
	"screening-backend/internal/requirement"
	"screening-backend/internal/resume"
	"screening-backend/internal/vocab"
)

// Engine scores resumes against requirements. It is stateless apart
// from its configuration and safe for concurrent use.
type Engine struct {
	cfg   Config
	vocab *vocab.Vocabulary
}

// NewEngine validates the configuration and returns an engine.
func NewEngine(cfg Config, v *vocab.Vocabulary) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if v == nil {
		v = vocab.Default()
	}
	return &Engine{cfg: cfg, vocab: v}, nil
}

// Evaluate scores one resume against one requirement. The same inputs
// and clock always produce the same result. Skill comparison is
// case-insensitive and synonym-aware on both sides.
func (e *Engine) Evaluate(res resume.Record, req requirement.Record) Result {
	resumeTech := e.canonicalSet(res.Skills.Technical)
	resumeSoft := e.canonicalSet(res.Skills.Soft)
	req.RequiredSkills = e.canonicalList(req.RequiredSkills)
	req.PreferredSkills = e.canonicalList(req.PreferredSkills)
	req.SoftSkills = e.canonicalList(req.SoftSkills)

	technical, missingRequired := e.technicalScore(resumeTech, req)
	experience := e.experienceScore(res, req)
	education := e.educationScore(res, req)
	soft, missingSoft := e.softScore(resumeSoft, req)

	w := e.cfg.Weights
	overall := round2((float64(w.Technical)*technical +
		float64(w.Experience)*experience +
		float64(w.Education)*education +
		float64(w.SoftSkills)*soft) / 100)

	requiredEducation := ""
	if req.EducationLevel != vocab.LevelNone {
		requiredEducation = req.EducationLevel.String()
	}
	summary := insights.Summarize(insights.Input{
		Technical:             technical,
		Experience:            experience,
		Education:             education,
		SoftSkills:            soft,
		MissingRequiredSkills: missingRequired,
		MissingSoftSkills:     missingSoft,
		MinExperienceYears:    req.MinExperienceYears,
		RequiredEducation:     requiredEducation,
	})

	return Result{
		CandidateRef:   candidateRef(res),
		RequirementRef: req.JobTitle,
		Technical:      technical,
		Experience:     experience,
		Education:      education,
		SoftSkills:     soft,
		Overall:        overall,
		Classification: e.classify(overall),
		Strengths:      summary.Strengths,
		Concerns:       summary.Concerns,
	}
}

// technicalScore weighs required coverage at 70% and preferred coverage
// at 30%. With no required skills stated the score is 100, unless the
// resume lists no technical skills at all.
func (e *Engine) technicalScore(resumeTech map[string]struct{}, req requirement.Record) (float64, []string) {
	matchedRequired, missing := matchSkills(resumeTech, req.RequiredSkills)
	matchedPreferred, _ := matchSkills(resumeTech, req.PreferredSkills)

	if len(req.RequiredSkills) == 0 {
		if len(resumeTech) == 0 {
			return 0, missing
		}
		return 100, missing
	}

	requiredPart := float64(matchedRequired) / float64(max(1, len(req.RequiredSkills)))
	preferredPart := float64(matchedPreferred) / float64(max(1, len(req.PreferredSkills)))
	return round2((0.7*requiredPart + 0.3*preferredPart) * 100), missing
}

// experienceScore is 100 at or above the stated minimum and scales
// linearly below it. No stated minimum scores 100.
func (e *Engine) experienceScore(res resume.Record, req requirement.Record) float64 {
	if req.MinExperienceYears == nil {
		return 100
	}
	min := *req.MinExperienceYears
	if min <= 0 {
		return 100
	}
	years := res.TotalYears(e.cfg.Clock())
	if years >= float64(min) {
		return 100
	}
	return round2(years / float64(min) * 100)
}

// educationScore is 100 when the degree level meets the requirement, 60
// one level short, and 20 further short or with no education listed.
func (e *Engine) educationScore(res resume.Record, req requirement.Record) float64 {
	if req.EducationLevel == vocab.LevelNone {
		return 100
	}
	if len(res.Education) == 0 {
		return 20
	}
	highest := res.HighestEducation()
	switch {
	case highest >= req.EducationLevel:
		return 100
	case req.EducationLevel-highest == 1:
		return 60
	default:
		return 20
	}
}

// softScore is the matched share of the required soft skills; an empty
// soft requirement scores 100.
func (e *Engine) softScore(resumeSoft map[string]struct{}, req requirement.Record) (float64, []string) {
	if len(req.SoftSkills) == 0 {
		return 100, nil
	}
	matched, missing := matchSkills(resumeSoft, req.SoftSkills)
	return round2(float64(matched) / float64(max(1, len(req.SoftSkills))) * 100), missing
}

func (e *Engine) classify(overall float64) Classification {
	switch {
	case overall >= e.cfg.Thresholds.Shortlist:
		return Shortlisted
	case overall >= e.cfg.Thresholds.Pending:
		return Pending
	default:
		return Rejected
	}
}

func (e *Engine) canonicalSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[e.vocab.Canonical(s)] = struct{}{}
	}
	return set
}

// canonicalList maps every skill to its canonical form, dropping
// duplicates while preserving first-occurrence order.
func (e *Engine) canonicalList(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		c := e.vocab.Canonical(s)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// matchSkills counts how many wanted skills the set covers and returns
// the missing ones in the wanted order.
func matchSkills(have map[string]struct{}, wanted []string) (int, []string) {
	matched := 0
	var missing []string
	for _, w := range wanted {
		if _, ok := have[w]; ok {
			matched++
		} else {
			missing = append(missing, w)
		}
	}
	return matched, missing
}

func candidateRef(res resume.Record) string {
	if res.Email != "" {
		return res.Email
	}
	return res.Name
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
