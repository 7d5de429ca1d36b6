package match

// Classification buckets a candidate by overall score.
type Classification string

const (
	Shortlisted Classification = "shortlisted"
	Pending     Classification = "pending"
	Rejected    Classification = "rejected"
)

// Result is the outcome of evaluating one resume against one
// requirement. Scores are 0-100 with two decimal places. Results are
// not mutated after Evaluate returns.
type Result struct {
	CandidateRef   string
	RequirementRef string

	Technical  float64
	Experience float64
	Education  float64
	SoftSkills float64
	Overall    float64

	Classification Classification
	Strengths      []string
	Concerns       []string
}
