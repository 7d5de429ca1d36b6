package screenings

import (
	"screening-backend/internal/match"
	"screening-backend/internal/pipeline"
)

type matchDTO struct {
	Technical      float64  `json:"technical"`
	Experience     float64  `json:"experience"`
	Education      float64  `json:"education"`
	SoftSkills     float64  `json:"soft_skills"`
	Overall        float64  `json:"overall"`
	Classification string   `json:"classification"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
}

type errorDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type resultDTO struct {
	DocumentID string    `json:"document_id"`
	FileName   string    `json:"file_name,omitempty"`
	Status     string    `json:"status"`
	Match      *matchDTO `json:"match,omitempty"`
	Error      *errorDTO `json:"error,omitempty"`
}

// BatchResponse is the wire shape of a finished batch, shared by the
// HTTP handler and the CLI output.
type BatchResponse struct {
	Total       int         `json:"total"`
	Shortlisted int         `json:"shortlisted"`
	Pending     int         `json:"pending"`
	Rejected    int         `json:"rejected"`
	Failed      int         `json:"failed"`
	Results     []resultDTO `json:"results"`
}

// weightsDTO is the optional per-request weight override.
type weightsDTO struct {
	Technical  int `json:"technical"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	SoftSkills int `json:"soft_skills"`
}

func (w weightsDTO) toWeights() match.Weights {
	return match.Weights{
		Technical:  w.Technical,
		Experience: w.Experience,
		Education:  w.Education,
		SoftSkills: w.SoftSkills,
	}
}

// ToBatchResponse flattens a batch into its wire shape.
func ToBatchResponse(b pipeline.Batch) BatchResponse {
	out := BatchResponse{
		Total:       b.Total,
		Shortlisted: b.Shortlisted,
		Pending:     b.Pending,
		Rejected:    b.Rejected,
		Failed:      b.Failed,
		Results:     make([]resultDTO, 0, len(b.Outcomes)),
	}
	for _, o := range b.Outcomes {
		dto := resultDTO{
			DocumentID: o.DocumentID,
			FileName:   o.FileName,
			Status:     string(o.Status),
		}
		if o.Match != nil {
			dto.Match = &matchDTO{
				Technical:      o.Match.Technical,
				Experience:     o.Match.Experience,
				Education:      o.Match.Education,
				SoftSkills:     o.Match.SoftSkills,
				Overall:        o.Match.Overall,
				Classification: string(o.Match.Classification),
				Strengths:      o.Match.Strengths,
				Concerns:       o.Match.Concerns,
			}
		}
		if o.Failure != nil {
			dto.Error = &errorDTO{
				Kind:    string(o.Failure.Kind),
				Message: o.Failure.Message,
			}
		}
		out.Results = append(out.Results, dto)
	}
	return out
}
