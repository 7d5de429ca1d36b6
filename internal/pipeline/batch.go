package pipeline

import "screening-backend/internal/match"

// Status tells whether a document produced a match result.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// FailureKind categorizes why a document could not be scored.
type FailureKind string

const (
	FailUnsupportedFormat   FailureKind = "unsupported_format"
	FailCorruptDocument     FailureKind = "corrupt_document"
	FailEmptyContent        FailureKind = "empty_content"
	FailInsufficientContent FailureKind = "insufficient_content"
	FailCanceled            FailureKind = "canceled"
	FailInternal            FailureKind = "internal"
)

// Failure records why a document failed. Messages are fixed per kind and
// never carry internal error detail.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Outcome is the result slot for one document. Exactly one of Match and
// Failure is set.
type Outcome struct {
	DocumentID string
	FileName   string
	Status     Status
	Match      *match.Result
	Failure    *Failure
}

// Batch aggregates a full run. Outcomes preserve input order.
type Batch struct {
	Total       int
	Shortlisted int
	Pending     int
	Rejected    int
	Failed      int
	Outcomes    []Outcome
}

func summarize(outcomes []Outcome) Batch {
	b := Batch{Total: len(outcomes), Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Status != StatusOK || o.Match == nil {
			b.Failed++
			continue
		}
		switch o.Match.Classification {
		case match.Shortlisted:
			b.Shortlisted++
		case match.Pending:
			b.Pending++
		default:
			b.Rejected++
		}
	}
	return b
}
