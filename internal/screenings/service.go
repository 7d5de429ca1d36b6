// Package screenings exposes batch resume screening over HTTP: a set of
// uploaded documents is extracted, structured, and scored against one
// parsed job requirement.
package screenings

import (
	"context"

	"go.uber.org/zap"

	"screening-backend/internal/extract"
	"screening-backend/internal/match"
	"screening-backend/internal/pipeline"
	"screening-backend/internal/requirement"
	"screening-backend/internal/vocab"
)

// Service wires the requirement parser and pipeline together for one
// screening request.
type Service struct {
	Vocab   *vocab.Vocabulary
	Match   match.Config
	Workers int
	Log     *zap.Logger
}

// Screen parses the requirements, optionally overrides the scoring
// weights, and runs the batch. Requirement and configuration errors
// surface before any document is processed.
func (s *Service) Screen(ctx context.Context, docs []extract.RawDocument, jobTitle, requirements string, weights *match.Weights) (pipeline.Batch, error) {
	req, err := requirement.Parse(jobTitle, requirements, s.Vocab)
	if err != nil {
		return pipeline.Batch{}, err
	}

	cfg := s.Match
	if weights != nil {
		cfg.Weights = *weights
	}
	p, err := pipeline.New(pipeline.Options{
		Workers:    s.Workers,
		Match:      cfg,
		Vocabulary: s.Vocab,
		Logger:     s.Log,
	})
	if err != nil {
		return pipeline.Batch{}, err
	}
	return p.Run(ctx, docs, req), nil
}
