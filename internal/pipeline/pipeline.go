// Package pipeline runs batches of resume documents through extraction,
// structuring, and matching with bounded concurrency. One document's
// failure never aborts the rest of the batch.
package pipeline

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"screening-backend/internal/extract"
	"screening-backend/internal/match"
	"screening-backend/internal/requirement"
	"screening-backend/internal/resume"
	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/vocab"
)

// Options configure a Pipeline.
type Options struct {
	// Workers bounds concurrent document processing. Zero means one
	// worker per available CPU.
	Workers int

	Match      match.Config
	Vocabulary *vocab.Vocabulary
	Logger     *zap.Logger
}

// Pipeline is immutable after New and safe for concurrent batches.
type Pipeline struct {
	engine  *match.Engine
	vocab   *vocab.Vocabulary
	workers int
	log     *zap.Logger
}

// New validates the match configuration up front; an invalid weight or
// threshold set fails here, before any document is touched.
func New(opts Options) (*Pipeline, error) {
	v := opts.Vocabulary
	if v == nil {
		v = vocab.Default()
	}
	engine, err := match.NewEngine(opts.Match, v)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{engine: engine, vocab: v, workers: workers, log: log}, nil
}

// Run processes the documents against one requirement. Cancellation is
// cooperative: after ctx is done no new document starts, in-flight
// documents finish, and everything unstarted records a canceled failure.
func (p *Pipeline) Run(ctx context.Context, docs []extract.RawDocument, req requirement.Record) Batch {
	started := time.Now()
	outcomes := make([]Outcome, len(docs))
	ids := make([]string, len(docs))
	for i := range docs {
		ids[i] = uuid.NewString()
	}

	jobs := make(chan int)
	go func() {
		defer close(jobs)
		for i := range docs {
			select {
			case <-ctx.Done():
				return
			default:
			}
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	workers := p.workers
	if workers > len(docs) {
		workers = len(docs)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = p.process(docs[i], req, ids[i])
			}
		}()
	}
	wg.Wait()

	for i := range outcomes {
		if outcomes[i].Status == "" {
			metrics.IncDocumentFailed()
			outcomes[i] = Outcome{
				DocumentID: ids[i],
				FileName:   docs[i].FileName,
				Status:     StatusFailed,
				Failure:    &Failure{Kind: FailCanceled, Message: "batch canceled before this document was processed"},
			}
		}
	}

	batch := summarize(outcomes)
	metrics.IncBatch()
	metrics.ObserveBatchDurationMs(float64(time.Since(started).Milliseconds()))
	p.log.Info("batch complete",
		zap.Int("total", batch.Total),
		zap.Int("shortlisted", batch.Shortlisted),
		zap.Int("pending", batch.Pending),
		zap.Int("rejected", batch.Rejected),
		zap.Int("failed", batch.Failed),
	)
	return batch
}

func (p *Pipeline) process(doc extract.RawDocument, req requirement.Record, id string) (out Outcome) {
	out = Outcome{DocumentID: id, FileName: doc.FileName}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("document processing panicked", zap.String("file", doc.FileName), zap.Any("panic", r))
			out.Status = StatusFailed
			out.Failure = &Failure{Kind: FailInternal, Message: "internal processing error"}
		}
		if out.Status == StatusOK {
			metrics.IncDocumentProcessed()
		} else {
			metrics.IncDocumentFailed()
		}
	}()

	text, err := extract.Extract(doc)
	if err != nil {
		p.log.Warn("extraction failed", zap.String("file", doc.FileName), zap.Error(err))
		out.Status = StatusFailed
		out.Failure = failureFor(err)
		return out
	}
	rec, err := resume.Parse(text, p.vocab)
	if err != nil {
		p.log.Warn("resume parsing failed", zap.String("file", doc.FileName), zap.Error(err))
		out.Status = StatusFailed
		out.Failure = failureFor(err)
		return out
	}

	result := p.engine.Evaluate(rec, req)
	out.Status = StatusOK
	out.Match = &result
	p.log.Debug("document scored",
		zap.String("file", doc.FileName),
		zap.Float64("overall", result.Overall),
		zap.String("classification", string(result.Classification)),
	)
	return out
}

func failureFor(err error) *Failure {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return &Failure{Kind: FailUnsupportedFormat, Message: "unsupported document format"}
	case errors.Is(err, extract.ErrCorruptDocument):
		return &Failure{Kind: FailCorruptDocument, Message: "document could not be read"}
	case errors.Is(err, extract.ErrEmptyContent):
		return &Failure{Kind: FailEmptyContent, Message: "document contains no text"}
	case errors.Is(err, resume.ErrInsufficientContent):
		return &Failure{Kind: FailInsufficientContent, Message: "document does not look like a resume"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Failure{Kind: FailCanceled, Message: "batch canceled before this document was processed"}
	default:
		return &Failure{Kind: FailInternal, Message: "internal processing error"}
	}
}
