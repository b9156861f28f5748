package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/vigsig/internal/cipher"
	"github.com/idelchi/vigsig/internal/config"
)

// Processor runs the requests of one or more request files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// engine performs the cipher operations, without tracing
	engine *cipher.Engine

	logger *zap.Logger
}

// job is a single request together with where it came from.
type job struct {
	slot    int
	file    string
	index   int
	request config.Request
}

// outcome carries a finished result back to the collector goroutine.
type outcome struct {
	slot   int
	result Result
}

// NewProcessor creates a new Processor with the given configuration.
func NewProcessor(cfg *config.Config, logger *zap.Logger) *Processor {
	return &Processor{
		cfg:    cfg,
		engine: cipher.New(),
		logger: logger,
	}
}

// Process loads all requests from files and runs them concurrently.
// Rejected requests are recorded in the report. An error is returned only when a file
// cannot be loaded or the context is cancelled.
//
//nolint:funlen
func (p *Processor) Process(ctx context.Context, files []string) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()

	jobs, err := p.load(files)
	if err != nil {
		return nil, err
	}

	p.logger.Info("batch started",
		zap.String("run_id", runID),
		zap.Int("files", len(files)),
		zap.Int("requests", len(jobs)),
		zap.Int("parallel", p.cfg.Parallel),
	)

	results := make([]Result, len(jobs))
	outcomes := make(chan outcome, len(jobs))

	stats := Stats{Files: len(files)}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for out := range outcomes {
			results[out.slot] = out.result

			stats.add(out.result)

			if out.result.Error != "" {
				p.logger.Debug("request rejected",
					zap.String("file", out.result.File),
					zap.Int("index", out.result.Index),
					zap.String("status", string(out.result.Status)),
					zap.String("error", out.result.Error),
				)
			}
		}
	}()

	for _, j := range jobs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcomes <- outcome{slot: j.slot, result: p.run(j)}

			return nil
		})
	}

	err = group.Wait()

	close(outcomes)

	<-done // Wait for collector to finish

	if err != nil {
		return nil, fmt.Errorf("processing requests: %w", err)
	}

	stats.Duration = time.Since(start)

	p.logger.Info("batch finished",
		zap.String("run_id", runID),
		zap.Int("rejected", stats.Rejected()),
		zap.Duration("duration", stats.Duration),
	)

	return &Report{RunID: runID, Results: results, Stats: stats}, nil
}

// load reads every file and flattens the requests into jobs, in input order.
func (p *Processor) load(files []string) ([]job, error) {
	var jobs []job

	for _, file := range files {
		requests, err := LoadRequests(file)
		if err != nil {
			return nil, err
		}

		p.logger.Debug("loaded requests", zap.String("file", file), zap.Int("count", len(requests)))

		for i, request := range requests {
			jobs = append(jobs, job{slot: len(jobs), file: file, index: i, request: request})
		}
	}

	return jobs, nil
}

// run validates and executes a single request.
func (p *Processor) run(j job) Result {
	req := j.request

	result := Result{
		File:    j.file,
		Index:   j.index,
		Op:      req.Op,
		Input:   req.Text,
		Keyword: req.Keyword,
	}

	if err := req.Validate(); err != nil {
		result.Status = StatusMalformed
		result.Error = err.Error()

		return result
	}

	switch req.Op {
	case config.OpEncode:
		encoded, err := p.engine.Encode(req.Text, req.Keyword)
		if err != nil {
			return rejected(result, err)
		}

		result.Status = StatusEncoded
		result.Output = encoded.Ciphertext.String()
		result.Signature = encoded.Signature.String()
	case config.OpDecode:
		plaintext, err := p.engine.Decode(req.Text, req.Keyword, req.Signature)
		if err != nil {
			return rejected(result, err)
		}

		result.Status = StatusTrusted
		result.Output = plaintext.String()
	}

	return result
}

func rejected(result Result, err error) Result {
	switch {
	case errors.Is(err, cipher.ErrSignatureMismatch):
		result.Status = StatusUntrusted
	case errors.Is(err, cipher.ErrKeywordInvalid):
		result.Status = StatusInvalidKeyword
	default:
		result.Status = StatusMalformed
	}

	result.Error = err.Error()

	return result
}
