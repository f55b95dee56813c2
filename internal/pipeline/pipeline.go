package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// Pipeline applies its steps in order, feeding each step's output to the next
type Pipeline struct {
	name   string
	steps  []Step
	logger *mdwlog.Logger
}

// New creates a Pipeline. A nil logger means the default logger.
func New(name string, logger *mdwlog.Logger, steps ...Step) *Pipeline {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Pipeline{
		name:   name,
		steps:  append([]Step(nil), steps...),
		logger: logger.WithName("pipeline"),
	}
}

// Add appends a step
func (p *Pipeline) Add(s Step) *Pipeline {
	p.steps = append(p.steps, s)
	return p
}

// Name returns the pipeline name
func (p *Pipeline) Name() string { return p.name }

// Len returns the number of steps
func (p *Pipeline) Len() int { return len(p.steps) }

// StepNames returns the step names in execution order
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

func codeOf(err error) mdwerror.Code {
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code
	}
	return mdwerror.CodeInternal
}

// Run passes input through every step. On failure the partial result
// holds the audit log up to and including the failed step.
func (p *Pipeline) Run(ctx context.Context, input string) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:    uuid.New().String(),
		Pipeline: p.name,
		Input:    input,
		Output:   input,
		AuditLog: make([]AuditEntry, 0, len(p.steps)),
	}
	logger := p.logger.WithCorrelationID(result.RunID)

	for i, s := range p.steps {
		select {
		case <-ctx.Done():
			result.Duration = time.Since(start)
			return result, ctx.Err()
		default:
		}

		timer := logger.StartTimer("step "+s.Name()).
			WithField("pipeline", p.name).
			WithField("index", i)
		out, err := s.Apply(ctx, result.Output)

		entry := AuditEntry{
			Step:     s.Name(),
			Error:    err,
			InputLen: len(result.Output),
		}
		if err != nil {
			entry.Duration = timer.StopWithError(err)
			result.AuditLog = append(result.AuditLog, entry)
			result.Duration = time.Since(start)
			return result, errors.NewErrorBuilder(errors.ModulePipeline).
				Operation("Run").
				Messagef("step %s failed", s.Name()).
				Cause(err).
				Code(codeOf(err)).
				Detail("step", s.Name()).
				Detail("index", i).
				Build()
		}

		entry.Duration = timer.Stop()
		logger.Trace("Step output",
			mdwlog.Field("step", s.Name()),
			mdwlog.Field("output", out))
		entry.Modified = out != result.Output
		entry.OutputLen = len(out)
		result.AuditLog = append(result.AuditLog, entry)
		result.Modified = result.Modified || entry.Modified
		result.Output = out
	}

	result.Duration = time.Since(start)
	logger.Debug("Pipeline completed",
		mdwlog.Field("pipeline", p.name),
		mdwlog.Field("steps", len(p.steps)),
		mdwlog.Field("modified", result.Modified),
		mdwlog.Field("duration_ms", result.Duration.Milliseconds()))
	return result, nil
}
