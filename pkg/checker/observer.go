package checker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/rule"
)

// Observer receives callbacks around every rule evaluation in a batch. It is
// the host's hook for logging and metrics; when no observer is installed the
// checker skips the calls entirely.
type Observer interface {
	// BeforeEvaluate fires before a rule's predicate runs.
	BeforeEvaluate(r rule.Descriptor)
	// AfterEvaluate fires after a rule's predicate returned; res is nil
	// when the rule passed.
	AfterEvaluate(r rule.Descriptor, res *rule.Result)
	// OnBroken fires after AfterEvaluate for broken rules only.
	OnBroken(r rule.Descriptor, res rule.Result)
}

type slogObserver struct {
	log     *slog.Logger
	batchID string
	mu      sync.Mutex
}

// NewSlogObserver returns an Observer that writes one structured record per
// hook. Every record carries a batch id generated at construction, so one
// observer instance should be created per batch check when correlation
// matters. The observer is safe for use with parallel batches. A nil logger
// falls back to slog.Default().
func NewSlogObserver(log *slog.Logger) Observer {
	if log == nil {
		log = slog.Default()
	}
	return &slogObserver{log: log, batchID: uuid.NewString()}
}

func (o *slogObserver) BeforeEvaluate(r rule.Descriptor) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.log.Debug("evaluating rule", o.attrs(r)...)
}

func (o *slogObserver) AfterEvaluate(r rule.Descriptor, res *rule.Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if res == nil {
		o.log.Debug("rule passed", o.attrs(r)...)
		return
	}
	o.log.Debug("rule broken", o.attrs(r)...)
}

func (o *slogObserver) OnBroken(r rule.Descriptor, res rule.Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.log.Log(context.Background(), severityLevel(res.Severity), "rule violation",
		append(o.attrs(r), slog.String("violation", res.Message))...)
}

func (o *slogObserver) attrs(r rule.Descriptor) []any {
	attrs := []any{
		slog.String("batch_id", o.batchID),
		slog.String("rule_code", r.Code()),
		slog.String("rule_name", r.Name()),
		slog.String("severity", r.Severity().String()),
	}
	if c := r.Category(); c != "" {
		attrs = append(attrs, slog.String("category", c))
	}
	return attrs
}

func severityLevel(s rule.Severity) slog.Level {
	switch s {
	case rule.SeverityError:
		return slog.LevelError
	case rule.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
