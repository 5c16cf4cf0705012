// Package host connects an OS input hook to the remap engine.
//
// A Hook delivers raw events to a Handler on a single goroutine and applies
// the returned Outcome: pass-through events are forwarded to the rest of the
// input pipeline, suppressed ones are dropped. The Runner wires a Hook to a
// remap.Engine; Listen prints events without remapping anything.
package host

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/rs/zerolog"
)

// Handler decides the fate of one raw event. Hooks call it from one
// goroutine only.
type Handler func(remap.RawEvent) remap.Outcome

// Hook is an installed OS-level input interception.
type Hook interface {
	// Run delivers events to h until ctx is done or the hook fails. It
	// returns nil on cancellation.
	Run(ctx context.Context, h Handler) error
	Close() error
}

// Decider is the engine side of a Runner. *remap.Engine satisfies it.
type Decider interface {
	Decide(ev remap.RawEvent) remap.Decision
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithObserver registers fn to receive every decision after it is made.
func WithObserver(fn func(remap.Decision)) RunnerOption {
	return func(r *Runner) {
		r.observe = fn
	}
}

// WithRunnerLogger sets the runner logger.
func WithRunnerLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// Runner feeds hook events through an engine.
type Runner struct {
	hook    Hook
	engine  Decider
	observe func(remap.Decision)
	logger  zerolog.Logger

	decided    int
	suppressed int
}

// NewRunner returns a runner for hook and engine.
func NewRunner(hook Hook, engine Decider, opts ...RunnerOption) *Runner {
	r := &Runner{
		hook:   hook,
		engine: engine,
		logger: logging.GetLogger("host"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until ctx is done or the hook fails.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info().Msg("Remapping started")
	err := r.hook.Run(ctx, r.handle)
	r.logger.Info().
		Int("events", r.decided).
		Int("suppressed", r.suppressed).
		Msg("Remapping stopped")
	return err
}

// Stats returns how many events were decided and how many of them were
// suppressed. Only meaningful after Run returns.
func (r *Runner) Stats() (decided, suppressed int) {
	return r.decided, r.suppressed
}

func (r *Runner) handle(ev remap.RawEvent) remap.Outcome {
	d := r.engine.Decide(ev)
	r.decided++
	if d.Outcome == remap.Suppress {
		r.suppressed++
	}

	r.logger.Debug().
		Str("origin", ev.Origin.String()).
		Str("kind", ev.Kind.String()).
		Str("outcome", d.Outcome.String()).
		Str("rule", d.Rule).
		Msg("Event")

	if r.observe != nil {
		r.observe(d)
	}
	return d.Outcome
}

// ListenOption configures Listen.
type ListenOption func(*listenConfig)

type listenConfig struct {
	format func(remap.RawEvent) string
}

// WithFormatter replaces the default one-line event rendering.
func WithFormatter(fn func(remap.RawEvent) string) ListenOption {
	return func(c *listenConfig) {
		if fn != nil {
			c.format = fn
		}
	}
}

// FormatEvent is the default Listen line: kind then origin.
func FormatEvent(ev remap.RawEvent) string {
	return fmt.Sprintf("%-7s %s", ev.Kind, ev.Origin)
}

// Listen writes one line per event to w and passes every event through. It
// is used to discover key and button names for a configuration.
func Listen(ctx context.Context, hook Hook, w io.Writer, opts ...ListenOption) error {
	cfg := listenConfig{format: FormatEvent}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := logging.GetLogger("host.listen")
	return hook.Run(ctx, func(ev remap.RawEvent) remap.Outcome {
		if _, err := fmt.Fprintln(w, cfg.format(ev)); err != nil {
			logger.Warn().Err(err).Msg("Failed to write event")
		}
		return remap.PassThrough
	})
}
