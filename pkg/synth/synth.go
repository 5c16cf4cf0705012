// Package synth injects synthetic key events through a platform injector.
//
// Injection failures are logged and counted but never returned: a failed
// synthetic key must not change how the physical event is handled.
package synth

import (
	"time"

	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/rs/zerolog"
)

// SettleDelay is the pause between pressing the last key of a combination
// and releasing the first one, so the receiving application observes every
// key held at once.
const SettleDelay = 20 * time.Millisecond

// Injector delivers one synthetic key transition to the OS.
type Injector interface {
	InjectKey(k keys.Key, press bool) error
}

// InjectorFunc adapts a function to Injector.
type InjectorFunc func(k keys.Key, press bool) error

func (f InjectorFunc) InjectKey(k keys.Key, press bool) error {
	return f(k, press)
}

// Report counts what a Fire call attempted.
type Report struct {
	Attempted int
	Failed    int
}

// OK reports whether every injection succeeded.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSleep replaces the function used to wait out the settle delay.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Synthesizer) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithLogger sets the logger used for injection failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = l
	}
}

// WithSettleDelay overrides SettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Synthesizer) {
		if d >= 0 {
			s.settle = d
		}
	}
}

// Synthesizer turns key and chord requests into injector calls.
type Synthesizer struct {
	inj    Injector
	sleep  func(time.Duration)
	settle time.Duration
	logger zerolog.Logger
}

// New returns a Synthesizer writing to inj.
func New(inj Injector, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		inj:    inj,
		sleep:  time.Sleep,
		settle: SettleDelay,
		logger: logging.GetLogger("synth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FireSingle injects one transition of k.
func (s *Synthesizer) FireSingle(k keys.Key, press bool) Report {
	var r Report
	s.inject(&r, k, press)
	return r
}

// FireCombination presses seq in order, waits the settle delay and then
// releases seq in reverse order. Every key is attempted even when an
// earlier injection failed. An empty seq injects nothing and does not wait.
func (s *Synthesizer) FireCombination(seq []keys.Key) Report {
	var r Report
	if len(seq) == 0 {
		return r
	}

	for _, k := range seq {
		s.inject(&r, k, true)
	}

	s.sleep(s.settle)

	for i := len(seq) - 1; i >= 0; i-- {
		s.inject(&r, seq[i], false)
	}

	if !r.OK() {
		s.logger.Warn().
			Int("attempted", r.Attempted).
			Int("failed", r.Failed).
			Msg("Combination injected with failures")
	}
	return r
}

func (s *Synthesizer) inject(r *Report, k keys.Key, press bool) {
	r.Attempted++
	if s.inj == nil {
		r.Failed++
		s.logger.Error().Str("key", k.String()).Msg("No injector configured")
		return
	}
	if err := s.inj.InjectKey(k, press); err != nil {
		r.Failed++
		s.logger.Error().
			Err(err).
			Str("key", k.String()).
			Bool("press", press).
			Msg("Failed to inject key")
		return
	}
	s.logger.Trace().Str("key", k.String()).Bool("press", press).Msg("Injected key")
}
