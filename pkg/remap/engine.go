// Package remap decides, per physical input event, whether the OS should see
// it and which synthetic events replace it.
//
// The engine keeps no state between events. Each Decide call looks the
// origin up in the rule table, fires the rule's output through the
// synthesizer and returns the outcome. Synthesis always happens before
// Decide returns.
package remap

import (
	"strings"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/arthur-debert/keyremap/pkg/rules"
	"github.com/arthur-debert/keyremap/pkg/synth"
	"github.com/rs/zerolog"
)

// Synthesizer is what the engine needs to emit synthetic keys.
// *synth.Synthesizer satisfies it.
type Synthesizer interface {
	FireSingle(k keys.Key, press bool) synth.Report
	FireCombination(seq []keys.Key) synth.Report
}

// Trigger selects which transition of the physical input fires a
// combination.
type Trigger uint8

const (
	// TriggerPress fires the chord when the input is pressed.
	TriggerPress Trigger = iota
	// TriggerRelease fires the chord when the input is released.
	TriggerRelease
)

func (t Trigger) String() string {
	if t == TriggerRelease {
		return "release"
	}
	return "press"
}

// ParseTrigger accepts "press" or "release", case-insensitively. The empty
// string selects TriggerPress.
func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "press":
		return TriggerPress, nil
	case "release":
		return TriggerRelease, nil
	}
	return TriggerPress, errors.Newf(errors.ErrInvalidInput, "unknown combination trigger %q", s).
		WithDetail("trigger", s)
}

// Option configures an Engine.
type Option func(*Engine)

// WithChordTrigger sets when combination rules fire.
func WithChordTrigger(t Trigger) Option {
	return func(e *Engine) {
		e.trigger = t
	}
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine applies a rule table to raw events.
type Engine struct {
	table   *rules.Table
	synth   Synthesizer
	trigger Trigger
	logger  zerolog.Logger
}

// New returns an engine over table emitting through s. A nil table behaves
// as an empty one.
func New(table *rules.Table, s Synthesizer, opts ...Option) *Engine {
	if table == nil {
		table = rules.NewTable(nil)
	}
	e := &Engine{
		table:  table,
		synth:  s,
		logger: logging.GetLogger("remap"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the rule table the engine decides with.
func (e *Engine) Table() *rules.Table {
	return e.table
}

// Trigger returns the configured combination trigger.
func (e *Engine) Trigger() Trigger {
	return e.trigger
}

// Decide handles one raw event. An event no enabled rule selects passes
// through untouched. A matched event is always suppressed; what gets
// synthesized depends on the rule's action and the event kind:
//
//	action       press              release
//	key          press key          release key
//	combination  fire whole chord   nothing
//	block        nothing            nothing
//
// With TriggerRelease the combination column is swapped.
func (e *Engine) Decide(ev RawEvent) Decision {
	d := Decision{Outcome: PassThrough, Event: ev, RuleIndex: -1}

	rule, idx, ok := e.table.Match(ev.Origin)
	if !ok {
		e.logger.Trace().
			Str("origin", ev.Origin.String()).
			Str("kind", ev.Kind.String()).
			Msg("No rule, passing through")
		return d
	}

	d.Outcome = Suppress
	d.Rule = rule.Name
	d.RuleIndex = idx

	switch {
	case rule.To.IsBlock():
		// swallow only
	case rule.To.Kind == rules.ActionKey:
		d.Actions = append(d.Actions, e.fireKey(rule.To.Key, ev.Kind))
	case rule.To.Kind == rules.ActionCombination:
		if e.firesChord(ev.Kind) {
			d.Actions = append(d.Actions, e.fireChord(rule.To.Combination))
		}
	}

	e.logger.Debug().
		Str("origin", ev.Origin.String()).
		Str("kind", ev.Kind.String()).
		Str("rule", rule.Name).
		Int("index", idx).
		Str("to", rule.To.String()).
		Msg("Rule matched")
	return d
}

func (e *Engine) firesChord(k Kind) bool {
	if e.trigger == TriggerRelease {
		return k == Release
	}
	return k == Press
}

func (e *Engine) fireKey(k keys.Key, kind Kind) Action {
	press := kind == Press
	if e.synth != nil {
		e.synth.FireSingle(k, press)
	}
	if press {
		return Action{Op: OpPress, Key: k}
	}
	return Action{Op: OpRelease, Key: k}
}

func (e *Engine) fireChord(seq []keys.Key) Action {
	chord := append([]keys.Key(nil), seq...)
	if e.synth != nil {
		e.synth.FireCombination(chord)
	}
	return Action{Op: OpChord, Keys: chord}
}
