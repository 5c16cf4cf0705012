package remap

import (
	"github.com/arthur-debert/keyremap/pkg/keys"
)

// Kind is the transition of a raw input event.
type Kind uint8

const (
	// Press covers the initial press and OS autorepeat.
	Press Kind = iota
	Release
)

func (k Kind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// RawEvent is one physical key or button transition as seen by the hook.
type RawEvent struct {
	Kind   Kind
	Origin keys.Input
}

// Outcome is the fate of the physical event.
type Outcome uint8

const (
	// PassThrough lets the OS deliver the event unchanged.
	PassThrough Outcome = iota
	// Suppress swallows the event.
	Suppress
)

func (o Outcome) String() string {
	if o == Suppress {
		return "suppress"
	}
	return "pass"
}

// Op is a synthetic action taken while deciding an event.
type Op uint8

const (
	OpPress Op = iota
	OpRelease
	OpChord
)

func (o Op) String() string {
	switch o {
	case OpRelease:
		return "release"
	case OpChord:
		return "chord"
	default:
		return "press"
	}
}

// Action records one synthesis request made by Decide.
type Action struct {
	Op Op
	// Key is set for OpPress and OpRelease.
	Key keys.Key
	// Keys is the chord for OpChord.
	Keys []keys.Key
}

// Decision is the result of deciding one raw event.
type Decision struct {
	Outcome Outcome
	Event   RawEvent
	// Rule and RuleIndex identify the matching rule. RuleIndex is -1 when
	// nothing matched.
	Rule      string
	RuleIndex int
	// Actions lists the synthesis requests, in order.
	Actions []Action
}

// Matched reports whether a rule selected the event.
func (d Decision) Matched() bool {
	return d.RuleIndex >= 0
}
