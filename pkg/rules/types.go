package rules

import (
	"strings"

	"github.com/arthur-debert/keyremap/pkg/keys"
)

// ActionKind selects what a matched rule emits.
type ActionKind uint8

const (
	// ActionNone blocks the input and emits nothing.
	ActionNone ActionKind = iota
	// ActionKey replaces the input with one synthetic key.
	ActionKey
	// ActionCombination replaces the input with an ordered chord.
	ActionCombination
)

func (k ActionKind) String() string {
	switch k {
	case ActionKey:
		return "key"
	case ActionCombination:
		return "combination"
	default:
		return "none"
	}
}

// Action is the output side of a rule.
type Action struct {
	Kind ActionKind
	// Key is set for ActionKey.
	Key keys.Key
	// Combination is the press order for ActionCombination.
	Combination []keys.Key
}

// Block returns an action that swallows the input.
func Block() Action {
	return Action{Kind: ActionNone}
}

// SingleKey returns an action that emits k.
func SingleKey(k keys.Key) Action {
	return Action{Kind: ActionKey, Key: k}
}

// Combination returns an action that emits seq as a chord. The slice is
// copied.
func Combination(seq ...keys.Key) Action {
	return Action{Kind: ActionCombination, Combination: append([]keys.Key(nil), seq...)}
}

// IsBlock reports whether the action emits nothing. An empty combination
// counts as a block.
func (a Action) IsBlock() bool {
	switch a.Kind {
	case ActionKey:
		return false
	case ActionCombination:
		return len(a.Combination) == 0
	default:
		return true
	}
}

func (a Action) clone() Action {
	if a.Combination != nil {
		a.Combination = append([]keys.Key(nil), a.Combination...)
	}
	return a
}

func (a Action) String() string {
	switch a.Kind {
	case ActionKey:
		return "Key(" + a.Key.String() + ")"
	case ActionCombination:
		names := make([]string, len(a.Combination))
		for i, k := range a.Combination {
			names[i] = k.String()
		}
		return "Combination(" + strings.Join(names, "+") + ")"
	default:
		return "Block"
	}
}

// Rule maps one physical input to an action.
type Rule struct {
	// Name and Comment are diagnostic only.
	Name    string
	Comment string
	Enabled bool
	// From is the input the rule reacts to. A zero Input never matches.
	From keys.Input
	To   Action
}

// Matches reports whether the rule is enabled and selects in.
func (r Rule) Matches(in keys.Input) bool {
	return r.Enabled && !r.From.IsZero() && r.From == in
}

func (r Rule) clone() Rule {
	r.To = r.To.clone()
	return r
}
