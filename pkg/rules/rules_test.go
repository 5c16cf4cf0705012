package rules

import (
	"testing"

	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRule(name string, from keys.Key, to Action) Rule {
	return Rule{Name: name, Enabled: true, From: keys.KeyInput(from), To: to}
}

func TestActionIsBlock(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		want   bool
	}{
		{"none", Block(), true},
		{"zero value", Action{}, true},
		{"single key", SingleKey(keys.KeyB), false},
		{"combination", Combination(keys.KeyControlLeft, keys.KeyC), false},
		{"empty combination", Combination(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.IsBlock())
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Block", Block().String())
	assert.Equal(t, "Key(KeyB)", SingleKey(keys.KeyB).String())
	assert.Equal(t, "Combination(ControlLeft+KeyC)", Combination(keys.KeyControlLeft, keys.KeyC).String())
}

func TestMatchFirstWins(t *testing.T) {
	table := NewTable([]Rule{
		keyRule("first", keys.KeyA, SingleKey(keys.KeyB)),
		keyRule("second", keys.KeyA, SingleKey(keys.KeyC)),
	})

	rule, idx, ok := table.Match(keys.KeyInput(keys.KeyA))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "first", rule.Name)
	assert.Equal(t, keys.KeyB, rule.To.Key)
}

func TestMatchSkipsDisabled(t *testing.T) {
	disabled := keyRule("off", keys.KeyA, SingleKey(keys.KeyB))
	disabled.Enabled = false

	table := NewTable([]Rule{
		disabled,
		keyRule("on", keys.KeyA, SingleKey(keys.KeyC)),
	})

	rule, idx, ok := table.Match(keys.KeyInput(keys.KeyA))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "on", rule.Name)

	// A table holding only disabled rules behaves as an empty one.
	only := NewTable([]Rule{disabled})
	_, _, ok = only.Match(keys.KeyInput(keys.KeyA))
	assert.False(t, ok)
	assert.Len(t, only.Enabled(), 0)
	assert.Equal(t, 1, only.Len())
}

func TestMatchSourceMustAgree(t *testing.T) {
	table := NewTable([]Rule{
		{Name: "mouse", Enabled: true, From: keys.ButtonInput(keys.ButtonSide), To: SingleKey(keys.KeyA)},
	})

	_, _, ok := table.Match(keys.ButtonInput(keys.ButtonSide))
	assert.True(t, ok)

	// Same numeric code reported as a key must not match a button rule.
	_, _, ok = table.Match(keys.Input{Source: keys.SourceKey, Code: uint16(keys.ButtonSide)})
	assert.False(t, ok)

	_, _, ok = table.Match(keys.ButtonInput(keys.ButtonExtra))
	assert.False(t, ok)
}

func TestZeroInputNeverMatches(t *testing.T) {
	table := NewTable([]Rule{
		{Name: "inert", Enabled: true, To: Block()},
	})

	_, idx, ok := table.Match(keys.Input{})
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestEmptyTable(t *testing.T) {
	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())

	table := NewTable(nil)
	_, _, ok := table.Match(keys.KeyInput(keys.KeyA))
	assert.False(t, ok)
	assert.Empty(t, table.Rules())
}

func TestTableIsImmutable(t *testing.T) {
	combo := []keys.Key{keys.KeyControlLeft, keys.KeyC}
	src := []Rule{
		keyRule("copy", keys.KeyA, Combination(combo...)),
	}
	src[0].To.Combination = combo

	table := NewTable(src)

	src[0].Name = "changed"
	combo[1] = keys.KeyV

	got := table.At(0)
	assert.Equal(t, "copy", got.Name)
	assert.Equal(t, []keys.Key{keys.KeyControlLeft, keys.KeyC}, got.To.Combination)

	// Mutating returned copies leaves the table intact.
	got.To.Combination[0] = keys.KeyAlt
	all := table.Rules()
	all[0].Enabled = false
	assert.Equal(t, keys.KeyControlLeft, table.At(0).To.Combination[0])
	assert.True(t, table.At(0).Enabled)
}

func TestMatchOrderWithMixedSources(t *testing.T) {
	table := NewTable([]Rule{
		{Name: "side", Enabled: true, From: keys.ButtonInput(keys.ButtonSide), To: Combination(keys.KeyControlLeft, keys.KeyC)},
		keyRule("caps", keys.KeyCapsLock, Block()),
		keyRule("a", keys.KeyA, SingleKey(keys.KeyB)),
	})

	tests := []struct {
		name    string
		in      keys.Input
		wantIdx int
		wantOK  bool
	}{
		{"button", keys.ButtonInput(keys.ButtonSide), 0, true},
		{"block", keys.KeyInput(keys.KeyCapsLock), 1, true},
		{"key", keys.KeyInput(keys.KeyA), 2, true},
		{"unmatched", keys.KeyInput(keys.KeyZ), -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, idx, ok := table.Match(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIdx, idx)
		})
	}
}
