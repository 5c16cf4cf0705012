package rules

import (
	"github.com/arthur-debert/keyremap/pkg/keys"
)

// Table is the ordered rule set. Order encodes priority. The zero value is
// an empty table.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules, keeping their order. The input is
// deep-copied; later changes to it do not affect the table.
func NewTable(rules []Rule) *Table {
	t := &Table{rules: make([]Rule, len(rules))}
	for i, r := range rules {
		t.rules[i] = r.clone()
	}
	return t
}

// Len returns the number of rules, enabled or not.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// At returns a copy of the rule at index i.
func (t *Table) At(i int) Rule {
	return t.rules[i].clone()
}

// Rules returns a copy of every rule in table order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, t.Len())
	for i := range out {
		out[i] = t.rules[i].clone()
	}
	return out
}

// Enabled returns copies of the enabled rules in table order.
func (t *Table) Enabled() []Rule {
	var out []Rule
	for i := 0; i < t.Len(); i++ {
		if t.rules[i].Enabled {
			out = append(out, t.rules[i].clone())
		}
	}
	return out
}

// Match returns the first enabled rule selecting in, together with its
// index in the table. Disabled rules are skipped and never influence which
// rule wins.
func (t *Table) Match(in keys.Input) (Rule, int, bool) {
	if in.IsZero() {
		return Rule{}, -1, false
	}
	for i := 0; i < t.Len(); i++ {
		if t.rules[i].Matches(in) {
			return t.rules[i].clone(), i, true
		}
	}
	return Rule{}, -1, false
}
