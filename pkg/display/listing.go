package display

import (
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/rules"
)

// RuleView is the serializable form of one rule.
type RuleView struct {
	Index   int      `json:"index" yaml:"index" toml:"index"`
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
	Enabled bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	From    string   `json:"from" yaml:"from" toml:"from"`
	Action  string   `json:"action" yaml:"action" toml:"action"`
	To      []string `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
}

// Listing is what dump renders: the document header plus every rule in
// priority order.
type Listing struct {
	Name    string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Source  string     `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Trigger string     `json:"combination_trigger" yaml:"combination_trigger" toml:"combination_trigger"`
	Rules   []RuleView `json:"rules" yaml:"rules" toml:"rules"`
}

// NewListing builds a listing for table.
func NewListing(name, source, trigger string, table *rules.Table) Listing {
	l := Listing{Name: name, Source: source, Trigger: trigger, Rules: []RuleView{}}
	for i, r := range table.Rules() {
		l.Rules = append(l.Rules, viewRule(i, r))
	}
	return l
}

func viewRule(i int, r rules.Rule) RuleView {
	v := RuleView{
		Index:   i,
		Name:    r.Name,
		Comment: r.Comment,
		Enabled: r.Enabled,
		From:    r.From.String(),
		Action:  r.To.Kind.String(),
	}

	switch {
	case r.To.IsBlock():
		v.Action = rules.ActionNone.String()
	case r.To.Kind == rules.ActionKey:
		v.To = []string{r.To.Key.String()}
	case r.To.Kind == rules.ActionCombination:
		v.To = keyNames(r.To.Combination)
	}
	return v
}

func keyNames(seq []keys.Key) []string {
	out := make([]string, len(seq))
	for i, k := range seq {
		out[i] = k.String()
	}
	return out
}
