package config

import (
	"fmt"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/arthur-debert/keyremap/pkg/rules"
)

// Trigger returns the configured combination trigger, defaulting to press.
func (c *Config) Trigger() remap.Trigger {
	t, err := remap.ParseTrigger(c.CombinationTrigger)
	if err != nil {
		return remap.TriggerPress
	}
	return t
}

// Compile validates cfg and builds its rule table. Every problem is
// reported, each tagged with the field it came from.
func Compile(cfg *Config) (*rules.Table, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")

	var (
		out  []rules.Rule
		errs []error
	)

	for i, m := range cfg.Mappings {
		r := rules.Rule{
			Name:    m.Name,
			Comment: m.Comment,
			Enabled: m.Enabled(),
		}

		switch {
		case m.From.Key != "":
			k, err := keys.ParseKey(m.From.Key)
			if err != nil {
				errs = append(errs, wrapField(err, mappingField(i, "from.key")))
				continue
			}
			r.From = keys.KeyInput(k)
		case m.From.Button != "":
			b, err := keys.ParseButton(m.From.Button)
			if err != nil {
				errs = append(errs, wrapField(err, mappingField(i, "from.button")))
				continue
			}
			r.From = keys.ButtonInput(b)
		default:
			logger.Warn().
				Str("rule", m.Name).
				Str("field", mappingField(i, "from")).
				Msg("Rule has no key or button and will never match")
		}

		switch {
		case m.To.Key != "":
			k, err := keys.ParseKey(m.To.Key)
			if err != nil {
				errs = append(errs, wrapField(err, mappingField(i, "to.key")))
				continue
			}
			r.To = rules.SingleKey(k)
		case m.To.HasCombination():
			seq := make([]keys.Key, 0, len(m.To.Combination))
			ok := true
			for j, def := range m.To.Combination {
				k, err := keys.ParseKey(def.Key)
				if err != nil {
					errs = append(errs, wrapField(err, fmt.Sprintf("%s[%d]", mappingField(i, "to.combination"), j)))
					ok = false
					continue
				}
				seq = append(seq, k)
			}
			if !ok {
				continue
			}
			if len(seq) == 0 {
				logger.Warn().
					Str("rule", m.Name).
					Str("field", mappingField(i, "to.combination")).
					Msg("Empty combination, input will be blocked")
			}
			r.To = rules.Combination(seq...)
		default:
			r.To = rules.Block()
		}

		out = append(out, r)
	}

	if err := errors.Join(errors.ErrConfigValid, "invalid configuration", errs...); err != nil {
		return nil, err
	}
	return rules.NewTable(out), nil
}

func wrapField(err error, field string) error {
	return errors.Wrapf(err, errors.ErrConfigValid, "%s", field).WithDetail("field", field)
}
