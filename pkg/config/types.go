package config

// Config is a decoded mapping document.
type Config struct {
	Version            string    `koanf:"version"`
	Name               string    `koanf:"name"`
	Comment            string    `koanf:"comment"`
	CombinationTrigger string    `koanf:"combination_trigger"`
	Mappings           []Mapping `koanf:"key_mappings"`

	// Source is the file the document was read from, if any.
	Source string `koanf:"-"`
}

// Mapping is one rule as written in the document.
type Mapping struct {
	Name    string `koanf:"name"`
	Comment string `koanf:"comment"`
	// Enable defaults to true when absent.
	Enable *bool `koanf:"enable"`
	From   From  `koanf:"from"`
	To     To    `koanf:"to"`
}

// Enabled reports the effective enable flag.
func (m Mapping) Enabled() bool {
	return m.Enable == nil || *m.Enable
}

// From selects the physical input. At most one field may be set.
type From struct {
	Key    string `koanf:"key"`
	Button string `koanf:"button"`
}

// To is the replacement. At most one field may be set; neither means the
// input is blocked.
type To struct {
	Key         string   `koanf:"key"`
	Combination []KeyDef `koanf:"combination"`

	combinationSet bool
}

// HasCombination reports whether a combination was given, including an
// empty one.
func (t To) HasCombination() bool {
	return t.combinationSet || t.Combination != nil
}

// KeyDef is one key of a combination. In documents it is either a bare
// string or a table with a key field.
type KeyDef struct {
	Key string `koanf:"key"`
}
