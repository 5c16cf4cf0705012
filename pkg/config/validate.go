package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "keyremap.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// validateSchema checks the merged koanf tree against the embedded schema.
// The tree goes through encoding/json first so the validator only sees JSON
// types.
func validateSchema(raw map[string]interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "embedded schema is invalid")
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "configuration is not representable as JSON")
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "configuration is not representable as JSON")
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return errors.Wrap(err, errors.ErrConfigValid, "schema validation failed")
	}

	field, msg := deepestError(ve)
	return errors.Wrapf(err, errors.ErrConfigValid, "%s: %s", field, msg).
		WithDetail("field", field)
}

// deepestError picks the failure reported at the most specific instance
// location.
func deepestError(ve *jsonschema.ValidationError) (field, msg string) {
	loc, msg := ve.InstanceLocation, ve.Message
	for _, e := range ve.BasicOutput().Errors {
		if e.Error == "" {
			continue
		}
		if len(e.InstanceLocation) > len(loc) || (msg == "" && e.InstanceLocation == loc) {
			loc, msg = e.InstanceLocation, e.Error
		}
	}
	return pointerToField(loc), msg
}

// pointerToField renders "/key_mappings/0/from" as "key_mappings[0].from".
func pointerToField(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "document"
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		part = strings.NewReplacer("~1", "/", "~0", "~").Replace(part)
		if _, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%s]", part)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// SupportedVersions lists the document major versions this build reads.
var SupportedVersions = []int{0, 1}

func invalid(field, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, "%s: %s", field, fmt.Sprintf(format, args...)).
		WithDetail("field", field)
}

func mappingField(i int, rest string) string {
	f := fmt.Sprintf("key_mappings[%d]", i)
	if rest != "" {
		f += "." + rest
	}
	return f
}

// Validate checks what the schema cannot: the version, the trigger, rule
// names and mutually exclusive fields. Key names are resolved by Compile.
func Validate(cfg *Config) error {
	var errs []error

	if err := checkVersion(cfg.Version); err != nil {
		errs = append(errs, err)
	}
	if _, err := remap.ParseTrigger(cfg.CombinationTrigger); err != nil {
		errs = append(errs, invalid("combination_trigger", "must be press or release, got %q", cfg.CombinationTrigger))
	}

	for i, m := range cfg.Mappings {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, invalid(mappingField(i, "name"), "must not be empty"))
		}
		if m.From.Key != "" && m.From.Button != "" {
			errs = append(errs, invalid(mappingField(i, "from"), "key and button are mutually exclusive"))
		}
		if m.To.Key != "" && m.To.HasCombination() {
			errs = append(errs, invalid(mappingField(i, "to"), "key and combination are mutually exclusive"))
		}
	}

	return errors.Join(errors.ErrConfigValid, "invalid configuration", errs...)
}

// checkVersion accepts "1", "1.2" or "0.9" style versions whose major
// number is supported. An empty version means the current one.
func checkVersion(v string) error {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return nil
	}
	majorStr, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return invalid("version", "%q is not a version number", v)
	}
	if !slices.Contains(SupportedVersions, major) {
		return invalid("version", "unsupported version %d (supported: %v)", major, SupportedVersions)
	}
	return nil
}
