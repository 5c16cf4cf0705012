package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/charmbracelet/glamour"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// RenderListing writes l to w in format f. FormatAuto is treated as text;
// callers resolve it against their output first.
func RenderListing(w io.Writer, l Listing, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return wrapRender(enc.Encode(l), f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return wrapRender(err, f)
		}
		return wrapRender(enc.Close(), f)
	case FormatTOML:
		return wrapRender(toml.NewEncoder(w).Encode(l), f)
	case FormatTerminal:
		out, err := renderMarkdown(Markdown(l))
		if err != nil {
			return wrapRender(err, f)
		}
		_, err = io.WriteString(w, out)
		return wrapRender(err, f)
	default:
		return wrapRender(renderText(w, l), f)
	}
}

func wrapRender(err error, f Format) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, errors.ErrInternal, "failed to render %s output", f)
}

func header(l Listing) []string {
	var lines []string
	if l.Name != "" {
		lines = append(lines, "name: "+l.Name)
	}
	if l.Source != "" {
		lines = append(lines, "source: "+l.Source)
	}
	lines = append(lines, "combination trigger: "+l.Trigger)
	return lines
}

func toCell(v RuleView) string {
	switch v.Action {
	case "key":
		return "Key(" + v.To[0] + ")"
	case "combination":
		return "Combination(" + strings.Join(v.To, "+") + ")"
	default:
		return "Block"
	}
}

func enabledCell(v RuleView) string {
	if v.Enabled {
		return "yes"
	}
	return "no"
}

func renderText(w io.Writer, l Listing) error {
	for _, line := range header(l) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(l.Rules) == 0 {
		_, err := fmt.Fprintln(w, "no rules")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tENABLED\tNAME\tFROM\tTO")
	for _, v := range l.Rules {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.Index, enabledCell(v), v.Name, v.From, toCell(v))
	}
	return tw.Flush()
}

// Markdown renders the listing as a markdown document with one table row
// per rule.
func Markdown(l Listing) string {
	var b strings.Builder
	title := l.Name
	if title == "" {
		title = "keyremap"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if l.Source != "" {
		fmt.Fprintf(&b, "Loaded from `%s`.\n\n", l.Source)
	}
	fmt.Fprintf(&b, "Combinations fire on **%s**.\n\n", l.Trigger)

	if len(l.Rules) == 0 {
		b.WriteString("No rules.\n")
		return b.String()
	}

	b.WriteString("| # | Enabled | Name | From | To |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, v := range l.Rules {
		fmt.Fprintf(&b, "| %d | %s | %s | `%s` | `%s` |\n",
			v.Index, enabledCell(v), escapeCell(v.Name), v.From, toCell(v))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
