package keyremap

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/arthur-debert/keyremap/pkg/config"
	"github.com/arthur-debert/keyremap/pkg/display"
	"github.com/arthur-debert/keyremap/pkg/errors"
	"github.com/arthur-debert/keyremap/pkg/keys"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newDumpCmd(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "dump",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := display.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			table, err := config.Compile(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			listing := display.NewListing(cfg.Name, cfg.Source, cfg.Trigger().String(), table)
			return display.RenderListing(out, listing, resolveFormat(f, out))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return display.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// resolveFormat picks a concrete format. Writers that are not files never
// get terminal styling.
func resolveFormat(f display.Format, w io.Writer) display.Format {
	if file, ok := w.(*os.File); ok {
		return display.Resolve(f, file)
	}
	if f == display.FormatAuto {
		return display.FormatText
	}
	return f
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Short:   MsgKeysShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			writeNames(out, MsgKeysHeader, keys.KeyNames())
			fmt.Fprintln(out)
			writeNames(out, MsgButtonsHeader, keys.ButtonNames())
		},
	}
}

func writeNames(w io.Writer, header string, names []string) {
	names = slices.Clone(names)
	slices.Sort(names)
	fmt.Fprintln(w, formatBold(header))
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", n)
	}
}

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !write {
				_, err := out.Write(config.Template())
				return err
			}
			path := g.resolveConfigPath()
			if !strings.HasSuffix(path, ".toml") {
				return errors.Newf(errors.ErrInvalidInput, MsgErrNotTOML, path)
			}
			if err := config.WriteTemplate(afero.NewOsFs(), path, force); err != nil {
				return err
			}
			fmt.Fprintf(out, MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}
