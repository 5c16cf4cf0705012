package keyremap

import (
	"embed"
	"fmt"

	"github.com/arthur-debert/keyremap/internal/version"
	"github.com/arthur-debert/keyremap/pkg/cobrax/topics"
	"github.com/arthur-debert/keyremap/pkg/config"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configPath string
	logFile    string
}

// resolveConfigPath returns --config, or the default location when unset.
func (g *globalOptions) resolveConfigPath() string {
	if g.configPath != "" {
		return g.configPath
	}
	return config.DefaultPath()
}

// loadConfig loads and validates the mapping file.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	path := g.resolveConfigPath()
	log.Info().Str("path", path).Msg(MsgLoadingConfig)
	return config.Load(path)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}
	run := newRunCmd(opts)

	rootCmd := &cobra.Command{
		Use:     "keyremap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, opts.logFile)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		// Without a subcommand keyremap remaps, like `keyremap run`.
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.RunE(cmd, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate(version.String())

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	pf.StringVar(&opts.logFile, "logfile", "", MsgFlagLogFile)
	pf.Lookup("logfile").NoOptDefVal = logging.DefaultLogFile()

	// The run flags also work on the bare root command.
	rootCmd.Flags().AddFlagSet(run.Flags())

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(run)
	rootCmd.AddCommand(newListenCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help replaces Cobra's default help command.
	topicOpts := topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.Initialize(rootCmd, topicsFS, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
