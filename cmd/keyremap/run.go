package keyremap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/keyremap/pkg/config"
	"github.com/arthur-debert/keyremap/pkg/display"
	"github.com/arthur-debert/keyremap/pkg/host"
	"github.com/arthur-debert/keyremap/pkg/host/evdev"
	"github.com/arthur-debert/keyremap/pkg/instance"
	"github.com/arthur-debert/keyremap/pkg/logging"
	"github.com/arthur-debert/keyremap/pkg/remap"
	"github.com/arthur-debert/keyremap/pkg/synth"
	"github.com/spf13/cobra"
)

// lockName names the single-instance lock file.
const lockName = "keyremap"

type runOptions struct {
	devices []string
	noMice  bool
	show    bool
}

func newRunCmd(g *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, g, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.devices, "device", "d", nil, MsgFlagDevice)
	cmd.Flags().BoolVar(&opts.noMice, "no-mice", false, MsgFlagNoMice)
	cmd.Flags().BoolVar(&opts.show, "show", false, MsgFlagShow)

	return cmd
}

func runRemap(cmd *cobra.Command, g *globalOptions, opts *runOptions) error {
	logger := logging.GetLogger("cmd.run")

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	table, err := config.Compile(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, MsgListeningHeader)
	for _, m := range cfg.Mappings {
		if m.Enabled() {
			fmt.Fprintf(out, MsgMappingItem+"\n", m.Name)
		}
	}

	lock, err := instance.Acquire(lockName)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	dev, err := evdev.NewDevice(evdev.DeviceName)
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	hook, err := evdev.Open(evdev.Config{
		Paths: opts.devices,
		Mice:  !opts.noMice,
		Grab:  true,
	}, dev)
	if err != nil {
		return err
	}
	defer func() { _ = hook.Close() }()
	logger.Info().Strs("devices", hook.Devices()).Msg("Input devices grabbed")

	engine := remap.New(table, synth.New(dev), remap.WithChordTrigger(cfg.Trigger()))

	var runnerOpts []host.RunnerOption
	if opts.show {
		styled := display.Resolve(display.FormatAuto, os.Stdout) == display.FormatTerminal
		runnerOpts = append(runnerOpts, host.WithObserver(func(d remap.Decision) {
			fmt.Fprintln(out, display.DecisionLine(d, styled))
		}))
	}
	runner := host.NewRunner(hook, engine, runnerOpts...)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, MsgPressCtrlC)
	return runner.Run(ctx)
}

func newListenCmd(g *globalOptions) *cobra.Command {
	var (
		devices []string
		noMice  bool
	)

	cmd := &cobra.Command{
		Use:     "listen",
		Short:   MsgListenShort,
		Long:    MsgListenLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hook, err := evdev.Open(evdev.Config{Paths: devices, Mice: !noMice}, nil)
			if err != nil {
				return err
			}
			defer func() { _ = hook.Close() }()

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, MsgListenHint)
			styled := display.Resolve(display.FormatAuto, os.Stdout) == display.FormatTerminal
			return host.Listen(ctx, hook, out, host.WithFormatter(func(ev remap.RawEvent) string {
				return display.EventLine(ev, styled)
			}))
		},
	}

	cmd.Flags().StringArrayVarP(&devices, "device", "d", nil, MsgFlagDevice)
	cmd.Flags().BoolVar(&noMice, "no-mice", false, MsgFlagNoMice)

	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
