package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mblarsen/balloon/internal/config"
	"github.com/mblarsen/balloon/internal/execer"
	"github.com/mblarsen/balloon/internal/platform"
	"github.com/spf13/cobra"
)

// Overridable for testing.
var (
	hostFacts platform.Facts = platform.Cached(platform.Runtime{})
	runner    execer.Runner  = execer.Exec{}
)

// globals are the values of the persistent flags and the config they load.
type globals struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "balloon",
		Short: "Show desktop notifications from the command line.",
		Long: `balloon shows desktop notifications. On Windows it drives the bundled
notifu executable, elsewhere it uses the desktop notification service.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to the config file (default: $XDG_CONFIG_HOME/balloon/config.toml).")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn or error.")

	rootCmd.AddCommand(newNotifyCmd(g))
	rootCmd.AddCommand(newResolveCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	return rootCmd
}

func (g *globals) load(cmd *cobra.Command) error {
	if g.configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		g.configPath = path
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	setupLogger(cmd.ErrOrStderr(), g.logLevel, cfg.LogLevel)
	return nil
}

func Execute() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
