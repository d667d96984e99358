package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/mblarsen/balloon/internal/config"
	"github.com/mblarsen/balloon/internal/fileutil"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globals) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the balloon config file.",
		Long:  `Manage the balloon config file.`,
		// A broken config must not block replacing it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := g.load(cmd); err != nil {
				if g.configPath == "" {
					return err
				}
				setupLogger(cmd.ErrOrStderr(), g.logLevel, "")
				slog.Warn("Ignoring unreadable config", "path", g.configPath, "err", err)
			}
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), g.configPath)
			return nil
		},
	}

	var print, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := config.Default().Encode(&buf); err != nil {
				return err
			}
			if print {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			if _, err := os.Stat(g.configPath); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", g.configPath)
			}
			if _, err := fileutil.AtomicWriteFile(g.configPath, buf.Bytes(), 0600); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file created at: %s\n", g.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&print, "print", false, "Print the config to stdout instead of writing it.")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	configCmd.AddCommand(pathCmd)
	configCmd.AddCommand(initCmd)
	return configCmd
}
