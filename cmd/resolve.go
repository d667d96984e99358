package cmd

import (
	"fmt"
	"log/slog"

	"github.com/mblarsen/balloon/internal/notifu"
	"github.com/mblarsen/balloon/internal/platform"
	"github.com/spf13/cobra"
)

func newResolveCmd(g *globals) *cobra.Command {
	var arch string

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the notifu executable for this host.",
		Long: `Print the notifu executable balloon would run on this host. Use --arch to
see the choice for another CPU architecture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vendorDir, err := g.cfg.ResolveVendorDir()
			if err != nil {
				return err
			}
			facts := platform.WithArch(hostFacts, arch)
			resolver, err := notifu.NewResolver(vendorDir, facts, notifu.WithExecutables(g.cfg.Executable32, g.cfg.Executable64))
			if err != nil {
				return err
			}

			path := resolver.Resolve()
			slog.Debug("Resolved notifu executable", "arch", facts.Arch(), "64bit", notifu.Is64Bit(facts.Arch()))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	resolveCmd.Flags().StringVar(&arch, "arch", "", "CPU architecture to resolve for, e.g. x64 or ia32.")
	return resolveCmd
}
