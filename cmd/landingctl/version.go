package main

import (
	"fmt"

	"github.com/pscheid92/landing/internal/platform/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "landingctl %s\ncommit: %s\nbuilt: %s\ngo: %s\n",
				info.Version, info.Commit, info.BuildTime, info.GoVersion)
			return err
		},
	}
}
