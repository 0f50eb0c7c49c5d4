package main

import (
	"fmt"
	"os"

	"github.com/pscheid92/landing/internal/landing"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		flags siteFlags
		out   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page as a standalone HTML file",
		Long: `Render writes the landing page with its stylesheet inlined, so the result
can be hosted by any static file server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := flags.site()
			if err != nil {
				return err
			}
			presentation := landing.Resolve(site)

			if out == "" {
				return landing.RenderStatic(cmd.OutOrStdout(), presentation)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := landing.RenderStatic(f, presentation); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%s)\n", out, presentation.ThemeClass.Label())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
