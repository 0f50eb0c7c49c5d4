package main

import (
	"fmt"

	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/platform/config"
	"github.com/pscheid92/landing/internal/platform/version"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "landingctl",
		Short: "Resolve and render the course landing page",
		Long: `landingctl derives the landing page theme and author line from a site
configuration and can render the page as a standalone HTML file.`,
		Version: version.Get().String(),
		// Errors are reported by us, usage would only add noise.
		SilenceUsage: true,
	}
	root.SetVersionTemplate(`{{printf "landingctl version %s\n" .Version}}`)

	root.AddCommand(newResolveCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// siteFlags are shared by commands that take a site configuration.
type siteFlags struct {
	environment string
	author      string
	configFile  string
}

func (f *siteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.environment, "environment", "", "deployment environment (development, staging, production)")
	cmd.Flags().StringVar(&f.author, "author", "", "author display name")
	cmd.Flags().StringVar(&f.configFile, "config", "", "YAML or JSON file with ENVIRONMENT and AUTHOR keys")
}

// site loads the config file, if any, and lets explicit flags override it.
func (f *siteFlags) site() (*domain.SiteConfig, error) {
	var site domain.SiteConfig
	if f.configFile != "" {
		fromFile, err := config.LoadSiteFile(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("loading site config: %w", err)
		}
		site = fromFile
	}
	site = config.Merge(site, domain.SiteConfig{Environment: f.environment, Author: f.author})
	return &site, nil
}
