package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/landing"
	"github.com/spf13/cobra"
)

var themeColors = map[domain.Theme]lipgloss.TerminalColor{
	domain.ThemeRed:   lipgloss.Color("#c0392b"),
	domain.ThemeBlue:  lipgloss.Color("#2c5364"),
	domain.ThemeGreen: lipgloss.Color("#2e8b57"),
}

func newResolveCmd() *cobra.Command {
	var (
		flags  siteFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the theme and author line the page would render with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := flags.site()
			if err != nil {
				return err
			}
			presentation := landing.Resolve(site)

			switch output {
			case "json":
				return writeJSON(cmd.OutOrStdout(), presentation)
			case "text":
				return writeText(cmd.OutOrStdout(), presentation)
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", output)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func writeJSON(w io.Writer, p domain.Presentation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding presentation: %w", err)
	}
	return nil
}

func writeText(w io.Writer, p domain.Presentation) error {
	color, ok := themeColors[p.ThemeClass]
	if !ok {
		color = lipgloss.NoColor{}
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(color)
	label := lipgloss.NewStyle().Faint(true).Width(13)

	theme := string(p.ThemeClass)
	if p.ThemeClass == domain.ThemeNone {
		theme = "(none)"
	}

	lines := []string{
		heading.Render(p.CourseCode + " | " + p.CourseTitle),
		label.Render("environment:") + p.NormalizedEnvironment,
		label.Render("author:") + p.DisplayAuthor,
		label.Render("theme:") + theme,
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
