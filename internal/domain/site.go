package domain

import "strings"

// SiteConfig is the injected configuration a landing page is rendered from.
// Empty fields count as absent.
type SiteConfig struct {
	Environment string `yaml:"ENVIRONMENT" json:"ENVIRONMENT,omitempty"`
	Author      string `yaml:"AUTHOR" json:"AUTHOR,omitempty"`
}

// Environment is the deployment stage a page is rendered for.
type Environment int

const (
	EnvironmentUnknown Environment = iota
	EnvironmentDevelopment
	EnvironmentStaging
	EnvironmentProduction
)

// ParseEnvironment maps an already normalized environment name onto a known
// stage. Anything that is not an exact match is EnvironmentUnknown.
func ParseEnvironment(s string) Environment {
	switch s {
	case "development":
		return EnvironmentDevelopment
	case "staging":
		return EnvironmentStaging
	case "production":
		return EnvironmentProduction
	default:
		return EnvironmentUnknown
	}
}

func (e Environment) String() string {
	switch e {
	case EnvironmentDevelopment:
		return "development"
	case EnvironmentStaging:
		return "staging"
	case EnvironmentProduction:
		return "production"
	default:
		return "unknown"
	}
}

// Theme is the CSS class selecting a page colour scheme.
type Theme string

const (
	ThemeNone  Theme = ""
	ThemeRed   Theme = "theme-red"
	ThemeBlue  Theme = "theme-blue"
	ThemeGreen Theme = "theme-green"
)

// Theme returns the colour scheme of the stage. Unknown stages have none.
func (e Environment) Theme() Theme {
	switch e {
	case EnvironmentDevelopment:
		return ThemeRed
	case EnvironmentStaging:
		return ThemeBlue
	case EnvironmentProduction:
		return ThemeGreen
	default:
		return ThemeNone
	}
}

// Label is the theme name used in metrics and terminal output.
func (t Theme) Label() string {
	if t == ThemeNone {
		return "none"
	}
	return strings.TrimPrefix(string(t), "theme-")
}

// Presentation is everything the landing page template needs.
type Presentation struct {
	NormalizedEnvironment string `json:"normalized_environment"`
	DisplayAuthor         string `json:"display_author"`
	ThemeClass            Theme  `json:"theme_class"`
	CourseCode            string `json:"course_code"`
	CourseTitle           string `json:"course_title"`
}
