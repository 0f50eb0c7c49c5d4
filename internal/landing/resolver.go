package landing

import (
	"strings"

	"github.com/pscheid92/landing/internal/domain"
)

const (
	DefaultEnvironment = "development"
	PlaceholderAuthor  = "ENTER NAME HERE"

	CourseCode  = "SOE 507"
	CourseTitle = "AUTOMATING WITH ANSIBLE"
)

// Resolve derives the page presentation from site. A nil site is treated as
// an empty one. Resolve is pure: equal inputs give equal outputs.
func Resolve(site *domain.SiteConfig) domain.Presentation {
	if site == nil {
		site = &domain.SiteConfig{}
	}

	env := DefaultEnvironment
	if site.Environment != "" {
		env = strings.ToLower(site.Environment)
	}

	author := PlaceholderAuthor
	if site.Author != "" {
		author = strings.ToUpper(site.Author)
	}

	return domain.Presentation{
		NormalizedEnvironment: env,
		DisplayAuthor:         author,
		ThemeClass:            domain.ParseEnvironment(env).Theme(),
		CourseCode:            CourseCode,
		CourseTitle:           CourseTitle,
	}
}
