// Package landing turns an injected site configuration into the values the
// course landing page is rendered from.
//
// Resolution never fails: missing values fall back to defaults and unknown
// environments simply get no theme.
package landing
