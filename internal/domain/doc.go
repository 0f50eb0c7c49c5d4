// Package domain defines the site configuration, the environment enumeration
// with its theme mapping, and the presentation the landing page renders.
//
// No implementation code beyond pure value mappings.
package domain
