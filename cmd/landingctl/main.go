// Command landingctl resolves and renders the course landing page without
// running the server.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
