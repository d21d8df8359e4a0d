// Package cli defines the Cobra command tree for the baylang CLI. Command
// implementations delegate to internal packages for the actual work and only
// handle flag parsing, config resolution and output formatting.
package cli
