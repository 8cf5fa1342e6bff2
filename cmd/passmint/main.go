// Package main is the entry point for the passmint CLI.
package main

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	cmd.SetOut(os.Stdout)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
