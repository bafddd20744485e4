package main

import (
	"os"

	"github.com/arthur-debert/potbin/cmd/potbin"
	"github.com/arthur-debert/potbin/pkg/output"
)

func main() {
	rootCmd := potbin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reporter := output.NewReporter(os.Stdout, os.Stderr, !output.ColorEnabled(os.Stderr))
		reporter.Error(err)
		os.Exit(1)
	}
}
