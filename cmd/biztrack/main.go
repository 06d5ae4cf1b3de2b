// Package main is the entry point for the biztrack CLI.
package main

import (
	"os"

	"github.com/biztrack/biztrack-go/cmd/biztrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
