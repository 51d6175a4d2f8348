// Package main provides the entry point for the dfrgram CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/dfr-tools/dfrgram/cmd/dfrgram/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
