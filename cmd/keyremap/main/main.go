package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/keyremap/cmd/keyremap"
	"github.com/arthur-debert/keyremap/pkg/display"
)

func main() {
	rootCmd := keyremap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, display.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
