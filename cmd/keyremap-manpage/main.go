package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/keyremap/cmd/keyremap"
	"github.com/arthur-debert/keyremap/internal/version"
)

func main() {
	rootCmd := keyremap.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "KEYREMAP",
		Section: "1",
		Source:  "keyremap " + version.Version,
		Manual:  "keyremap manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
