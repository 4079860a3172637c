package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sdom",
		Short: "Server-resident DOM for Go",
		Long: `sdom keeps the document object model on the server.

Build the page as a live tree of elements, mutate it from Go, and
serve its serialized HTML to browsers. A small client runtime picks
up autoreload, logging, and transport configuration injected into
the document head.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
