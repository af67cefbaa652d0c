// Command reactuictl is a small operator CLI for hosting a reactive UI
// runtime: serve boots an HTTP server mounting a demo root component
// behind a WebSocket transport, and version prints build information.
// A cobra root command wires the subcommands, with a banner and
// colored print helpers for interactive use.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┌─┐┌┬┐┬ ┬┬
  ├┬┘├┤ ├─┤│   │ │ │││
  ┴└─└─┘┴ ┴└─┘ ┴ └─┘┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactuictl",
		Short: "Host and inspect reactive UI runtimes",
		Long: `reactuictl hosts a reactive UI runtime behind a WebSocket transport.

A runtime reconciles a tree of components on every state change and
streams the resulting patches to a connected client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Print(banner)
}

func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
