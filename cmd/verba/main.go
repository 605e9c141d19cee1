package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "verba",
		Short:         "Offline-first meeting assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults plus VERBA_* environment when empty)")

	opts := &rootOptions{configPath: &configPath}
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newSummarizeCmd(opts))
	root.AddCommand(newTranscribeCmd(opts))
	root.AddCommand(newSessionsCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "verba: %v\n", err)
		os.Exit(1)
	}
}
