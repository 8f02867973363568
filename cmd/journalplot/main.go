package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "journalplot",
		Short:         "Publication-ready figures at precise journal sizes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> app config
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (.yaml, .json or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.init()
	}

	root.AddCommand(newListCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}
