package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Prakruti Organics store tooling",
		SilenceUsage:  true,
	}
	root.AddCommand(newQuizCmd(), newMigrateCmd())
	return root
}
