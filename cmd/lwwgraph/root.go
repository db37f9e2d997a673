package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lwwgraph",
		Short: "LWW-Element-Graph replicas and snapshot tools",
		Long: `lwwgraph serves a last-writer-wins element graph replica over HTTP,
keeps it converged with peers, and inspects or merges snapshot files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMergeCmd(),
		newDumpCmd(),
		newPathCmd(),
		newGenerateCmd(),
		newPullCmd(),
		newPushCmd(),
	)

	return root
}
