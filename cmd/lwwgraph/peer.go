package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/httpsync"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

const peerTimeout = 10 * time.Second

func newPullCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "pull url",
		Short: "Fetch a node's snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := httpsync.NewClient(args[0], peerTimeout).Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if out == "" {
				return snapshot.Encode(cmd.OutOrStdout(), st, snapshot.FormatJSON)
			}

			return snapshot.WriteFile(out, st)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the snapshot to this file instead of stdout")

	return cmd
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push url file",
		Short: "Merge a snapshot file into a running node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := snapshot.ReadFile(args[1])
			if err != nil {
				return err
			}
			stats, err := httpsync.NewClient(args[0], peerTimeout).Push(cmd.Context(), st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "merged into %s: %d/%d vertices active, %d valid edges\n",
				stats.Replica, stats.ActiveVertices, stats.VertexRecords, stats.ValidEdges)

			return nil
		},
	}
}
