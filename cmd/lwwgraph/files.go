package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/bfs"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

func newMergeCmd() *cobra.Command {
	var (
		out string
		id  string
	)
	cmd := &cobra.Command{
		Use:   "merge [-o out] file...",
		Short: "Join snapshot files left to right",
		Long: `merge joins every snapshot file into the first one. The result is written
to -o (format by extension) or printed as a dump.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			for _, path := range args[1:] {
				other, err := loadGraph(path)
				if err != nil {
					return err
				}
				if err = g.Merge(other); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			if out == "" {
				return g.Dump(cmd.OutOrStdout())
			}

			return snapshot.WriteFile(out, snapshot.Capture(g, id))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the merged snapshot to this file")
	cmd.Flags().StringVar(&id, "id", "", "replica id recorded in the written snapshot")

	return cmd
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump file",
		Short: "Print the textual dump of a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			return g.Dump(cmd.OutOrStdout())
		},
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path file from to",
		Short: "Print the first path found and a shortest path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			from, to := args[1], args[2]

			first, err := g.FindPath(from, to)
			if err != nil {
				return err
			}
			var shortest []string
			if first != nil {
				if shortest, err = bfs.ShortestPath(cmd.Context(), g, from, to); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "first:    %s\n", formatPath(first))
			fmt.Fprintf(w, "shortest: %s\n", formatPath(shortest))

			return nil
		},
	}
}

func loadGraph(path string) (*core.Graph, error) {
	st, err := snapshot.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := st.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func formatPath(p []string) string {
	if p == nil {
		return "(none)"
	}

	return strings.Join(p, " -> ")
}
