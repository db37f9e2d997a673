package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lwwgraph/builder"
	"github.com/katalvlaran/lwwgraph/core"
	"github.com/katalvlaran/lwwgraph/snapshot"
)

func newGenerateCmd() *cobra.Command {
	var (
		out      string
		directed bool
		ts       int64
		seed     int64
		p        float64
		letters  bool
	)
	cmd := &cobra.Command{
		Use:   "generate topology n [m]",
		Short: "Write a snapshot of a generated topology",
		Long: `generate builds path, cycle, star, wheel, complete, grid (n rows, m columns)
or random (n vertices, edge probability -p) and writes it to -o or prints a dump.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n, m int
			if _, err := fmt.Sscan(args[1], &n); err != nil {
				return fmt.Errorf("n: %w", err)
			}
			if len(args) == 3 {
				if _, err := fmt.Sscan(args[2], &m); err != nil {
					return fmt.Errorf("m: %w", err)
				}
			}
			con, err := topology(args[0], n, m, p)
			if err != nil {
				return err
			}

			bopts := []builder.BuilderOption{builder.WithTimestamp(ts), builder.WithSeed(seed)}
			if letters {
				bopts = append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn))
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, bopts, con)
			if err != nil {
				return err
			}
			if out == "" {
				return g.Dump(cmd.OutOrStdout())
			}

			return snapshot.WriteFile(out, snapshot.Capture(g, ""))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the snapshot to this file")
	cmd.Flags().BoolVar(&directed, "directed", false, "generate a directed graph")
	cmd.Flags().Int64Var(&ts, "ts", 1, "timestamp of every generated operation")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random topologies")
	cmd.Flags().Float64VarP(&p, "prob", "p", 0.1, "edge probability for random topologies")
	cmd.Flags().BoolVar(&letters, "letters", false, "label vertices A, B, ... AA instead of 0, 1, ...")

	return cmd
}

func topology(name string, n, m int, p float64) (builder.Constructor, error) {
	switch name {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		if m == 0 {
			m = n
		}
		return builder.Grid(n, m), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}
