// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquega/archive"
)

const defaultArchive = "cliquega.db"

func newHistoryCmd(a *app) *cobra.Command {
	var (
		path  string
		limit int
		runs  string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived benchmarks, or the runs of one benchmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("archive") {
				path = outPath(a.cfg.Output, a.cfg.Output.Archive)
				if path == "" {
					path = defaultArchive
				}
			}

			st, err := archive.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer st.Close()

			if runs != "" {
				id, err := uuid.Parse(runs)
				if err != nil {
					return fmt.Errorf("--runs %q: %w", runs, err)
				}
				return listRuns(cmd, st, id)
			}

			return listBenchmarks(cmd, st, limit)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&path, "archive", defaultArchive, "SQLite archive")
	fs.IntVar(&limit, "limit", 10, "most recent benchmarks to show (0 for all)")
	fs.StringVar(&runs, "runs", "", "show the runs of this benchmark id")

	return cmd
}

func listBenchmarks(cmd *cobra.Command, st *archive.Store, limit int) error {
	list, err := st.ListBenchmarks(cmd.Context(), limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tGRAPH\tRUNS\tBEST\tPOP\tGEN\tSEED")
	for _, b := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			b.ID, b.CreatedAt.Format(time.RFC3339), b.Label, b.Runs, b.BestFitness,
			b.Config.PopulationSize, b.Config.MaxGenerations, b.Config.Seed)
	}

	return tw.Flush()
}

func listRuns(cmd *cobra.Command, st *archive.Store, id uuid.UUID) error {
	runs, err := st.Runs(cmd.Context(), id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tID\tTIME (s)\tBEST\tGENERATIONS\tSTOP")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%d\t%d\t%s\n",
			r.Index+1, r.ID, r.Elapsed.Seconds(), r.BestFitness, r.Generations, r.StopReason)
	}

	return tw.Flush()
}
