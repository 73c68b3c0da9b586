package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goatboard",
		Short:         "Rank basketball players by career greatness and recent form",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $GOAT_CONFIG)")

	root.AddCommand(rankCmd())
	root.AddCommand(recentCmd())
	root.AddCommand(historyCmd())

	return root
}

func rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Build and write the career and recent-form documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd.Context(), cmd.OutOrStdout(), true, nil)
		},
	}
}

func recentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Build and write only the recent-form document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var override *int
			if cmd.Flags().Changed("limit") {
				override = &limit
			}
			return runRank(cmd.Context(), cmd.OutOrStdout(), false, override)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "max players on the recent board (default: from config)")
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded ranking runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd.Context(), cmd.OutOrStdout(), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "max runs to show")
	return cmd
}
