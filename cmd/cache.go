package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the layout cache database",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent cached layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		st, err := e.openStore(cmd)
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("layout cache is disabled")
		}
		defer st.Close()

		recs, err := st.Layouts().List(commandContext(cmd), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %10s  %-8s  %7s  %6s  %s\n", "Input", "Seed", "Format", "Entries", "Groups", "Created")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, r := range recs {
			fmt.Fprintf(out, "%-16s  %10d  %-8s  %7d  %6d  %s\n",
				r.InputHash, r.Seed, r.Format, r.EntryCount, r.GroupCount, r.CreatedAt.Format(time.DateTime))
		}
		fmt.Fprintf(out, "\n%d layouts\n", len(recs))
		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest cached layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		keep := e.cfg.Store.KeepLayouts
		if cmd.Flags().Changed("keep") {
			keep, _ = cmd.Flags().GetInt("keep")
		}
		if keep < 0 {
			return fmt.Errorf("--keep must be >= 0 (got %d)", keep)
		}

		st, err := e.openStore(cmd)
		if err != nil {
			return err
		}
		if st == nil {
			return fmt.Errorf("layout cache is disabled")
		}
		defer st.Close()

		n, err := st.Layouts().Prune(commandContext(cmd), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d layouts, kept at most %d\n", n, keep)
		return nil
	},
}

func init() {
	cacheListCmd.Flags().Int("limit", 20, "Number of layouts to show")
	cachePruneCmd.Flags().Int("keep", 20, "Number of newest layouts to keep (default store.keep_layouts)")

	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}
