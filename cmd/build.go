package cmd

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/export"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

// buildPreview is how many groups build lists, in id order.
const buildPreview = 5

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the practice groups and show a short overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		groups, records, err := e.loadGroups(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Built %d groups from %d entries (seed %d, %s mode)\n",
			len(groups), len(records), e.cfg.Grouping.Seed, e.cfg.Grouping.Mode())
		byID := slices.SortedFunc(slices.Values(groups), func(a, b *grouping.Group) int {
			return strings.Compare(a.ID, b.ID)
		})
		for _, g := range byID[:min(buildPreview, len(groups))] {
			fmt.Fprintf(out, "  %s  %d words\n", g.ID, g.Size())
		}
		if len(groups) > buildPreview {
			fmt.Fprintf(out, "  ... %d more\n", len(groups)-buildPreview)
		}

		if dump, _ := cmd.Flags().GetString("dump"); dump != "" {
			if err := export.WriteFile(dump, groups); err != nil {
				return err
			}
			e.log.Info("wrote group dump", slog.String("path", dump), slog.String("format", string(export.FormatFor(dump))))
			fmt.Fprintf(out, "Wrote %s\n", dump)
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().String("seed-mode", string(grouping.SeedModeDerived), "Seed mode: derived (per bucket) or shared (one RNG)")
	buildCmd.Flags().String("dump", "", "Write all groups to this .json or .yaml file")
}
