package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List practice groups (optionally filtered by part of speech or text)",
	RunE: func(cmd *cobra.Command, args []string) error {
		posVal, _ := cmd.Flags().GetString("pos")
		filter, _ := cmd.Flags().GetString("filter")

		var tag pos.Tag
		if posVal != "" {
			t, ok := pos.Parse(posVal)
			if !ok {
				return fmt.Errorf("unknown part of speech %q", posVal)
			}
			tag = t.Combined()
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		all, _, err := e.loadGroups(cmd)
		if err != nil {
			return err
		}

		groups := grouping.FilterGroups(all, tag, filter)
		if len(groups) == 0 {
			return fmt.Errorf("no groups match")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-48s  %-18s  %-30s  %4s\n", "ID", "POS", "Stages", "Size")
		fmt.Fprintln(out, strings.Repeat("─", 106))
		for _, g := range groups {
			id := g.ID
			if len(id) > 48 {
				id = id[:45] + "..."
			}
			fmt.Fprintf(out, "%-48s  %-18s  %-30s  %4d\n",
				id, g.PartOfSpeech.DisplayName(), grouping.FormatLabels(g.StageLabels), g.Size())
		}

		fmt.Fprintf(out, "\n%d groups, %d words\n", len(groups), grouping.TotalEntries(groups))
		return nil
	},
}

func init() {
	groupsCmd.Flags().String("pos", "", "Filter by part of speech (e.g. noun, verb, pronoun)")
	groupsCmd.Flags().String("filter", "", "Only groups whose ID contains this text")
}
