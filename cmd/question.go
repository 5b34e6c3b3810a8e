package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
)

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Print one sample question as JSON",
	Long: `Pick a random word and its distractors from one group and print the
question as JSON. Without --group any group with enough words is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetString("group")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		groups, _, err := e.loadGroups(cmd)
		if err != nil {
			return err
		}

		if groupID != "" {
			g := grouping.FindGroup(groups, groupID)
			if g == nil {
				return fmt.Errorf("unknown group %q", groupID)
			}
			groups = []*grouping.Group{g}
		}

		q, err := quiz.BuildOne(groups, quiz.NewRand(), e.cfg.Quiz.MinOptions, e.cfg.Quiz.MaxOptions)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(q, "", "  ")
		if err != nil {
			return fmt.Errorf("encode question: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	questionCmd.Flags().String("group", "", "Group ID to draw from")
}
