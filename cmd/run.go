package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/app"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/screens/play"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start an interactive quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, _ := cmd.Flags().GetString("group")
		return runApp(cmd, groupID)
	},
}

func init() {
	quizCmd.Flags().String("group", "", "Open this group directly instead of the picker")
}

// runApp loads the groups and launches the TUI.
func runApp(cmd *cobra.Command, groupID string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	groups, _, err := e.loadGroups(cmd)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return fmt.Errorf("no groups: %s has no entries", e.cfg.Source.Path)
	}

	return app.Run(app.Options{
		Groups: groups,
		Settings: play.Settings{
			Rand:       quiz.NewRand(),
			MinOptions: e.cfg.Quiz.MinOptions,
			MaxOptions: e.cfg.Quiz.MaxOptions,
		},
		Status:       fmt.Sprintf("seed %d  ", e.cfg.Grouping.Seed),
		StartGroupID: groupID,
	})
}
