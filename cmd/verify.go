package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/verify"
)

// errVerifyFailed makes the command exit non-zero after printing the report.
var errVerifyFailed = errors.New("verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Rebuild the groups under several seeds and check their invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		seeds, _ := cmd.Flags().GetInt64Slice("seeds")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		records, err := e.loadRecords()
		if err != nil {
			return err
		}

		report, err := verify.Run(commandContext(cmd), records, seeds, verify.Options{
			Grouping:   e.groupingOptions(),
			MinOptions: e.cfg.Quiz.MinOptions,
			MaxOptions: e.cfg.Quiz.MaxOptions,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d entries, %s mode\n", report.Entries, e.cfg.Grouping.Mode())
		for _, s := range report.Seeds {
			fmt.Fprintf(out, "  seed %-8d %4d groups  sizes %d-%d", s.Seed, s.Groups, s.MinSize, s.MaxSize)
			if s.Undersize > 0 {
				fmt.Fprintf(out, "  (%d below %d)", s.Undersize, grouping.MinGroupSize)
			}
			fmt.Fprintln(out)
		}

		if report.OK() {
			fmt.Fprintln(out, "OK")
			return nil
		}
		for _, p := range report.Problems {
			fmt.Fprintf(out, "FAIL %s\n", p)
		}
		return fmt.Errorf("%w: %d problems", errVerifyFailed, len(report.Problems))
	},
}

func init() {
	verifyCmd.Flags().Int64Slice("seeds", verify.DefaultSeeds, "Seeds to build with")
}
