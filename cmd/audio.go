package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/audio"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Inspect pronunciation audio files",
}

var audioCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "List words that have no audio file",
	RunE: func(cmd *cobra.Command, args []string) error {
		orphans, _ := cmd.Flags().GetBool("orphans")

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			e.cfg.Audio.Dir = dir
		}

		records, err := e.loadRecords()
		if err != nil {
			return err
		}
		entries, err := grouping.Load(records, grouping.DefaultAudioKey)
		if err != nil {
			return err
		}

		fsys := os.DirFS(e.cfg.Audio.Dir)
		exts := e.cfg.Audio.Extensions
		if len(exts) == 0 {
			exts = audio.DefaultExtensions
		}
		gaps, err := audio.Missing(fsys, entries, exts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(gaps) == 0 {
			fmt.Fprintf(out, "No missing audio in %s\n", e.cfg.Audio.Dir)
		} else {
			fmt.Fprintf(out, "%d words without audio in %s:\n", len(gaps), e.cfg.Audio.Dir)
			for _, g := range gaps {
				fmt.Fprintf(out, "- %s -> %s\n", g.Text, g.Expected(exts[0]))
			}
			e.log.Warn("missing audio files", slog.Int("count", len(gaps)), slog.String("dir", e.cfg.Audio.Dir))
		}

		if orphans {
			names, err := audio.Orphans(fsys, entries, exts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d audio files match no word\n", len(names))
			for _, n := range names {
				fmt.Fprintf(out, "- %s\n", n)
			}
		}
		return nil
	},
}

func init() {
	audioCheckCmd.Flags().String("dir", "", "Audio directory (overrides audio.dir)")
	audioCheckCmd.Flags().Bool("orphans", false, "Also list files that match no word")

	audioCmd.AddCommand(audioCheckCmd)
}
