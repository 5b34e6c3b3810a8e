// Package verify rebuilds a word list under several seeds and checks the
// properties every grouping must hold.
package verify

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/quiz"
)

// Check names.
const (
	CheckConservation     = "conservation"
	CheckDeterminism      = "determinism"
	CheckSeedInvariance   = "seed-invariance"
	CheckQuestionCoverage = "question-coverage"
	CheckGroupSize        = "group-size"
)

// DefaultSeeds are the seeds checked when none are given.
var DefaultSeeds = []int64{1, 42, 12345}

// Options configures a run.
type Options struct {
	Grouping   grouping.Options
	MinOptions int
	MaxOptions int
}

// Problem is one failed check. Seed is meaningful only when CrossSeed is
// false; 0 is a valid seed.
type Problem struct {
	Check     string
	Seed      int64
	CrossSeed bool
	Detail    string
}

func (p Problem) String() string {
	if p.CrossSeed {
		return fmt.Sprintf("%s: %s", p.Check, p.Detail)
	}
	return fmt.Sprintf("%s (seed %d): %s", p.Check, p.Seed, p.Detail)
}

// SeedResult summarizes the build for one seed.
type SeedResult struct {
	Seed      int64
	Groups    int
	Entries   int
	MinSize   int
	MaxSize   int
	Undersize int // groups below grouping.MinGroupSize
}

// Report is the outcome of Run.
type Report struct {
	Entries  int
	Seeds    []SeedResult
	Problems []Problem
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// seedRun holds what one goroutine produced.
type seedRun struct {
	result    SeedResult
	placement []string
	problems  []Problem
}

// Run builds entries for every seed concurrently. Only loading errors and
// context cancellation are returned as errors; failed checks go into the
// report.
func Run(ctx context.Context, records []grouping.Record, seeds []int64, opts Options) (*Report, error) {
	if len(seeds) == 0 {
		seeds = DefaultSeeds
	}
	if opts.MinOptions == 0 {
		opts.MinOptions = quiz.DefaultMinOptions
	}
	if opts.MaxOptions == 0 {
		opts.MaxOptions = quiz.DefaultMaxOptions
	}

	entries, err := grouping.Load(records, opts.Grouping.AudioKey)
	if err != nil {
		return nil, err
	}

	runs := make([]seedRun, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[i] = checkSeed(entries, seed, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	report := &Report{Entries: len(entries)}
	for _, r := range runs {
		report.Seeds = append(report.Seeds, r.result)
		report.Problems = append(report.Problems, r.problems...)
	}
	report.Problems = append(report.Problems, seedInvariance(runs)...)
	return report, nil
}

func checkSeed(entries []*grouping.Entry, seed int64, opts Options) seedRun {
	groups := grouping.BuildEntries(entries, seed, opts.Grouping)
	run := seedRun{result: SeedResult{Seed: seed, Groups: len(groups), Entries: grouping.TotalEntries(groups)}}
	fail := func(check, format string, args ...any) {
		run.problems = append(run.problems, Problem{Check: check, Seed: seed, Detail: fmt.Sprintf(format, args...)})
	}

	// Conservation: every entry in exactly one group.
	run.placement = make([]string, len(entries))
	seen := make([]int, len(entries))
	for _, g := range groups {
		place := string(g.PartOfSpeech) + ":" + strings.Join(g.StageLabels, "+")
		for _, e := range g.Entries {
			if e.SourceIndex < 0 || e.SourceIndex >= len(entries) {
				fail(CheckConservation, "group %s holds unknown row %d", g.ID, e.SourceIndex)
				continue
			}
			seen[e.SourceIndex]++
			run.placement[e.SourceIndex] = place
		}
	}
	for i, n := range seen {
		if n != 1 {
			fail(CheckConservation, "row %d placed %d times", i, n)
		}
	}

	// Determinism: a second build is identical.
	if !sameGroups(groups, grouping.BuildEntries(entries, seed, opts.Grouping)) {
		fail(CheckDeterminism, "two builds with the same seed differ")
	}

	// Sizes.
	for i, g := range groups {
		n := g.Size()
		if i == 0 || n < run.result.MinSize {
			run.result.MinSize = n
		}
		run.result.MaxSize = max(run.result.MaxSize, n)
		if n < grouping.MinGroupSize {
			run.result.Undersize++
		}
		if n > grouping.MaxGroupSize {
			fail(CheckGroupSize, "group %s has %d entries", g.ID, n)
		}
	}

	// Question coverage: a full quiz asks every word of the group once.
	rng := grouping.NewRand(seed)
	for _, g := range groups {
		if g.Size() < opts.MinOptions {
			continue
		}
		questions := quiz.BuildAll(g, rng, opts.MinOptions, opts.MaxOptions)
		if len(questions) != g.Size() {
			fail(CheckQuestionCoverage, "group %s: %d questions for %d entries", g.ID, len(questions), g.Size())
			continue
		}
		asked := make(map[*grouping.Entry]bool, len(questions))
		for _, q := range questions {
			asked[q.Correct()] = true
			if len(q.Options) != min(opts.MaxOptions, g.Size()) {
				fail(CheckQuestionCoverage, "group %s: question %q has %d options", g.ID, q.Prompt, len(q.Options))
			}
		}
		if len(asked) != g.Size() {
			fail(CheckQuestionCoverage, "group %s: %d distinct words asked of %d", g.ID, len(asked), g.Size())
		}
	}

	return run
}

func sameGroups(a, b []*grouping.Group) bool {
	return slices.EqualFunc(a, b, func(x, y *grouping.Group) bool {
		return x.ID == y.ID && slices.Equal(x.Entries, y.Entries)
	})
}

// seedInvariance compares where each row landed across seeds. Only group
// membership within a bucket may depend on the seed.
func seedInvariance(runs []seedRun) []Problem {
	if len(runs) < 2 {
		return nil
	}
	var problems []Problem
	base := runs[0]
	for _, r := range runs[1:] {
		diff := 0
		for i := range base.placement {
			if base.placement[i] != r.placement[i] {
				diff++
			}
		}
		if diff > 0 {
			problems = append(problems, Problem{
				Check:     CheckSeedInvariance,
				CrossSeed: true,
				Detail: fmt.Sprintf("%d rows change part of speech or stage between seed %d and %d", diff, base.result.Seed, r.result.Seed),
			})
		}
	}
	return problems
}
