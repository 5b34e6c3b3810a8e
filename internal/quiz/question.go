// Package quiz turns vocabulary groups into multiple-choice questions and
// tracks a learner's run through them.
package quiz

import (
	"encoding/json"
	"errors"
	"math/rand/v2"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

const (
	DefaultMinOptions = 2
	DefaultMaxOptions = 4
)

// ErrNoEligibleGroup is returned by BuildOne when no group has enough
// entries to fill the minimum number of options.
var ErrNoEligibleGroup = errors.New("no group has enough entries")

// NewRand returns a randomly seeded source for play order. Question order
// and distractors are not reproducible on purpose, unlike group membership.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Question asks for the translation of Prompt. Options holds the correct
// entry and its distractors, all from the same group, in display order.
type Question struct {
	GroupID      string
	PartOfSpeech pos.Tag
	StageLabels  []string
	Prompt       string
	AnswerIndex  int
	Options      []*grouping.Entry
}

// Correct returns the entry the prompt was taken from.
func (q Question) Correct() *grouping.Entry {
	return q.Options[q.AnswerIndex]
}

// IsCorrect reports whether choosing option i answers the question.
func (q Question) IsCorrect(i int) bool {
	return i == q.AnswerIndex
}

type optionJSON struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	AudioKey    string `json:"audio_key,omitempty"`
}

type questionJSON struct {
	GroupID     string       `json:"group_id"`
	POS         pos.Tag      `json:"pos"`
	Stages      []string     `json:"stages"`
	Prompt      string       `json:"prompt"`
	AnswerIndex int          `json:"answer_index"`
	Options     []optionJSON `json:"options"`
}

// MarshalJSON renders the question the way the question command prints it.
func (q Question) MarshalJSON() ([]byte, error) {
	out := questionJSON{
		GroupID:     q.GroupID,
		POS:         q.PartOfSpeech,
		Stages:      q.StageLabels,
		Prompt:      q.Prompt,
		AnswerIndex: q.AnswerIndex,
		Options:     make([]optionJSON, len(q.Options)),
	}
	for i, e := range q.Options {
		out.Options[i] = optionJSON{Text: e.Text, Translation: e.Translation, AudioKey: e.AudioKey}
	}
	return json.Marshal(out)
}

// BuildAll returns one question per entry of g in a shuffled order, so a
// full run asks every word of the group exactly once. Groups smaller than
// minOptions yield no questions. rng should not be the grouping RNG: play
// order is meant to differ between attempts.
func BuildAll(g *grouping.Group, rng grouping.RandomSource, minOptions, maxOptions int) []Question {
	if g == nil || g.Size() < minOptions || g.Size() == 0 {
		return nil
	}

	order := append([]*grouping.Entry(nil), g.Entries...)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	questions := make([]Question, 0, len(order))
	for _, correct := range order {
		questions = append(questions, build(g, correct, rng, maxOptions))
	}
	return questions
}

// BuildOne picks a random group with at least minOptions entries and asks
// one random word from it.
func BuildOne(groups []*grouping.Group, rng grouping.RandomSource, minOptions, maxOptions int) (Question, error) {
	var eligible []*grouping.Group
	for _, g := range groups {
		if g.Size() >= minOptions && g.Size() > 0 {
			eligible = append(eligible, g)
		}
	}
	if len(eligible) == 0 {
		return Question{}, ErrNoEligibleGroup
	}

	g := eligible[rng.IntN(len(eligible))]
	correct := g.Entries[rng.IntN(g.Size())]
	return build(g, correct, rng, maxOptions), nil
}

func build(g *grouping.Group, correct *grouping.Entry, rng grouping.RandomSource, maxOptions int) Question {
	pool := make([]*grouping.Entry, 0, g.Size()-1)
	for _, e := range g.Entries {
		if e != correct {
			pool = append(pool, e)
		}
	}

	options := append(sample(pool, min(maxOptions-1, len(pool)), rng), correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	answer := 0
	for i, o := range options {
		if o == correct {
			answer = i
			break
		}
	}

	return Question{
		GroupID:      g.ID,
		PartOfSpeech: g.PartOfSpeech,
		StageLabels:  g.StageLabels,
		Prompt:       correct.Text,
		AnswerIndex:  answer,
		Options:      options,
	}
}

// sample draws k distinct items uniformly with a partial Fisher-Yates
// shuffle. pool is reordered.
func sample(pool []*grouping.Entry, k int, rng grouping.RandomSource) []*grouping.Entry {
	if k <= 0 {
		return make([]*grouping.Entry, 0, 1)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append(make([]*grouping.Entry, 0, k+1), pool[:k]...)
}
