package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionFinished = errors.New("quiz session already finished")
	ErrInvalidChoice   = errors.New("invalid option index")
)

// Answer records one response.
type Answer struct {
	Question Question
	Chosen   int
	Correct  bool
	At       time.Time
}

// Session walks through a fixed list of questions and keeps score.
type Session struct {
	ID         string
	GroupID    string
	Questions  []Question
	Answers    []Answer
	Streak     int
	BestStreak int
	Correct    int
	StartedAt  time.Time
	FinishedAt time.Time

	now func() time.Time
}

// NewSession starts a session over questions, normally the output of
// BuildAll for one group.
func NewSession(groupID string, questions []Question) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		GroupID:   groupID,
		Questions: questions,
		now:       time.Now,
	}
	s.StartedAt = s.now()
	if len(questions) == 0 {
		s.FinishedAt = s.StartedAt
	}
	return s
}

// Current returns the question waiting for an answer.
func (s *Session) Current() (Question, bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.Questions[len(s.Answers)], true
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return len(s.Answers) >= len(s.Questions)
}

// Position returns the 1-based number of the current question and the total.
func (s *Session) Position() (int, int) {
	return min(len(s.Answers)+1, len(s.Questions)), len(s.Questions)
}

// Submit answers the current question with option index choice and moves on.
func (s *Session) Submit(choice int) (Answer, error) {
	q, ok := s.Current()
	if !ok {
		return Answer{}, ErrSessionFinished
	}
	if choice < 0 || choice >= len(q.Options) {
		return Answer{}, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, choice, len(q.Options))
	}

	a := Answer{Question: q, Chosen: choice, Correct: q.IsCorrect(choice), At: s.now()}
	s.Answers = append(s.Answers, a)
	if a.Correct {
		s.Correct++
		s.Streak++
		s.BestStreak = max(s.BestStreak, s.Streak)
	} else {
		s.Streak = 0
	}
	if s.Done() {
		s.FinishedAt = a.At
	}
	return a, nil
}

// Summary holds the data shown when a session ends.
type Summary struct {
	SessionID      string
	GroupID        string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int

	// Missed lists the wrongly answered questions in the order asked.
	Missed []Answer
}

// Summary reports on the answers so far.
func (s *Session) Summary() Summary {
	end := s.FinishedAt
	if end.IsZero() {
		end = s.now()
	}

	var missed []Answer
	for _, a := range s.Answers {
		if !a.Correct {
			missed = append(missed, a)
		}
	}

	var accuracy float64
	if n := len(s.Answers); n > 0 {
		accuracy = float64(s.Correct) / float64(n)
	}

	return Summary{
		SessionID:      s.ID,
		GroupID:        s.GroupID,
		Duration:       end.Sub(s.StartedAt),
		TotalQuestions: len(s.Answers),
		TotalCorrect:   s.Correct,
		Accuracy:       accuracy,
		BestStreak:     s.BestStreak,
		Missed:         missed,
	}
}
