package play

// feedbackDoneMsg ends the feedback pause after a correct answer. Question
// is the index answered, so a pause that was already skipped by a key
// press does not advance a second time.
type feedbackDoneMsg struct {
	Question int
}
