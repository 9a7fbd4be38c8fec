package quiz

import (
	"time"

	"github.com/abhisek/quizdeck/internal/question"
)

// Phase is the coarse state of a quiz session.
type Phase int

const (
	PhaseNotStarted Phase = iota // No session yet
	PhasePresenting              // Walking through questions
	PhaseCompleted               // Past the last question, summary available
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePresenting:
		return "presenting"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// AnswerRecord is appended once per question when it is revealed.
type AnswerRecord struct {
	QuestionID int
	// Selected is the chosen index; meaningful only when HasSelection is set.
	Selected     int
	HasSelection bool
	Correct      bool
}

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	Phase     Phase
	SessionID string

	// Index is the current question index; Total is the number of questions.
	Index int
	Total int

	// Question is the current question while presenting.
	Question    question.Question
	HasQuestion bool

	Selected            int
	HasSelection        bool
	ExplanationRevealed bool

	Answers []AnswerRecord

	StartedAt time.Time
	EndedAt   time.Time

	// CanSelect, CanReveal and CanAdvance tell the view which actions are
	// currently accepted so it can disable the rest.
	CanSelect  bool
	CanReveal  bool
	CanAdvance bool

	// IsLast is true while presenting the final question.
	IsLast bool
}

// Current returns the answer record of the current question, if revealed.
func (s Snapshot) Current() (AnswerRecord, bool) {
	if !s.ExplanationRevealed || len(s.Answers) == 0 {
		return AnswerRecord{}, false
	}
	return s.Answers[len(s.Answers)-1], true
}
