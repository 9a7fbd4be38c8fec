package quiz

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/question"
)

// Controller drives one user through a fixed question sequence:
// not started, presenting (select, reveal, advance), completed.
//
// Every transition returns whether it was accepted. Transitions that are not
// valid in the current state are ignored and leave the state untouched.
// Controller is not safe for concurrent use; the UI event loop owns it.
type Controller struct {
	questions []question.Question
	now       func() time.Time
	newID     func() string
	logger    *zap.Logger

	phase        Phase
	sessionID    string
	index        int
	selected     int
	hasSelection bool
	revealed     bool
	answers      []AnswerRecord
	startedAt    time.Time
	endedAt      time.Time
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger for transition events.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(gen func() string) ControllerOption {
	return func(c *Controller) { c.newID = gen }
}

// NewController creates a controller over questions. The slice is copied and
// treated as read-only.
func NewController(questions []question.Question, opts ...ControllerOption) *Controller {
	qs := make([]question.Question, len(questions))
	copy(qs, questions)

	c := &Controller{
		questions: qs,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    zap.NewNop(),
		phase:     PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a fresh session from any state. It is ignored only when there
// are no questions to present.
func (c *Controller) Start() bool {
	if len(c.questions) == 0 {
		return false
	}

	prev := c.startedAt
	start := c.now()
	// Each session starts strictly after the previous one.
	if !prev.IsZero() && !start.After(prev) {
		start = prev.Add(time.Nanosecond)
	}

	c.phase = PhasePresenting
	c.sessionID = c.newID()
	c.index = 0
	c.clearSelection()
	c.answers = nil
	c.startedAt = start
	c.endedAt = time.Time{}

	c.logger.Info("session started",
		zap.String("session_id", c.sessionID),
		zap.Int("questions", len(c.questions)))
	return true
}

// Retry is Start under the name the result screen uses.
func (c *Controller) Retry() bool {
	return c.Start()
}

// SelectChoice sets the in-progress selection. The last call before reveal
// wins; calls after reveal or with an out-of-range index are ignored.
func (c *Controller) SelectChoice(idx int) bool {
	if c.phase != PhasePresenting || c.revealed {
		return false
	}
	if !c.questions[c.index].HasChoice(idx) {
		return false
	}
	c.selected = idx
	c.hasSelection = true

	c.logger.Debug("choice selected",
		zap.String("session_id", c.sessionID),
		zap.Int("index", c.index),
		zap.Int("choice", idx))
	return true
}

// Reveal locks in the selection, records the answer, and shows the
// explanations. It needs a selection and is accepted once per question.
func (c *Controller) Reveal() bool {
	if c.phase != PhasePresenting || c.revealed || !c.hasSelection {
		return false
	}

	q := c.questions[c.index]
	rec := AnswerRecord{
		QuestionID:   q.ID,
		Selected:     c.selected,
		HasSelection: true,
		Correct:      q.IsCorrect(c.selected),
	}
	c.answers = append(c.answers, rec)
	c.revealed = true

	c.logger.Debug("answer revealed",
		zap.String("session_id", c.sessionID),
		zap.Int("index", c.index),
		zap.Int("question_id", q.ID),
		zap.Bool("correct", rec.Correct))
	return true
}

// Advance moves past a revealed question. From the last question it
// completes the session and stamps the end time.
func (c *Controller) Advance() bool {
	if c.phase != PhasePresenting || !c.revealed {
		return false
	}

	c.clearSelection()
	if c.index < len(c.questions)-1 {
		c.index++
		c.logger.Debug("advanced",
			zap.String("session_id", c.sessionID),
			zap.Int("index", c.index))
		return true
	}

	c.phase = PhaseCompleted
	c.endedAt = c.now()
	if c.endedAt.Before(c.startedAt) {
		c.endedAt = c.startedAt
	}

	st := c.Stats()
	c.logger.Info("session completed",
		zap.String("session_id", c.sessionID),
		zap.Int("correct", st.Correct),
		zap.Int("wrong", st.Wrong),
		zap.Int("percent", st.Percent),
		zap.Duration("elapsed", st.Elapsed))
	return true
}

func (c *Controller) clearSelection() {
	c.selected = 0
	c.hasSelection = false
	c.revealed = false
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Questions returns the number of questions in the sequence.
func (c *Controller) Questions() int {
	return len(c.questions)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:               c.phase,
		SessionID:           c.sessionID,
		Index:               c.index,
		Total:               len(c.questions),
		Selected:            c.selected,
		HasSelection:        c.hasSelection,
		ExplanationRevealed: c.revealed,
		StartedAt:           c.startedAt,
		EndedAt:             c.endedAt,
	}
	if len(c.answers) > 0 {
		s.Answers = make([]AnswerRecord, len(c.answers))
		copy(s.Answers, c.answers)
	}

	if c.phase == PhasePresenting {
		s.Question = c.questions[c.index]
		s.HasQuestion = true
		s.IsLast = c.index == len(c.questions)-1
		s.CanSelect = !c.revealed
		s.CanReveal = c.hasSelection && !c.revealed
		s.CanAdvance = c.revealed
	}
	return s
}

// Stats derives the score and elapsed time from the answer log.
func (c *Controller) Stats() Stats {
	var elapsed time.Duration
	switch c.phase {
	case PhaseCompleted:
		elapsed = c.endedAt.Sub(c.startedAt)
	case PhasePresenting:
		elapsed = c.now().Sub(c.startedAt)
		if elapsed < 0 {
			elapsed = 0
		}
	}
	return computeStats(len(c.questions), c.answers, elapsed)
}

// Review pairs each answered question with its record, in order.
func (c *Controller) Review() []ReviewItem {
	items := make([]ReviewItem, 0, len(c.answers))
	for i, rec := range c.answers {
		items = append(items, ReviewItem{Question: c.questions[i], Answer: rec})
	}
	return items
}

// ReviewItem is one line of the post-session review.
type ReviewItem struct {
	Question question.Question
	Answer   AnswerRecord
}
