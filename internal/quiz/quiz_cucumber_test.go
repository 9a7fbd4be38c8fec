package quiz

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

func TestSessionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: initializeSessionScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"features"},
			Output:   io.Discard,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("session features failed")
	}
}

// sessionFeature holds one scenario's controller and clock.
type sessionFeature struct {
	c         *Controller
	clock     *fakeClock
	prevStart time.Time
}

func initializeSessionScenario(ctx *godog.ScenarioContext) {
	f := &sessionFeature{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*f = sessionFeature{}
		return ctx, nil
	})

	ctx.Step(`^a quiz with (\d+) questions$`, f.aQuizWithQuestions)
	ctx.Step(`^the session is started$`, f.theSessionIsStarted)
	ctx.Step(`^I select choice (\d+)$`, f.iSelectChoice)
	ctx.Step(`^I reveal$`, f.iReveal)
	ctx.Step(`^I advance$`, f.iAdvance)
	ctx.Step(`^I retry$`, f.iRetry)
	ctx.Step(`^I answer the current question (correctly|incorrectly)$`, f.iAnswerTheCurrentQuestion)
	ctx.Step(`^I answer every question correctly$`, f.iAnswerEveryQuestionCorrectly)
	ctx.Step(`^(\d+) seconds pass$`, f.secondsPass)
	ctx.Step(`^the session is completed$`, f.theSessionIsCompleted)
	ctx.Step(`^the correct count is (\d+)$`, f.theCorrectCountIs)
	ctx.Step(`^the wrong count is (\d+)$`, f.theWrongCountIs)
	ctx.Step(`^the score is (\d+) percent$`, f.theScoreIs)
	ctx.Step(`^the answer log has (\d+) records?$`, f.theAnswerLogHas)
	ctx.Step(`^the last record selected choice (\d+)$`, f.theLastRecordSelected)
	ctx.Step(`^the current index is (\d+)$`, f.theCurrentIndexIs)
	ctx.Step(`^the elapsed time is (\d+) seconds$`, f.theElapsedTimeIs)
	ctx.Step(`^the start time is later than before$`, f.theStartTimeIsLater)
}

func (f *sessionFeature) aQuizWithQuestions(n int) error {
	f.clock = &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	f.c = NewController(testQuestions(n), WithClock(f.clock.Now))
	return nil
}

func (f *sessionFeature) theSessionIsStarted() error {
	if !f.c.Start() {
		return fmt.Errorf("start rejected")
	}
	return nil
}

func (f *sessionFeature) iSelectChoice(idx int) error {
	f.c.SelectChoice(idx)
	return nil
}

func (f *sessionFeature) iReveal() error {
	f.c.Reveal()
	return nil
}

func (f *sessionFeature) iAdvance() error {
	f.c.Advance()
	return nil
}

func (f *sessionFeature) iRetry() error {
	f.prevStart = f.c.Snapshot().StartedAt
	if !f.c.Retry() {
		return fmt.Errorf("retry rejected")
	}
	return nil
}

func (f *sessionFeature) iAnswerTheCurrentQuestion(how string) error {
	snap := f.c.Snapshot()
	if !snap.HasQuestion {
		return fmt.Errorf("no current question (phase %v)", snap.Phase)
	}
	choice := snap.Question.Answer
	if how == "incorrectly" {
		choice = (choice + 1) % snap.Question.NumChoices()
	}
	if !f.c.SelectChoice(choice) || !f.c.Reveal() || !f.c.Advance() {
		return fmt.Errorf("answering question %d was rejected", snap.Index)
	}
	return nil
}

func (f *sessionFeature) iAnswerEveryQuestionCorrectly() error {
	for f.c.Phase() == PhasePresenting {
		if err := f.iAnswerTheCurrentQuestion("correctly"); err != nil {
			return err
		}
	}
	return nil
}

func (f *sessionFeature) secondsPass(n int) error {
	f.clock.Advance(time.Duration(n) * time.Second)
	return nil
}

func (f *sessionFeature) theSessionIsCompleted() error {
	if got := f.c.Phase(); got != PhaseCompleted {
		return fmt.Errorf("phase = %v, want completed", got)
	}
	return nil
}

func (f *sessionFeature) theCorrectCountIs(n int) error {
	if got := f.c.Stats().Correct; got != n {
		return fmt.Errorf("correct = %d, want %d", got, n)
	}
	return nil
}

func (f *sessionFeature) theWrongCountIs(n int) error {
	if got := f.c.Stats().Wrong; got != n {
		return fmt.Errorf("wrong = %d, want %d", got, n)
	}
	return nil
}

func (f *sessionFeature) theScoreIs(n int) error {
	if got := f.c.Stats().Percent; got != n {
		return fmt.Errorf("percent = %d, want %d", got, n)
	}
	return nil
}

func (f *sessionFeature) theAnswerLogHas(n int) error {
	if got := len(f.c.Snapshot().Answers); got != n {
		return fmt.Errorf("answer log has %d records, want %d", got, n)
	}
	return nil
}

func (f *sessionFeature) theLastRecordSelected(idx int) error {
	rec, ok := f.c.Snapshot().Current()
	if !ok {
		return fmt.Errorf("no revealed record")
	}
	if rec.Selected != idx {
		return fmt.Errorf("record selected %d, want %d", rec.Selected, idx)
	}
	return nil
}

func (f *sessionFeature) theCurrentIndexIs(n int) error {
	if got := f.c.Snapshot().Index; got != n {
		return fmt.Errorf("index = %d, want %d", got, n)
	}
	return nil
}

func (f *sessionFeature) theElapsedTimeIs(n int) error {
	if got := f.c.Stats().ElapsedSeconds; got != n {
		return fmt.Errorf("elapsed = %ds, want %ds", got, n)
	}
	return nil
}

func (f *sessionFeature) theStartTimeIsLater() error {
	if start := f.c.Snapshot().StartedAt; !start.After(f.prevStart) {
		return fmt.Errorf("start %v not after %v", start, f.prevStart)
	}
	return nil
}
