package quiz

import (
	"math"
	"time"
)

// Stats are derived from the answer log; nothing here is stored.
type Stats struct {
	Total    int
	Answered int
	Correct  int
	Wrong    int

	// Percent is round(100 * Correct / Total), or 0 without questions.
	Percent int

	// Elapsed runs from start to completion, or to now while presenting.
	Elapsed        time.Duration
	ElapsedSeconds int
}

// computeStats derives Stats from an answer log.
func computeStats(total int, answers []AnswerRecord, elapsed time.Duration) Stats {
	st := Stats{
		Total:    total,
		Answered: len(answers),
		Elapsed:  elapsed,
	}
	for _, a := range answers {
		if a.Correct {
			st.Correct++
		}
	}
	st.Wrong = st.Answered - st.Correct
	st.Percent = Percent(st.Correct, total)
	st.ElapsedSeconds = roundHalfUp(elapsed.Seconds())
	return st
}

// Percent returns round(100*correct/total) clamped to [0, 100], with halves
// rounded up. It is 0 when total is 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	p := roundHalfUp(100 * float64(correct) / float64(total))
	return max(0, min(100, p))
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
