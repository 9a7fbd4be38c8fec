package question

// Question is a single multiple-choice item. Questions are loaded once and
// never mutated afterwards.
type Question struct {
	ID           int      `json:"id" yaml:"id"`
	Question     string   `json:"question" yaml:"question"`
	Choices      []string `json:"choices" yaml:"choices"`
	Answer       int      `json:"answer" yaml:"answer"`
	Explanations []string `json:"explanations" yaml:"explanations"`
}

// NumChoices returns the number of choices offered.
func (q Question) NumChoices() int {
	return len(q.Choices)
}

// IsCorrect reports whether idx is the correct choice.
func (q Question) IsCorrect(idx int) bool {
	return idx == q.Answer
}

// HasChoice reports whether idx addresses one of the choices.
func (q Question) HasChoice(idx int) bool {
	return idx >= 0 && idx < len(q.Choices)
}

// Format identifies how a question document is encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
