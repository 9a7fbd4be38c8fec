package question

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a question document, checks it against the document schema,
// and runs the semantic checks in Validate.
func Decode(data []byte, format Format) ([]Question, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// toJSON converts YAML documents to JSON so both formats share one schema.
func toJSON(data []byte, format Format) ([]byte, error) {
	if format != FormatYAML {
		return data, nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}

// Validate checks the semantic rules a schema cannot express: the set is not
// empty, ids are unique, every answer indexes a choice, and explanations run
// parallel to choices.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	var issues []string
	seen := make(map[int]int, len(questions))
	for i, q := range questions {
		if prev, dup := seen[q.ID]; dup {
			issues = append(issues, fmt.Sprintf("question %d: id %d already used by question %d", i, q.ID, prev))
		} else {
			seen[q.ID] = i
		}
		if q.Question == "" {
			issues = append(issues, fmt.Sprintf("question %d (id %d): empty text", i, q.ID))
		}
		if len(q.Choices) < 2 {
			issues = append(issues, fmt.Sprintf("question %d (id %d): needs at least 2 choices, has %d", i, q.ID, len(q.Choices)))
		}
		if !q.HasChoice(q.Answer) {
			issues = append(issues, fmt.Sprintf("question %d (id %d): answer %d out of range [0,%d)", i, q.ID, q.Answer, len(q.Choices)))
		}
		if len(q.Explanations) != len(q.Choices) {
			issues = append(issues, fmt.Sprintf("question %d (id %d): %d explanations for %d choices", i, q.ID, len(q.Explanations), len(q.Choices)))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
