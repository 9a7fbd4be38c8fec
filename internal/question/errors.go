package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoQuestions is returned when a document decodes to an empty list.
var ErrNoQuestions = errors.New("question set is empty")

// ErrDocumentTooLarge is returned when a source holds more than the size cap.
var ErrDocumentTooLarge = errors.New("question document too large")

// ValidationError collects every problem found in a question document.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid question set: " + e.Issues[0]
	}
	return fmt.Sprintf("invalid question set (%d issues): %s", len(e.Issues), strings.Join(e.Issues, "; "))
}

// FetchError is returned when a remote question source answers with a
// non-success status.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}
