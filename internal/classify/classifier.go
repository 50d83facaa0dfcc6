// Package classify wraps the external zero-shot text classification model.
package classify

import (
	"context"
	"errors"
)

// Classifier assigns a text to one of the supplied candidate labels.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []string) (string, error)
}

// ErrNoLabels is returned when the candidate set is empty. The model is
// never called with zero labels; callers must keep at least one category.
var ErrNoLabels = errors.New("no candidate labels")
