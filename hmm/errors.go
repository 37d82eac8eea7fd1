package hmm

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Callers match with errors.Is; neither is retryable.
var (
	ErrEmptyInput       = errors.New("empty input sentence")
	ErrNoReachableState = errors.New("no reachable state")
)

// DataError reports a malformed training instance: a tag sequence whose
// length differs from its paired word sequence. Training fails as a whole,
// no model is produced.
type DataError struct {
	Instance  int
	TagCount  int
	WordCount int
}

func (e *DataError) Error() string {
	return fmt.Sprintf(
		"training instance %d is malformed: %d tags paired with %d words",
		e.Instance, e.TagCount, e.WordCount,
	)
}
