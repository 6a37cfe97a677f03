package media

import (
	"errors"
	"fmt"
)

// ErrProbeFailed is reported when the secure media URL did not answer 200
var ErrProbeFailed = errors.New("media probe failed")

// ProbeError describes a failed probe
type ProbeError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ProbeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: %s returned status %d", ErrProbeFailed, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%v: %s: %v", ErrProbeFailed, e.URL, e.Err)
}

func (e *ProbeError) Is(target error) bool {
	return target == ErrProbeFailed
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
