package episodes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrDateParse       = errors.New("unparseable published date")
	ErrPersistence     = errors.New("episode persistence failed")
)

// NotFoundError represents an error when an episode is not found
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("episode with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrEpisodeNotFound
}

// DateParseError reports a publish date that could not be read
type DateParseError struct {
	Value string
}

func (e DateParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrDateParse, e.Value)
}

func (e DateParseError) Is(target error) bool {
	return target == ErrDateParse
}

// PersistenceError wraps a storage rejection while writing an episode.
// It is the only error that aborts processing of a feed item.
type PersistenceError struct {
	Op    string // create, update, lookup
	Title string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s episode %q: %v", e.Op, e.Title, e.Err)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(id interface{}) error {
	return NotFoundError{ID: id}
}

func newPersistenceError(op, title string, err error) error {
	return &PersistenceError{Op: op, Title: title, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEpisodeNotFound)
}
