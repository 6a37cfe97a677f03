package podcasts

import (
	"errors"
	"fmt"
)

// ErrPodcastNotFound is returned when a lookup matches no podcast
var ErrPodcastNotFound = errors.New("podcast not found")

// NotFoundError carries the identifier that matched nothing
type NotFoundError struct {
	ID interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("podcast with identifier %v not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrPodcastNotFound
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPodcastNotFound)
}
