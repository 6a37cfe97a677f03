package feeds

import (
	"errors"
	"fmt"
)

// Error kinds reported by the fetcher
var (
	ErrInvalidSource = errors.New("invalid feed source")
	ErrFetchFailed   = errors.New("feed fetch failed")
	ErrParse         = errors.New("feed parse failed")
)

// FetchError describes why a feed could not be turned into items
type FetchError struct {
	Kind       error // one of ErrInvalidSource, ErrFetchFailed, ErrParse
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%v: %s returned status %d", e.Kind, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("%v: %s", e.Kind, e.URL)
	}
}

func (e *FetchError) Is(target error) bool {
	return target == e.Kind
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(kind error, url string, err error) *FetchError {
	return &FetchError{Kind: kind, URL: url, Err: err}
}

// Kind returns a short label for err, suitable for logs and metric labels
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidSource):
		return "invalid_source"
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrFetchFailed):
		return "fetch_failed"
	default:
		return "unknown"
	}
}
