package ingest

import "errors"

// ErrSweepInProgress is returned when a sweep is requested while another runs
var ErrSweepInProgress = errors.New("sweep already in progress")
