package ingest

import (
	"time"
)

// Item outcomes, also used as metric labels
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

// SyncReport is the outcome of syncing one podcast
type SyncReport struct {
	PodcastID      uint          `json:"podcast_id"`
	FeedURL        string        `json:"feed_url"`
	ItemsSeen      int           `json:"items_seen"` // every item in the feed, including those past the limit
	ItemsProcessed int           `json:"items_processed"`
	Created        int           `json:"created"`
	Updated        int           `json:"updated"`
	Skipped        int           `json:"skipped"`
	Failed         int           `json:"failed"`
	Err            error         `json:"-"`
	Error          string        `json:"error,omitempty"`
	Duration       time.Duration `json:"duration_ns"`
}

// OK reports whether the feed was fetched and walked to the end
func (r SyncReport) OK() bool {
	return r.Err == nil
}

func (r *SyncReport) count(outcome string) {
	switch outcome {
	case OutcomeCreated:
		r.Created++
	case OutcomeUpdated:
		r.Updated++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

func (r *SyncReport) fail(err error) {
	r.Err = err
	if err != nil {
		r.Error = err.Error()
	}
}

// SweepReport aggregates one pass over every podcast
type SweepReport struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration_ns"`
	Podcasts       int           `json:"podcasts"`
	FailedPodcasts int           `json:"failed_podcasts"`
	Items          int           `json:"items"`
	Created        int           `json:"created"`
	Updated        int           `json:"updated"`
	FailedItems    int           `json:"failed_items"`
	Cancelled      bool          `json:"cancelled"`
	Error          string        `json:"error,omitempty"`
	Reports        []SyncReport  `json:"reports,omitempty"`
}

func (s *SweepReport) add(r SyncReport) {
	s.Reports = append(s.Reports, r)
	s.Podcasts++
	if !r.OK() {
		s.FailedPodcasts++
	}
	s.Items += r.ItemsSeen
	s.Created += r.Created
	s.Updated += r.Updated
	s.FailedItems += r.Failed
}
