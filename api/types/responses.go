package types

import "github.com/killallgit/podcast-sync/internal/services/ingest"

// Status constants for API responses
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusAccepted = "accepted"
	StatusRunning  = "running"
	StatusIdle     = "idle"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// SinglePodcastResponse for getting a single podcast
type SinglePodcastResponse struct {
	BaseResponse
	Podcast *Podcast `json:"podcast"`
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []Episode `json:"episodes"`
	Count    int       `json:"count"`           // Number of results in this response
	Total    int64     `json:"total,omitempty"` // Total stored for the podcast
	Page     int       `json:"page"`
}

// SyncResponse for a single podcast sync
type SyncResponse struct {
	BaseResponse
	Report ingest.SyncReport `json:"report"`
}

// SweepAcceptedResponse for a sweep started in the background
type SweepAcceptedResponse struct {
	BaseResponse
	RunID string `json:"runId"`
}

// SweepStatusResponse reports whether a sweep runs and how the last one went
type SweepStatusResponse struct {
	BaseResponse
	Running   bool                `json:"running"`
	LastSweep *ingest.SweepReport `json:"lastSweep,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
