package workflow

import (
	"fmt"
	"time"
)

// Status is the lifecycle state reported for a run.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a raw remote status string onto Status. Waiting-type
// states collapse to StatusQueued; anything unrecognised is StatusUnknown.
func ParseStatus(raw string) Status {
	switch raw {
	case "queued", "requested", "waiting", "pending":
		return StatusQueued
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// Conclusion is the outcome of a completed run.
type Conclusion string

const ConclusionSuccess Conclusion = "success"

// Run is a snapshot of a remote run.
type Run struct {
	ID           int64
	Name         string
	DisplayTitle string
	RawStatus    string
	Conclusion   Conclusion
	HTMLURL      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// State returns the mapped status of the run.
func (r Run) State() Status {
	return ParseStatus(r.RawStatus)
}

// Succeeded reports whether the run completed with a success conclusion.
func (r Run) Succeeded() bool {
	return r.State() == StatusCompleted && r.Conclusion == ConclusionSuccess
}

// Describe returns the progress line shown for a non-terminal run.
func (r Run) Describe() string {
	switch r.State() {
	case StatusQueued:
		return "Workflow queued, waiting for a runner..."
	case StatusInProgress:
		return "Creating token..."
	case StatusCompleted:
		return fmt.Sprintf("Workflow completed: %s", r.Conclusion)
	default:
		return fmt.Sprintf("Status: %s", r.RawStatus)
	}
}

// Artifact is a named output bundle produced by a completed run.
type Artifact struct {
	ID          int64
	Name        string
	SizeInBytes int64
	DownloadURL string
	Expired     bool
	CreatedAt   time.Time
}
