// Package workflow models a remote automation run started for a token
// request: the handle used to find it and the states it reports.
package workflow

import (
	"fmt"
	"time"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

// TriggerKind identifies how the run was requested.
type TriggerKind string

const (
	TriggerDispatch TriggerKind = "dispatch"
	TriggerIssue    TriggerKind = "issue"
)

// ParseTriggerKind parses a trigger mode; empty selects TriggerDispatch.
func ParseTriggerKind(s string) (TriggerKind, error) {
	switch TriggerKind(s) {
	case "", TriggerDispatch:
		return TriggerDispatch, nil
	case TriggerIssue:
		return TriggerIssue, nil
	default:
		return "", fmt.Errorf("unknown trigger mode %q: must be dispatch or issue", s)
	}
}

// Event returns the workflow run event name produced by this trigger kind.
func (k TriggerKind) Event() string {
	if k == TriggerIssue {
		return "issues"
	}
	return "workflow_dispatch"
}

// Handle identifies a triggered run. It is owned by a single poller for the
// lifetime of monitoring.
type Handle struct {
	Owner        string
	Repo         string
	Workflow     string
	Kind         TriggerKind
	SubmissionID string
	Request      token.Request
	TriggeredAt  time.Time

	// RunID is zero until the run has been discovered.
	RunID int64
	// IssueNumber is set for TriggerIssue handles.
	IssueNumber int
}

// HasRun reports whether the run id is known.
func (h Handle) HasRun() bool {
	return h.RunID != 0
}

// ActionsURL is the repository's Actions page, used when no run URL is known.
func (h Handle) ActionsURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/actions", h.Owner, h.Repo)
}
