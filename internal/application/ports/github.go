package ports

import (
	"context"
	"time"

	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// IssueResult is returned by OpenIssue.
type IssueResult struct {
	Number  int
	HTMLURL string
}

// Dispatcher starts remote automation runs. Each method issues exactly one
// network call.
type Dispatcher interface {
	// DispatchWorkflow requests a workflow_dispatch run of workflow at ref.
	DispatchWorkflow(ctx context.Context, workflow, ref string, inputs map[string]string) error

	// OpenIssue creates an issue whose creation triggers the workflow.
	OpenIssue(ctx context.Context, title, body string, labels []string) (*IssueResult, error)
}

// RunQuery narrows a run listing.
type RunQuery struct {
	Workflow string
	Event    string
	// CreatedAfter filters out runs created before this instant. Zero disables it.
	CreatedAfter time.Time
}

// RunSource reads remote run state.
type RunSource interface {
	ListRuns(ctx context.Context, q RunQuery) ([]workflow.Run, error)
	GetRun(ctx context.Context, runID int64) (*workflow.Run, error)
	ListArtifacts(ctx context.Context, runID int64) ([]workflow.Artifact, error)
}
