// Package github provides the infrastructure adapter for the GitHub REST API.
package github

import (
	"context"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// Adapter implements ports.Dispatcher and ports.RunSource using the Client.
type Adapter struct {
	client *Client
}

// NewAdapter wraps client.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// DispatchWorkflow implements ports.Dispatcher.
func (a *Adapter) DispatchWorkflow(ctx context.Context, workflow, ref string, inputs map[string]string) error {
	return a.client.DispatchWorkflow(ctx, workflow, ref, inputs)
}

// OpenIssue implements ports.Dispatcher.
func (a *Adapter) OpenIssue(ctx context.Context, title, body string, labels []string) (*ports.IssueResult, error) {
	issue, err := a.client.CreateIssue(ctx, title, body, labels)
	if err != nil {
		return nil, err
	}
	return &ports.IssueResult{Number: issue.Number, HTMLURL: issue.HTMLURL}, nil
}

// ListRuns implements ports.RunSource.
func (a *Adapter) ListRuns(ctx context.Context, q ports.RunQuery) ([]workflow.Run, error) {
	runs, err := a.client.ListWorkflowRuns(ctx, q.Workflow, q.Event, q.CreatedAfter)
	if err != nil {
		return nil, err
	}
	result := make([]workflow.Run, len(runs))
	for i, r := range runs {
		result[i] = convertRun(r)
	}
	return result, nil
}

// GetRun implements ports.RunSource.
func (a *Adapter) GetRun(ctx context.Context, runID int64) (*workflow.Run, error) {
	run, err := a.client.GetWorkflowRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	converted := convertRun(*run)
	return &converted, nil
}

// ListArtifacts implements ports.RunSource.
func (a *Adapter) ListArtifacts(ctx context.Context, runID int64) ([]workflow.Artifact, error) {
	artifacts, err := a.client.ListRunArtifacts(ctx, runID)
	if err != nil {
		return nil, err
	}
	result := make([]workflow.Artifact, len(artifacts))
	for i, art := range artifacts {
		result[i] = workflow.Artifact{
			ID:          art.ID,
			Name:        art.Name,
			SizeInBytes: art.SizeInBytes,
			DownloadURL: art.ArchiveDownloadURL,
			Expired:     art.Expired,
			CreatedAt:   art.CreatedAt,
		}
	}
	return result, nil
}

// convertRun converts an API run to the domain run.
func convertRun(r WorkflowRun) workflow.Run {
	run := workflow.Run{
		ID:           r.ID,
		Name:         r.Name,
		DisplayTitle: r.DisplayTitle,
		RawStatus:    r.Status,
		HTMLURL:      r.HTMLURL,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Conclusion != nil {
		run.Conclusion = workflow.Conclusion(*r.Conclusion)
	}
	return run
}

var (
	_ ports.Dispatcher = (*Adapter)(nil)
	_ ports.RunSource  = (*Adapter)(nil)
)
