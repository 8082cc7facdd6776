package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/altuslabsxyz/token-launcher/internal/application/launcher"
	"github.com/altuslabsxyz/token-launcher/internal/application/monitor"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
	"github.com/altuslabsxyz/token-launcher/internal/output"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

// Outcome values of createResult beyond the poll outcomes.
const (
	outcomeTriggered = "triggered"
	outcomeSimulated = "simulated"
	outcomeError     = "error"
)

// createResult is the structured result of create and watch.
type createResult struct {
	SubmissionID string           `json:"submission_id,omitempty" yaml:"submission_id,omitempty"`
	Mode         string           `json:"mode,omitempty" yaml:"mode,omitempty"`
	Outcome      string           `json:"outcome" yaml:"outcome"`
	Request      *token.Request   `json:"request,omitempty" yaml:"request,omitempty"`
	RunID        int64            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	RunURL       string           `json:"run_url,omitempty" yaml:"run_url,omitempty"`
	IssueNumber  int              `json:"issue_number,omitempty" yaml:"issue_number,omitempty"`
	Attempts     int              `json:"attempts,omitempty" yaml:"attempts,omitempty"`
	Artifacts    []artifactResult `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
	Token        *token.Result    `json:"token,omitempty" yaml:"token,omitempty"`
	Error        string           `json:"error,omitempty" yaml:"error,omitempty"`
}

type artifactResult struct {
	Name        string `json:"name" yaml:"name"`
	SizeInBytes int64  `json:"size_in_bytes" yaml:"size_in_bytes"`
	Expired     bool   `json:"expired,omitempty" yaml:"expired,omitempty"`
	DownloadURL string `json:"download_url,omitempty" yaml:"download_url,omitempty"`
}

// Succeeded reports whether the token was created, for real or in demo mode.
func (r *createResult) Succeeded() bool {
	switch r.Outcome {
	case monitor.OutcomeSuccess.String(), outcomeTriggered, outcomeSimulated:
		return true
	default:
		return false
	}
}

// triggeredResult describes a submission that is not awaited.
func triggeredResult(sub *launcher.Submission) *createResult {
	h := sub.Trigger.Handle
	return &createResult{
		SubmissionID: h.SubmissionID,
		Mode:         string(h.Kind),
		Outcome:      outcomeTriggered,
		Request:      &sub.Request,
		RunURL:       h.ActionsURL(),
		IssueNumber:  h.IssueNumber,
	}
}

// submissionResult describes a finished submission.
func submissionResult(sub *launcher.Submission) *createResult {
	if sub.Simulation != nil {
		res := sub.Simulation.Result()
		out := &createResult{Mode: "demo", Outcome: outcomeSimulated, Request: &sub.Request}
		if res.Cancelled {
			out.Outcome = monitor.OutcomeCancelled.String()
			return out
		}
		out.Token = &res.Token
		return out
	}

	out := pollResult(sub.Poll.Result())
	out.Request = &sub.Request
	return out
}

// pollResult converts a finished poll.
func pollResult(res monitor.Result) *createResult {
	h := res.Handle
	out := &createResult{
		SubmissionID: h.SubmissionID,
		Mode:         string(h.Kind),
		Outcome:      res.Outcome.String(),
		RunID:        h.RunID,
		IssueNumber:  h.IssueNumber,
		Attempts:     res.Attempts,
		Artifacts:    artifactResults(res.Artifacts),
	}
	if res.Run != nil {
		out.RunURL = res.Run.HTMLURL
	} else if h.Owner != "" && h.Repo != "" {
		out.RunURL = h.ActionsURL()
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func artifactResults(artifacts []workflow.Artifact) []artifactResult {
	if len(artifacts) == 0 {
		return nil
	}
	out := make([]artifactResult, len(artifacts))
	for i, a := range artifacts {
		out[i] = artifactResult{
			Name:        a.Name,
			SizeInBytes: a.SizeInBytes,
			Expired:     a.Expired,
			DownloadURL: a.DownloadURL,
		}
	}
	return out
}

// writeResult prints res on the command's stdout.
func writeResult(cmd *cobra.Command, format outputFormat, res *createResult) error {
	w := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(w, res)
		return nil
	}
}

func writeText(w io.Writer, res *createResult) {
	logger := output.NewLoggerTo(w, w)
	switch res.Outcome {
	case outcomeTriggered:
		logger.Success("Token creation requested")
	default:
		logger.Info("Outcome: %s", res.Outcome)
	}
	if res.SubmissionID != "" {
		logger.Field("Submission", res.SubmissionID)
	}
	if res.IssueNumber != 0 {
		logger.Field("Issue", fmt.Sprintf("#%d", res.IssueNumber))
	}
	if res.RunURL != "" {
		logger.Field("Runs", res.RunURL)
	}
	if res.SubmissionID != "" {
		logger.Info("\nFollow the run with: token-launcher watch --run-id <id>")
	}
}
