// Package monitor follows a triggered workflow run until it completes, the
// attempt budget runs out, or a status fetch fails.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/application/task"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
	"github.com/altuslabsxyz/token-launcher/internal/output"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
)

// Defaults bound automatic monitoring to MaxAttempts * Interval.
const (
	DefaultInterval    = 10 * time.Second
	DefaultMaxAttempts = 30
)

// discoverySkew widens the run listing window to tolerate clock drift
// between this machine and the remote.
const discoverySkew = time.Minute

// Outcome is how polling ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
	OutcomeTimeout
	OutcomeError
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeError:
		return "error"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the terminal state of one poll.
type Result struct {
	Outcome   Outcome             `json:"outcome"`
	Handle    workflow.Handle     `json:"-"`
	Run       *workflow.Run       `json:"run,omitempty"`
	Artifacts []workflow.Artifact `json:"artifacts,omitempty"`
	Attempts  int                 `json:"attempts"`
	Err       error               `json:"-"`
}

// Task is a running poll.
type Task = task.Task[Result]

// Poller maps remote run state onto the presenter on a fixed interval.
type Poller struct {
	source      ports.RunSource
	presenter   presenter.Presenter
	clock       ports.Clock
	logger      ports.Logger
	interval    time.Duration
	maxAttempts int
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the delay before every tick.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithMaxAttempts sets the tick budget.
func WithMaxAttempts(n int) Option {
	return func(p *Poller) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithClock sets the clock that schedules ticks.
func WithClock(clock ports.Clock) Option {
	return func(p *Poller) {
		p.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(p *Poller) {
		p.logger = logger
	}
}

// NewPoller creates a Poller.
func NewPoller(source ports.RunSource, pres presenter.Presenter, opts ...Option) *Poller {
	p := &Poller{
		source:      source,
		presenter:   pres,
		clock:       ports.SystemClock{},
		logger:      ports.NopLogger{},
		interval:    DefaultInterval,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start polls h in the background.
func (p *Poller) Start(ctx context.Context, h workflow.Handle) *Task {
	return task.Start(ctx, func(ctx context.Context) Result {
		return p.Poll(ctx, h)
	})
}

// Poll blocks until h reaches a terminal state. Ticks are strictly
// sequential: the next delay starts only after the previous fetch returned.
func (p *Poller) Poll(ctx context.Context, h workflow.Handle) Result {
	p.presenter.Show(presenter.Progress("Workflow triggered, waiting for the run to start..."))

	var last *workflow.Run
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return p.cancelled(h, last, attempt-1)
		case <-p.clock.After(p.interval):
		}
		if ctx.Err() != nil {
			return p.cancelled(h, last, attempt-1)
		}

		run, err := p.fetch(ctx, &h)
		if err != nil {
			if ctx.Err() != nil {
				return p.cancelled(h, last, attempt)
			}
			p.logger.Debug("Status fetch failed on attempt %d: %v", attempt, err)
			p.presenter.Show(presenter.Error("Failed to check workflow status", err).WithLink(runURL(h, last)))
			return Result{Outcome: OutcomeError, Handle: h, Run: last, Attempts: attempt, Err: err}
		}

		if run == nil {
			p.presenter.Show(presenter.Progress("Workflow queued, waiting for a runner..."))
			continue
		}
		last = run

		if run.State() == workflow.StatusCompleted {
			if run.Succeeded() {
				return p.succeeded(ctx, h, run, attempt)
			}
			p.presenter.Show(presenter.Status{
				Kind:    presenter.KindError,
				Title:   "Token creation failed",
				Message: fmt.Sprintf("The workflow finished with conclusion %q.", conclusionOrUnknown(run)),
				Hint:    "Open the run logs for details.",
				Link:    runURL(h, run),
			})
			return Result{Outcome: OutcomeFailure, Handle: h, Run: run, Attempts: attempt}
		}

		p.presenter.Show(presenter.Progress(run.Describe()))
	}

	p.presenter.Show(presenter.Warning(
		"Still waiting for the workflow",
		fmt.Sprintf("Stopped monitoring after %d checks. The run may still finish; check it manually.", p.maxAttempts),
	).WithLink(runURL(h, last)))
	return Result{Outcome: OutcomeTimeout, Handle: h, Run: last, Attempts: p.maxAttempts}
}

// fetch performs the single request of a tick. It returns nil, nil while
// the run has not been discovered yet.
func (p *Poller) fetch(ctx context.Context, h *workflow.Handle) (*workflow.Run, error) {
	if h.HasRun() {
		return p.source.GetRun(ctx, h.RunID)
	}

	q := ports.RunQuery{Workflow: h.Workflow, Event: h.Kind.Event()}
	if !h.TriggeredAt.IsZero() {
		q.CreatedAfter = h.TriggeredAt.Add(-discoverySkew)
	}
	runs, err := p.source.ListRuns(ctx, q)
	if err != nil {
		return nil, err
	}

	run, matched := discover(runs, *h)
	if run != nil {
		h.RunID = run.ID
		if matched {
			p.logger.Debug("Discovered run %d for submission %s", run.ID, h.SubmissionID)
		} else {
			p.logger.Warn("No run is titled with submission %s, following the newest untagged run %d", h.SubmissionID, run.ID)
		}
	}
	return run, nil
}

// discover picks the run belonging to h from a newest-first listing: the
// run titled with the submission id, else the newest created since the
// trigger whose title carries no other submission id. matched reports
// whether the id matched.
func discover(runs []workflow.Run, h workflow.Handle) (run *workflow.Run, matched bool) {
	if h.SubmissionID != "" {
		for i := range runs {
			if strings.Contains(runs[i].DisplayTitle, h.SubmissionID) {
				return &runs[i], true
			}
		}
	}

	var newest *workflow.Run
	for i := range runs {
		r := &runs[i]
		if !h.TriggeredAt.IsZero() && r.CreatedAt.Before(h.TriggeredAt.Add(-discoverySkew)) {
			continue
		}
		if taggedElsewhere(r.DisplayTitle) {
			continue
		}
		if newest == nil || r.CreatedAt.After(newest.CreatedAt) {
			newest = r
		}
	}
	return newest, false
}

// taggedElsewhere reports whether title carries a submission id. Callers
// only ask after their own id failed to match.
func taggedElsewhere(title string) bool {
	for _, word := range strings.Fields(title) {
		if _, err := uuid.Parse(word); err == nil {
			return true
		}
	}
	return false
}

func (p *Poller) succeeded(ctx context.Context, h workflow.Handle, run *workflow.Run, attempt int) Result {
	p.presenter.Show(presenter.Progress("Workflow completed, fetching results..."))

	res := Result{Outcome: OutcomeSuccess, Handle: h, Run: run, Attempts: attempt}
	status := presenter.Success("Token created", "The workflow completed successfully.")

	if h.Request.Symbol != "" {
		status.Fields = append(status.Fields,
			presenter.Field{Label: "Token", Value: fmt.Sprintf("%s (%s)", h.Request.Name, h.Request.Symbol)},
			presenter.Field{Label: "Network", Value: h.Request.Network.String()},
		)
	}

	artifacts, err := p.source.ListArtifacts(ctx, run.ID)
	if err != nil {
		// The token exists either way; only the summary is incomplete.
		p.logger.Warn("Failed to list artifacts for run %d: %v", run.ID, err)
		status.Fields = append(status.Fields, presenter.Field{Label: "Artifacts", Value: "unavailable"})
	}
	res.Artifacts = artifacts
	for _, a := range artifacts {
		status.Fields = append(status.Fields, presenter.Field{
			Label: "Artifact",
			Value: fmt.Sprintf("%s (%s)", a.Name, output.FormatBytes(a.SizeInBytes)),
		})
	}
	if len(artifacts) > 0 {
		status.Hint = "Download the artifacts from the run page for the mint address and metadata."
	}

	p.presenter.Show(status.WithLink(runURL(h, run)))
	return res
}

func (p *Poller) cancelled(h workflow.Handle, last *workflow.Run, attempts int) Result {
	p.logger.Debug("Stopped monitoring after %d attempts", attempts)
	return Result{Outcome: OutcomeCancelled, Handle: h, Run: last, Attempts: attempts}
}

func runURL(h workflow.Handle, run *workflow.Run) string {
	if run != nil && run.HTMLURL != "" {
		return run.HTMLURL
	}
	if h.Owner == "" || h.Repo == "" {
		return ""
	}
	return h.ActionsURL()
}

func conclusionOrUnknown(run *workflow.Run) string {
	if run.Conclusion == "" {
		return "unknown"
	}
	return string(run.Conclusion)
}
