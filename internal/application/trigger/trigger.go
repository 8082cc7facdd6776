// Package trigger starts the remote token creation workflow for a
// validated request.
package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// IssueLabel is attached to issues opened in issue mode.
const IssueLabel = "token-creation"

// OutcomeKind classifies a trigger attempt.
type OutcomeKind int

const (
	// OutcomeStarted means the remote accepted the request; poll the handle.
	OutcomeStarted OutcomeKind = iota
	// OutcomeFailed means the remote answered with an error status, or the
	// caller cancelled. Nothing else should happen for this submission.
	OutcomeFailed
	// OutcomeSimulated means the remote could not be reached; the caller
	// should play the local simulation instead.
	OutcomeSimulated
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeStarted:
		return "started"
	case OutcomeFailed:
		return "failed"
	case OutcomeSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// Outcome is the result of Trigger.
type Outcome struct {
	Kind   OutcomeKind
	Handle workflow.Handle
	// Err is set for OutcomeFailed, and holds the transport failure for
	// OutcomeSimulated.
	Err error
}

// Config selects the repository and trigger mode.
type Config struct {
	Owner    string
	Repo     string
	Workflow string
	Ref      string
	Kind     workflow.TriggerKind
}

// Client issues exactly one outbound call per Trigger.
type Client struct {
	dispatcher ports.Dispatcher
	cfg        Config
	clock      ports.Clock
	logger     ports.Logger
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithClock sets the clock used to stamp the trigger time.
func WithClock(clock ports.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithIDGenerator overrides submission id generation.
func WithIDGenerator(fn func() string) Option {
	return func(c *Client) {
		c.newID = fn
	}
}

// NewClient creates a trigger client.
func NewClient(dispatcher ports.Dispatcher, cfg Config, opts ...Option) *Client {
	if cfg.Kind == "" {
		cfg.Kind = workflow.TriggerDispatch
	}
	c := &Client{
		dispatcher: dispatcher,
		cfg:        cfg,
		clock:      ports.SystemClock{},
		logger:     ports.NopLogger{},
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Trigger serializes req and sends it.
func (c *Client) Trigger(ctx context.Context, req token.Request) Outcome {
	h := workflow.Handle{
		Owner:        c.cfg.Owner,
		Repo:         c.cfg.Repo,
		Workflow:     c.cfg.Workflow,
		Kind:         c.cfg.Kind,
		SubmissionID: c.newID(),
		Request:      req,
		TriggeredAt:  c.clock.Now(),
	}

	var err error
	switch c.cfg.Kind {
	case workflow.TriggerIssue:
		err = c.openIssue(ctx, &h)
	default:
		err = c.dispatch(ctx, h)
	}

	if err == nil {
		c.logger.Debug("Triggered %s for %s (submission %s)", c.cfg.Kind, req.Symbol, h.SubmissionID)
		return Outcome{Kind: OutcomeStarted, Handle: h}
	}

	if ctx.Err() == nil && common.IsUnreachable(err) {
		c.logger.Debug("Remote unreachable, switching to simulation: %v", err)
		return Outcome{Kind: OutcomeSimulated, Handle: h, Err: err}
	}
	return Outcome{Kind: OutcomeFailed, Handle: h, Err: err}
}

func (c *Client) dispatch(ctx context.Context, h workflow.Handle) error {
	inputs := h.Request.Inputs()
	inputs["submission_id"] = h.SubmissionID
	return c.dispatcher.DispatchWorkflow(ctx, c.cfg.Workflow, c.cfg.Ref, inputs)
}

func (c *Client) openIssue(ctx context.Context, h *workflow.Handle) error {
	body, err := IssueBody(h.Request, h.SubmissionID)
	if err != nil {
		return err
	}
	issue, err := c.dispatcher.OpenIssue(ctx, IssueTitle(h.Request), body, []string{IssueLabel})
	if err != nil {
		return err
	}
	if issue == nil {
		return errors.New("issue creation returned no issue")
	}
	h.IssueNumber = issue.Number
	return nil
}

// IssueTitle is the title of an issue-mode request.
func IssueTitle(req token.Request) string {
	return fmt.Sprintf("Create Token: %s (%s)", req.Name, req.Symbol)
}

// issuePayload is the JSON document embedded in the issue body.
type issuePayload struct {
	token.Request
	SubmissionID string `json:"submission_id"`
}

// IssueBody renders req as the fenced JSON block the workflow parses.
func IssueBody(req token.Request, submissionID string) (string, error) {
	data, err := json.MarshalIndent(issuePayload{Request: req, SubmissionID: submissionID}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	return fmt.Sprintf("Token creation request from %s.\n\n```json\n%s\n```\n", req.WalletAddress, data), nil
}
