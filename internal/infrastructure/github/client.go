package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIBaseURL is the base URL for GitHub API.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultPerPage is the page size used for run listings.
	DefaultPerPage = 20

	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 30 * time.Second

	apiVersion       = "2022-11-28"
	defaultUserAgent = "token-launcher"
)

// RateLimitInfo contains GitHub API rate limit information.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Client is a GitHub REST client scoped to one repository. It only issues
// the calls the launcher needs: issue creation, workflow dispatch, run and
// artifact reads. It never attaches credentials of its own.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	userAgent  string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithOwnerRepo sets the repository owner and name.
func WithOwnerRepo(owner, repo string) ClientOption {
	return func(c *Client) {
		c.owner = owner
		c.repo = repo
	}
}

// WithBaseURL overrides the API base URL, e.g. to route through a relay
// that injects server-side credentials.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a new GitHub API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultAPIBaseURL,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Owner returns the repository owner.
func (c *Client) Owner() string { return c.owner }

// Repo returns the repository name.
func (c *Client) Repo() string { return c.repo }

// CreateIssue opens an issue in the repository.
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (*Issue, error) {
	payload := issueRequest{Title: title, Body: body, Labels: labels}

	var issue Issue
	if err := c.do(ctx, http.MethodPost, c.repoPath("issues"), nil, payload, &issue, http.StatusCreated); err != nil {
		return nil, err
	}
	return &issue, nil
}

// DispatchWorkflow triggers a workflow_dispatch event for workflow (file
// name or numeric id) at ref. GitHub answers 204 with no body.
func (c *Client) DispatchWorkflow(ctx context.Context, workflow, ref string, inputs map[string]string) error {
	payload := dispatchRequest{Ref: ref, Inputs: inputs}
	path := c.repoPath("actions", "workflows", workflow, "dispatches")
	return c.do(ctx, http.MethodPost, path, nil, payload, nil, http.StatusNoContent)
}

// ListWorkflowRuns lists the most recent runs, newest first. When workflow is
// empty the repository-wide listing is used.
func (c *Client) ListWorkflowRuns(ctx context.Context, workflow, event string, createdAfter time.Time) ([]WorkflowRun, error) {
	path := c.repoPath("actions", "runs")
	if workflow != "" {
		path = c.repoPath("actions", "workflows", workflow, "runs")
	}

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(DefaultPerPage))
	if event != "" {
		query.Set("event", event)
	}
	if !createdAfter.IsZero() {
		query.Set("created", ">="+createdAfter.UTC().Format(time.RFC3339))
	}

	var list workflowRunList
	if err := c.do(ctx, http.MethodGet, path, query, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.WorkflowRuns, nil
}

// GetWorkflowRun fetches a single run.
func (c *Client) GetWorkflowRun(ctx context.Context, runID int64) (*WorkflowRun, error) {
	var run WorkflowRun
	path := c.repoPath("actions", "runs", strconv.FormatInt(runID, 10))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &run, http.StatusOK); err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRunArtifacts lists the artifacts uploaded by a run.
func (c *Client) ListRunArtifacts(ctx context.Context, runID int64) ([]Artifact, error) {
	var list artifactList
	path := c.repoPath("actions", "runs", strconv.FormatInt(runID, 10), "artifacts")
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Artifacts, nil
}

func (c *Client) repoPath(elem ...string) string {
	parts := []string{"repos", url.PathEscape(c.owner), url.PathEscape(c.repo)}
	for _, e := range elem {
		parts = append(parts, url.PathEscape(e))
	}
	return "/" + strings.Join(parts, "/")
}

// do performs one request and classifies the outcome. Transport failures
// become *NetworkError; HTTP statuses other than want become typed errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}, want int) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A cancelled caller is not a connectivity problem.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &NetworkError{
			Message: fmt.Sprintf("could not reach %s: %v", c.baseURL, unwrapURLError(err)),
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// statusError maps a non-success response onto the typed errors.
func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	message := strings.TrimSpace(string(body))
	var doc apiErrorBody
	if json.Unmarshal(body, &doc) == nil && doc.Message != "" {
		message = doc.Message
	}

	rateLimit := parseRateLimitHeaders(resp)

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &RateLimitError{Limit: rateLimit.Limit, Remaining: rateLimit.Remaining, Reset: rateLimit.Reset}
	case http.StatusForbidden:
		if rateLimit.Limit > 0 && rateLimit.Remaining == 0 {
			return &RateLimitError{Limit: rateLimit.Limit, Remaining: rateLimit.Remaining, Reset: rateLimit.Reset}
		}
		return &AuthenticationError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Access to %s/%s was denied: %s", c.owner, c.repo, message),
		}
	case http.StatusUnauthorized:
		return &AuthenticationError{
			StatusCode: resp.StatusCode,
			Message:    "GitHub authentication failed. The request needs repository credentials.",
		}
	case http.StatusNotFound:
		return &NotFoundError{
			Owner:   c.owner,
			Repo:    c.repo,
			Message: fmt.Sprintf("Repository not found: %s/%s (or the workflow does not exist)", c.owner, c.repo),
		}
	case http.StatusUnprocessableEntity:
		return &ValidationFailedError{Message: message}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: message}
	}
}

// parseRateLimitHeaders extracts rate limit info from response headers.
func parseRateLimitHeaders(resp *http.Response) *RateLimitInfo {
	info := &RateLimitInfo{}

	if limit := resp.Header.Get("X-RateLimit-Limit"); limit != "" {
		info.Limit, _ = strconv.Atoi(limit)
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		info.Remaining, _ = strconv.Atoi(remaining)
	}

	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		resetUnix, _ := strconv.ParseInt(reset, 10, 64)
		info.Reset = time.Unix(resetUnix, 0)
	}

	return info
}

// unwrapURLError strips the "Post \"...\":" prefix url.Error adds.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
