package github

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// GitHub API Errors
// =============================================================================
// These error types implement the behaviour interfaces from domain/common so
// the presentation layer can show them without knowing about HTTP.
// HTTP-status errors are surfaced as-is; only NetworkError (no response at
// all) is treated as a connectivity problem by callers.

// AuthenticationError indicates the API refused the request (401, or 403
// without rate limiting).
type AuthenticationError struct {
	StatusCode int
	Message    string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ShouldSilenceUsage returns true because authentication errors
// don't indicate incorrect command usage.
func (e *AuthenticationError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the user-friendly error message.
func (e *AuthenticationError) UserMessage() string {
	return e.Message
}

// RecoveryHint returns actionable steps to fix the issue.
func (e *AuthenticationError) RecoveryHint() string {
	return "Point api_url at a relay that holds the repository credentials, or ask the repository owner to grant access."
}

// NotFoundError indicates the repository or workflow was not found (404).
type NotFoundError struct {
	Owner   string
	Repo    string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ShouldSilenceUsage returns true because a missing repository is a
// configuration problem, not a usage problem.
func (e *NotFoundError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the user-friendly error message.
func (e *NotFoundError) UserMessage() string {
	return e.Message
}

// RecoveryHint returns actionable steps to fix the issue.
func (e *NotFoundError) RecoveryHint() string {
	return fmt.Sprintf(`Check that %s/%s exists and contains the token creation workflow.
  Set the repository with one of:
     - owner / repo keys in config.toml
     - TOKEN_LAUNCHER_OWNER and TOKEN_LAUNCHER_REPO environment variables
     - --owner / --repo flags`, e.Owner, e.Repo)
}

// RateLimitError indicates rate limiting (403/429 with no remaining quota).
type RateLimitError struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

func (e *RateLimitError) Error() string {
	if e.Reset.IsZero() {
		return "GitHub API rate limit exceeded"
	}
	return fmt.Sprintf("GitHub API rate limit exceeded. Reset at %s", e.Reset.Format(time.RFC1123))
}

// ShouldSilenceUsage returns true because rate limit errors
// don't indicate incorrect command usage.
func (e *RateLimitError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the user-friendly error message.
func (e *RateLimitError) UserMessage() string {
	return e.Error()
}

// RecoveryHint returns actionable steps to fix the issue.
func (e *RateLimitError) RecoveryHint() string {
	if !e.Reset.IsZero() {
		return fmt.Sprintf("Wait until %s and try again.", e.Reset.Format(time.RFC1123))
	}
	return "Wait a few minutes and try again."
}

// ValidationFailedError indicates the API rejected the payload (422), for
// example a workflow without a workflow_dispatch trigger.
type ValidationFailedError struct {
	Message string
}

func (e *ValidationFailedError) Error() string {
	return "GitHub rejected the request: " + e.Message
}

func (e *ValidationFailedError) ShouldSilenceUsage() bool {
	return true
}

func (e *ValidationFailedError) UserMessage() string {
	return e.Error()
}

// RecoveryHint returns actionable steps to fix the issue.
func (e *ValidationFailedError) RecoveryHint() string {
	return "Make sure the workflow declares a workflow_dispatch trigger with the token inputs."
}

// APIError is any other non-success HTTP status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d - %s", e.StatusCode, e.Body)
}

func (e *APIError) ShouldSilenceUsage() bool {
	return true
}

// NetworkError indicates the request never produced an HTTP response:
// DNS failure, refused connection, TLS failure, reset.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ShouldSilenceUsage returns true because network errors
// don't indicate incorrect command usage.
func (e *NetworkError) ShouldSilenceUsage() bool {
	return true
}

// UserMessage returns the user-friendly error message.
func (e *NetworkError) UserMessage() string {
	return e.Message
}

// RecoveryHint returns actionable steps to fix the issue.
func (e *NetworkError) RecoveryHint() string {
	return "Check your internet connection and try again."
}

// Unreachable returns true: no response was received.
func (e *NetworkError) Unreachable() bool {
	return true
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
