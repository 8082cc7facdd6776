// Package common provides error behaviours shared by every layer.
package common

import "errors"

// =============================================================================
// Error Behavior Interfaces
// =============================================================================
// The presentation layer (cobra commands, the status presenter) inspects these
// behaviours to decide how an error is shown. Domain and infrastructure errors
// opt in by implementing them.

// SilenceUsageError is implemented by errors that should NOT trigger
// CLI usage information: the command was used correctly but something
// else failed.
//
// Examples:
//   - The wallet provider is missing
//   - The automation repository does not exist
//   - A token field failed validation
type SilenceUsageError interface {
	error
	ShouldSilenceUsage() bool
}

// UserFacingError is implemented by errors that carry a message meant to be
// displayed to the user verbatim.
type UserFacingError interface {
	error
	UserMessage() string
}

// RecoverableError is implemented by errors that suggest a recovery action,
// such as an install link or a configuration key to set.
type RecoverableError interface {
	error
	RecoveryHint() string
}

// UnreachableError is implemented by transport failures: the remote never
// produced a response, as opposed to answering with an error status.
type UnreachableError interface {
	error
	Unreachable() bool
}

// =============================================================================
// Error Checking Utilities
// =============================================================================

// ShouldSilenceUsage reports whether any error in err's chain asks for usage
// output to be suppressed.
func ShouldSilenceUsage(err error) bool {
	var sue SilenceUsageError
	if errors.As(err, &sue) {
		return sue.ShouldSilenceUsage()
	}
	return false
}

// GetUserMessage extracts a user-friendly message from an error.
// Returns the UserMessage of the first UserFacingError in the chain,
// otherwise the standard Error() message.
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ufe UserFacingError
	if errors.As(err, &ufe) {
		return ufe.UserMessage()
	}
	return err.Error()
}

// GetRecoveryHint extracts a recovery hint from an error.
// Returns empty string if no hint is available.
func GetRecoveryHint(err error) string {
	var re RecoverableError
	if errors.As(err, &re) {
		return re.RecoveryHint()
	}
	return ""
}

// IsUnreachable reports whether err's chain contains an UnreachableError.
func IsUnreachable(err error) bool {
	var ue UnreachableError
	if errors.As(err, &ue) {
		return ue.Unreachable()
	}
	return false
}
