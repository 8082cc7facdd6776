// Package presenter owns the single status display region. Every update
// replaces the previous one: there is no history and no stacking.
package presenter

import (
	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
)

// Kind is one of the four mutually exclusive visual states.
type Kind int

const (
	KindProgress Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindProgress:
		return "progress"
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the kind ends a submission.
func (k Kind) IsTerminal() bool {
	return k != KindProgress
}

// Field is a labelled value shown under the message.
type Field struct {
	Label string
	Value string
}

// Status is the content of the display region.
type Status struct {
	Kind    Kind
	Title   string
	Message string
	Hint    string
	Link    string
	Fields  []Field
	// Demo marks content fabricated by simulation mode.
	Demo bool
}

// Progress builds a progress status.
func Progress(message string) Status {
	return Status{Kind: KindProgress, Message: message}
}

// Success builds a success status.
func Success(title, message string, fields ...Field) Status {
	return Status{Kind: KindSuccess, Title: title, Message: message, Fields: fields}
}

// Warning builds a warning status.
func Warning(title, message string) Status {
	return Status{Kind: KindWarning, Title: title, Message: message}
}

// Error builds an error status from err, using its user message and
// recovery hint when it provides them.
func Error(title string, err error) Status {
	return Status{
		Kind:    KindError,
		Title:   title,
		Message: common.GetUserMessage(err),
		Hint:    common.GetRecoveryHint(err),
	}
}

// WithLink returns s with a link attached.
func (s Status) WithLink(link string) Status {
	s.Link = link
	return s
}
