// Package wallet adapts a wallet provider capability into a single session
// value: the connected public key, or none.
//
// The provider is consumed, never implemented for signing: this package only
// learns which public key the user chose to connect.
package wallet

import "context"

// Event is a provider event name.
type Event string

const (
	EventConnect    Event = "connect"
	EventDisconnect Event = "disconnect"
)

// Handler receives provider events. publicKey is empty for EventDisconnect.
type Handler func(publicKey string)

// Unsubscribe removes a handler. Calling it more than once is a no-op.
type Unsubscribe func()

// ConnectOptions controls a connect request.
type ConnectOptions struct {
	// OnlyIfTrusted asks for a silent reconnect: the provider must not
	// prompt and fails if the user has not already trusted this app.
	OnlyIfTrusted bool
}

// Provider is the wallet capability.
type Provider interface {
	// Name is the provider's display name.
	Name() string
	// Connect returns the base58 public key the user connected.
	Connect(ctx context.Context, opts ConnectOptions) (string, error)
	Disconnect(ctx context.Context) error
	// On registers h for event and returns a handle that removes it.
	On(event Event, h Handler) Unsubscribe
}

// Approver asks the user to approve an interactive connect.
type Approver func(ctx context.Context, provider, publicKey string) (bool, error)
