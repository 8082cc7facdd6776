package wallet

import (
	"context"
	"errors"
	"sync"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

// State is a snapshot of the session.
type State struct {
	Address string
	Network token.Network
}

// Connected reports whether a public key is held.
func (s State) Connected() bool {
	return s.Address != ""
}

// Session tracks the single "connected public key or none" value. It is an
// explicit object: create one per page/program run and hand it to whatever
// needs it.
type Session struct {
	provider   Provider
	installURL string
	logger     ports.Logger

	// notifyMu serialises updates with their notifications so listeners
	// observe changes in the order they were applied.
	notifyMu sync.Mutex

	mu        sync.Mutex
	state     State
	nextID    int
	listeners map[int]func(State)
	unsubs    []Unsubscribe
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used for suppressed failures.
func WithLogger(logger ports.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithInstallURL overrides the link offered when no provider exists.
func WithInstallURL(url string) SessionOption {
	return func(s *Session) {
		s.installURL = url
	}
}

// NewSession creates a disconnected session on provider (nil when no
// compatible provider is present) and binds the provider's connect and
// disconnect events once.
func NewSession(provider Provider, network token.Network, opts ...SessionOption) *Session {
	s := &Session{
		provider:  provider,
		logger:    ports.NopLogger{},
		state:     State{Network: network},
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if provider != nil {
		s.unsubs = append(s.unsubs,
			provider.On(EventConnect, func(publicKey string) { s.setAddress(publicKey) }),
			provider.On(EventDisconnect, func(string) { s.reset() }),
		)
	}
	return s
}

// ConnectSilently attempts a non-interactive reconnect. It never prompts;
// failures are logged at debug level and reported as not connected.
func (s *Session) ConnectSilently(ctx context.Context) (string, bool) {
	if s.provider == nil {
		return "", false
	}

	publicKey, err := s.provider.Connect(ctx, ConnectOptions{OnlyIfTrusted: true})
	if err != nil {
		if !errors.Is(err, ErrNotTrusted) {
			s.logger.Debug("Silent wallet reconnect failed: %v", err)
		}
		return "", false
	}

	s.setAddress(publicKey)
	return publicKey, true
}

// Connect performs an interactive connect. It returns a
// *ProviderNotFoundError when no provider is present and a *RejectedError
// when the provider or user refuses.
func (s *Session) Connect(ctx context.Context) (string, error) {
	if s.provider == nil {
		return "", &ProviderNotFoundError{InstallURL: s.installURL}
	}

	publicKey, err := s.provider.Connect(ctx, ConnectOptions{})
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return "", err
		}
		return "", &RejectedError{Provider: s.provider.Name(), Message: err.Error()}
	}

	s.setAddress(publicKey)
	return publicKey, nil
}

// Disconnect clears the session whether or not the provider call succeeds.
// It is idempotent.
func (s *Session) Disconnect(ctx context.Context) {
	if s.provider != nil {
		if err := s.provider.Disconnect(ctx); err != nil {
			s.logger.Debug("Wallet provider disconnect failed: %v", err)
		}
	}
	s.reset()
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Address returns the connected public key.
func (s *Session) Address() (string, bool) {
	st := s.State()
	return st.Address, st.Connected()
}

// ProviderName returns the provider's name, or "" when none is present.
func (s *Session) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// SetNetwork changes the selected network.
func (s *Session) SetNetwork(network token.Network) {
	s.update(func(st *State) { st.Network = network })
}

// Subscribe registers fn for every state change.
func (s *Session) Subscribe(fn func(State)) Unsubscribe {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Close releases the provider event subscriptions.
func (s *Session) Close() {
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

func (s *Session) setAddress(publicKey string) {
	s.update(func(st *State) { st.Address = publicKey })
}

// reset is the single path that returns the session (and anything
// subscribed to it) to the disconnected state.
func (s *Session) reset() {
	s.update(func(st *State) { st.Address = "" })
}

// update applies fn and notifies listeners, outside the state lock, if the
// state changed. Listeners must not change the session.
func (s *Session) update(fn func(*State)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	before := s.state
	fn(&s.state)
	after := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if before == after {
		return
	}
	for _, l := range listeners {
		l(after)
	}
}
