package wallet

import (
	"context"
	"sync"
)

// KeySource resolves the public key a LocalProvider offers.
type KeySource func() (string, error)

// LocalProvider is a Provider backed by a wallet on this machine: a
// solana-keygen keypair file or a configured public key.
type LocalProvider struct {
	Emitter

	name    string
	source  KeySource
	trusted bool
	approve Approver

	mu        sync.Mutex
	connected string
}

// LocalOption configures a LocalProvider.
type LocalOption func(*LocalProvider)

// WithTrusted allows silent reconnects without approval.
func WithTrusted(trusted bool) LocalOption {
	return func(p *LocalProvider) {
		p.trusted = trusted
	}
}

// WithApprover sets the interactive approval prompt. Without one, every
// interactive connect is approved.
func WithApprover(approve Approver) LocalOption {
	return func(p *LocalProvider) {
		p.approve = approve
	}
}

// NewKeypairProvider offers the public key of the keypair at path.
func NewKeypairProvider(path string, opts ...LocalOption) *LocalProvider {
	return newLocalProvider("Solana CLI keypair", func() (string, error) {
		return PublicKeyFromKeypairFile(path)
	}, opts...)
}

// NewStaticProvider offers a fixed public key.
func NewStaticProvider(publicKey string, opts ...LocalOption) *LocalProvider {
	return newLocalProvider("Configured public key", func() (string, error) {
		return ParsePublicKey(publicKey)
	}, opts...)
}

func newLocalProvider(name string, source KeySource, opts ...LocalOption) *LocalProvider {
	p := &LocalProvider{name: name, source: source}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *LocalProvider) Name() string {
	return p.name
}

// Connect implements Provider.
func (p *LocalProvider) Connect(ctx context.Context, opts ConnectOptions) (string, error) {
	if opts.OnlyIfTrusted && !p.trusted {
		return "", ErrNotTrusted
	}

	publicKey, err := p.source()
	if err != nil {
		return "", &RejectedError{Provider: p.name, Message: err.Error()}
	}

	if !opts.OnlyIfTrusted && p.approve != nil {
		ok, err := p.approve(ctx, p.name, publicKey)
		if err != nil {
			return "", &RejectedError{Provider: p.name, Message: err.Error()}
		}
		if !ok {
			return "", &RejectedError{Provider: p.name, Message: "User rejected the request."}
		}
	}

	p.mu.Lock()
	p.connected = publicKey
	p.mu.Unlock()

	p.Emit(EventConnect, publicKey)
	return publicKey, nil
}

// Disconnect implements Provider.
func (p *LocalProvider) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	was := p.connected
	p.connected = ""
	p.mu.Unlock()

	if was != "" {
		p.Emit(EventDisconnect, "")
	}
	return nil
}

var _ Provider = (*LocalProvider)(nil)
