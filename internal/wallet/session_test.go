package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
)

const testPublicKey = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"

// failingProvider refuses every connect and disconnect.
type failingProvider struct {
	Emitter
	err error
}

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Connect(context.Context, ConnectOptions) (string, error) {
	return "", p.err
}

func (p *failingProvider) Disconnect(context.Context) error { return p.err }

func TestSession_ConnectSilently_Trusted(t *testing.T) {
	s := NewSession(NewStaticProvider(testPublicKey, WithTrusted(true)), token.NetworkDevnet)

	addr, ok := s.ConnectSilently(context.Background())
	require.True(t, ok)
	assert.Equal(t, testPublicKey, addr)
	assert.True(t, s.State().Connected())
}

func TestSession_ConnectSilently_NeverPrompts(t *testing.T) {
	prompted := false
	provider := NewStaticProvider(testPublicKey, WithApprover(func(context.Context, string, string) (bool, error) {
		prompted = true
		return true, nil
	}))
	s := NewSession(provider, token.NetworkDevnet)

	_, ok := s.ConnectSilently(context.Background())
	assert.False(t, ok)
	assert.False(t, prompted)
	assert.False(t, s.State().Connected())
}

func TestSession_ConnectSilently_NoProvider(t *testing.T) {
	s := NewSession(nil, token.NetworkDevnet)
	_, ok := s.ConnectSilently(context.Background())
	assert.False(t, ok)
}

func TestSession_Connect(t *testing.T) {
	var states []State
	s := NewSession(NewStaticProvider(testPublicKey), token.NetworkMainnet)
	s.Subscribe(func(st State) { states = append(states, st) })

	addr, err := s.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPublicKey, addr)

	// The provider's connect event and the return value agree, so
	// listeners see a single change.
	require.Len(t, states, 1)
	assert.Equal(t, testPublicKey, states[0].Address)
	assert.Equal(t, token.NetworkMainnet, states[0].Network)
}

func TestSession_Connect_Rejected(t *testing.T) {
	provider := NewStaticProvider(testPublicKey, WithApprover(func(context.Context, string, string) (bool, error) {
		return false, nil
	}))
	s := NewSession(provider, token.NetworkDevnet)

	_, err := s.Connect(context.Background())
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Contains(t, common.GetUserMessage(err), "User rejected the request.")
	assert.False(t, s.State().Connected())
}

func TestSession_Connect_ProviderError(t *testing.T) {
	s := NewSession(&failingProvider{err: errors.New("locked")}, token.NetworkDevnet)

	_, err := s.Connect(context.Background())
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "locked", rejected.Message)
}

func TestSession_Connect_NoProvider(t *testing.T) {
	s := NewSession(nil, token.NetworkDevnet, WithInstallURL("https://example.com/install"))

	_, err := s.Connect(context.Background())
	var nf *ProviderNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, common.GetRecoveryHint(err), "https://example.com/install")
}

func TestSession_Disconnect_Idempotent(t *testing.T) {
	s := NewSession(NewStaticProvider(testPublicKey), token.NetworkDevnet)
	_, err := s.Connect(context.Background())
	require.NoError(t, err)

	resets := 0
	s.Subscribe(func(st State) {
		if !st.Connected() {
			resets++
		}
	})

	s.Disconnect(context.Background())
	s.Disconnect(context.Background())

	_, ok := s.Address()
	assert.False(t, ok)
	assert.Equal(t, 1, resets)
}

func TestSession_Disconnect_ProviderFailureStillResets(t *testing.T) {
	p := &failingProvider{err: errors.New("gone")}
	s := NewSession(p, token.NetworkDevnet)
	s.setAddress(testPublicKey)

	s.Disconnect(context.Background())
	assert.False(t, s.State().Connected())
}

func TestSession_ProviderDisconnectEvent(t *testing.T) {
	provider := NewStaticProvider(testPublicKey)
	s := NewSession(provider, token.NetworkDevnet)
	_, err := s.Connect(context.Background())
	require.NoError(t, err)

	var last State
	s.Subscribe(func(st State) { last = st })

	// Simulate the wallet disconnecting on its own.
	provider.Emit(EventDisconnect, "")

	assert.False(t, s.State().Connected())
	assert.False(t, last.Connected())
}

func TestSession_ListenersSeeChangesInOrder(t *testing.T) {
	provider := NewStaticProvider(testPublicKey)
	s := NewSession(provider, token.NetworkDevnet)

	var mu sync.Mutex
	var last State
	s.Subscribe(func(st State) {
		mu.Lock()
		last = st
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			provider.Emit(EventConnect, testPublicKey)
		}()
		go func() {
			defer wg.Done()
			provider.Emit(EventDisconnect, "")
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, s.State(), last)
}

func TestSession_Close_Unsubscribes(t *testing.T) {
	provider := NewStaticProvider(testPublicKey)
	s := NewSession(provider, token.NetworkDevnet)
	assert.Equal(t, 1, provider.HandlerCount(EventConnect))
	assert.Equal(t, 1, provider.HandlerCount(EventDisconnect))

	s.Close()
	s.Close()
	assert.Equal(t, 0, provider.HandlerCount(EventConnect))
	assert.Equal(t, 0, provider.HandlerCount(EventDisconnect))
}

func TestKeypairProvider(t *testing.T) {
	priv, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	ints := make([]int, len(priv))
	for i, b := range priv {
		ints[i] = int(b)
	}
	data, err := json.Marshal(ints)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, data, 0600))

	p := NewKeypairProvider(path, WithTrusted(true))
	addr, err := p.Connect(context.Background(), ConnectOptions{OnlyIfTrusted: true})
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().String(), addr)
}

func TestKeypairProvider_MissingFile(t *testing.T) {
	p := NewKeypairProvider(filepath.Join(t.TempDir(), "missing.json"))
	_, err := p.Connect(context.Background(), ConnectOptions{})
	var rejected *RejectedError
	assert.True(t, errors.As(err, &rejected))
}

func TestParsePublicKey(t *testing.T) {
	got, err := ParsePublicKey(testPublicKey)
	require.NoError(t, err)
	assert.Equal(t, testPublicKey, got)

	_, err = ParsePublicKey("not-a-key")
	assert.Error(t, err)
}
