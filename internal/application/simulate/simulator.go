// Package simulate plays a scripted token creation locally when the remote
// automation cannot be reached. It never makes network calls.
package simulate

import (
	"context"
	"time"

	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/application/task"
	"github.com/altuslabsxyz/token-launcher/internal/demo"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
)

// DefaultStep is how long each scripted step is shown.
const DefaultStep = 2 * time.Second

// Result is the end of a simulation. Token is zero when Cancelled.
type Result struct {
	Cancelled bool
	Token     token.Result
}

// Task is a running simulation.
type Task = task.Task[Result]

// Steps returns the progress messages played for req, in order.
func Steps(req token.Request) []string {
	steps := []string{
		"Validating token parameters...",
		"Creating token mint...",
		"Creating token account...",
		"Minting initial supply...",
		"Uploading token metadata...",
	}
	if req.RevokeMintAuthority {
		steps = append(steps, "Revoking mint authority...")
	}
	if req.RevokeFreezeAuthority {
		steps = append(steps, "Revoking freeze authority...")
	}
	return steps
}

// Simulator drives the presenter through Steps on a fixed timer.
type Simulator struct {
	presenter presenter.Presenter
	clock     ports.Clock
	logger    ports.Logger
	step      time.Duration
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStep sets the delay of each step.
func WithStep(d time.Duration) Option {
	return func(s *Simulator) {
		if d > 0 {
			s.step = d
		}
	}
}

// WithClock sets the clock.
func WithClock(clock ports.Clock) Option {
	return func(s *Simulator) {
		s.clock = clock
	}
}

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// NewSimulator creates a Simulator writing to pres.
func NewSimulator(pres presenter.Presenter, opts ...Option) *Simulator {
	s := &Simulator{
		presenter: pres,
		clock:     ports.SystemClock{},
		logger:    ports.NopLogger{},
		step:      DefaultStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the simulation in the background.
func (s *Simulator) Start(ctx context.Context, req token.Request) *Task {
	return task.Start(ctx, func(ctx context.Context) Result {
		return s.Run(ctx, req)
	})
}

// Run plays every step and ends in a demo success.
func (s *Simulator) Run(ctx context.Context, req token.Request) Result {
	s.logger.Debug("Running simulation for %s", req.Symbol)

	for _, msg := range Steps(req) {
		st := presenter.Progress(msg)
		st.Demo = true
		s.presenter.Show(st)

		select {
		case <-ctx.Done():
			return Result{Cancelled: true}
		case <-s.clock.After(s.step):
		}
		if ctx.Err() != nil {
			return Result{Cancelled: true}
		}
	}

	res := DemoResult(req, s.clock.Now())
	s.presenter.Show(ResultStatus(res))
	return Result{Token: res}
}

// DemoResult fabricates a result for req. Its addresses are display
// strings seeded from the request, not on-chain accounts.
func DemoResult(req token.Request, now time.Time) token.Result {
	mint := demo.SeedToDisplayString("mint:" + req.Symbol + ":" + req.WalletAddress)
	account := demo.SeedToDisplayString("account:" + req.Name + ":" + req.WalletAddress)
	return token.NewResult(req, mint, account, true, now)
}

// ResultStatus renders a token result as a success status.
func ResultStatus(res token.Result) presenter.Status {
	title := "Token created"
	if res.Demo {
		title = "Token created (demo)"
	}

	st := presenter.Success(title, res.Metadata.Name+" ("+res.Metadata.Symbol+")",
		presenter.Field{Label: "Mint", Value: res.MintAddress},
		presenter.Field{Label: "Token account", Value: res.TokenAccount},
		presenter.Field{Label: "Network", Value: res.Network.String()},
		presenter.Field{Label: "Supply", Value: res.Supply},
		presenter.Field{Label: "Base units", Value: res.BaseUnits},
	)
	if res.AuthorityRevocation.MintAuthorityRevoked != nil {
		st.Fields = append(st.Fields, presenter.Field{Label: "Mint authority", Value: "revoked"})
	}
	if res.AuthorityRevocation.FreezeAuthorityRevoked != nil {
		st.Fields = append(st.Fields, presenter.Field{Label: "Freeze authority", Value: "revoked"})
	}
	st.Demo = res.Demo
	if res.Demo {
		st.Hint = "The automation repository could not be reached. Configure api_url, owner and repo to create a real token."
	}
	return st.WithLink(res.ExplorerURL)
}
