// Package launcher wires the submission flow together: the wallet session
// gates the form, the validator gates the trigger, and the trigger outcome
// selects polling or the local simulation.
package launcher

import (
	"context"
	"errors"
	"sync"

	"github.com/altuslabsxyz/token-launcher/internal/application/monitor"
	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/application/simulate"
	"github.com/altuslabsxyz/token-launcher/internal/application/task"
	"github.com/altuslabsxyz/token-launcher/internal/application/trigger"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/wallet"
)

// ErrSubmissionInFlight is returned by Submit while a previous submission
// has not reached a terminal state.
var ErrSubmissionInFlight = &InFlightError{}

// InFlightError rejects a concurrent submission.
type InFlightError struct{}

func (e *InFlightError) Error() string {
	return "a token submission is already in progress"
}

func (e *InFlightError) ShouldSilenceUsage() bool { return true }

func (e *InFlightError) UserMessage() string {
	return "A token submission is already in progress. Wait for it to finish."
}

// TriggerClient starts the remote workflow.
type TriggerClient interface {
	Trigger(ctx context.Context, req token.Request) trigger.Outcome
}

// Submission is one accepted request and the task following it. Exactly
// one of Poll and Simulation is set unless the trigger failed.
type Submission struct {
	Request    token.Request
	Trigger    trigger.Outcome
	Poll       *monitor.Task
	Simulation *simulate.Task
}

// Task returns the running task, or nil when the trigger failed.
func (s *Submission) Task() task.Handle {
	switch {
	case s.Poll != nil:
		return s.Poll
	case s.Simulation != nil:
		return s.Simulation
	default:
		return nil
	}
}

// Wait blocks until the submission's task returns.
func (s *Submission) Wait() {
	if h := s.Task(); h != nil {
		<-h.Done()
	}
}

// Launcher is the submission orchestrator. It holds at most one active
// task at a time.
type Launcher struct {
	session   *wallet.Session
	trigger   TriggerClient
	poller    *monitor.Poller
	simulator *simulate.Simulator
	presenter presenter.Presenter
	logger    ports.Logger

	mu          sync.Mutex
	active      task.Handle
	submitting  bool
	generation  int
	formVisible bool
	unsubscribe wallet.Unsubscribe
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithLogger sets the logger.
func WithLogger(logger ports.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// New creates a Launcher and subscribes it to session changes.
func New(
	session *wallet.Session,
	trig TriggerClient,
	poller *monitor.Poller,
	simulator *simulate.Simulator,
	pres presenter.Presenter,
	opts ...Option,
) *Launcher {
	l := &Launcher{
		session:     session,
		trigger:     trig,
		poller:      poller,
		simulator:   simulator,
		presenter:   pres,
		logger:      ports.NopLogger{},
		formVisible: session.State().Connected(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.unsubscribe = session.Subscribe(l.onSessionChange)
	return l
}

// Close detaches the launcher from the session and cancels any active task.
func (l *Launcher) Close() {
	l.unsubscribe()
	l.mu.Lock()
	active := l.active
	l.active = nil
	l.mu.Unlock()
	if active != nil {
		active.Cancel()
	}
}

// FormVisible reports whether the submission form should be shown. It
// tracks the session: visible while a wallet is connected.
func (l *Launcher) FormVisible() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formVisible
}

// Busy reports whether a submission is being triggered or monitored.
func (l *Launcher) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busyLocked()
}

func (l *Launcher) busyLocked() bool {
	return l.submitting || (l.active != nil && running(l.active))
}

// Submit validates f against the connected wallet and starts the remote
// workflow. It returns the validation, wallet or trigger error after
// presenting it. While a previous submission is active it returns
// ErrSubmissionInFlight and leaves the status region untouched.
func (l *Launcher) Submit(ctx context.Context, f token.Form) (*Submission, error) {
	l.mu.Lock()
	if l.busyLocked() {
		l.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	l.submitting = true
	gen := l.generation
	l.mu.Unlock()

	req, err := l.prepare(f)
	if err != nil {
		l.mu.Lock()
		l.submitting = false
		l.mu.Unlock()
		return nil, err
	}

	l.presenter.Show(presenter.Progress("Submitting token creation request..."))
	out := l.trigger.Trigger(ctx, req)
	sub := &Submission{Request: req, Trigger: out}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.submitting = false

	if out.Kind == trigger.OutcomeFailed {
		if !errors.Is(out.Err, context.Canceled) {
			l.presenter.Show(presenter.Error("Failed to start token creation", out.Err))
		}
		return sub, out.Err
	}

	// The wallet went away while the trigger was in flight.
	if gen != l.generation {
		return sub, wallet.ErrNotConnected
	}

	switch out.Kind {
	case trigger.OutcomeSimulated:
		l.logger.Warn("Automation unreachable, running in demo mode: %v", out.Err)
		sub.Simulation = l.simulator.Start(ctx, req)
		l.active = sub.Simulation
	default:
		sub.Poll = l.poller.Start(ctx, out.Handle)
		l.active = sub.Poll
	}
	return sub, nil
}

// onSessionChange runs on every session change. Losing the wallet cancels
// the active task and hides the form.
func (l *Launcher) onSessionChange(st wallet.State) {
	l.mu.Lock()
	if st.Connected() {
		l.formVisible = true
		l.mu.Unlock()
		return
	}

	wasVisible := l.formVisible
	l.formVisible = false
	l.generation++
	active := l.active
	l.active = nil
	l.mu.Unlock()

	stopped := false
	if active != nil && running(active) {
		active.Cancel()
		<-active.Done()
		stopped = true
	}

	if !wasVisible && !stopped {
		return
	}
	msg := "Connect a wallet to create a token."
	if stopped {
		msg = "Monitoring was stopped. The remote workflow may still complete."
	}
	l.presenter.Show(presenter.Warning("Wallet disconnected", msg))
}

// prepare binds f to the connected wallet and validates it.
func (l *Launcher) prepare(f token.Form) (token.Request, error) {
	st := l.session.State()
	if !st.Connected() {
		l.presenter.Show(presenter.Error("Wallet not connected", wallet.ErrNotConnected))
		return token.Request{}, wallet.ErrNotConnected
	}
	f.WalletAddress = st.Address
	if f.Network == "" {
		f.Network = st.Network
	}

	req, err := token.Validate(f)
	if err != nil {
		l.presenter.Show(presenter.Error("Invalid token parameters", err))
		return token.Request{}, err
	}
	return req, nil
}

func running(h task.Handle) bool {
	select {
	case <-h.Done():
		return false
	default:
		return true
	}
}
