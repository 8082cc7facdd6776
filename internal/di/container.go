// Package di provides the dependency injection container for the
// application. It turns the resolved configuration into components once at
// startup, so nothing downstream looks configuration up at runtime.
package di

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/altuslabsxyz/token-launcher/internal/application/launcher"
	"github.com/altuslabsxyz/token-launcher/internal/application/monitor"
	"github.com/altuslabsxyz/token-launcher/internal/application/ports"
	"github.com/altuslabsxyz/token-launcher/internal/application/simulate"
	"github.com/altuslabsxyz/token-launcher/internal/application/trigger"
	"github.com/altuslabsxyz/token-launcher/internal/config"
	"github.com/altuslabsxyz/token-launcher/internal/infrastructure/github"
	"github.com/altuslabsxyz/token-launcher/internal/output"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/version"
	"github.com/altuslabsxyz/token-launcher/internal/wallet"
)

// Container holds all application dependencies. Components are created
// lazily on first use and shared afterwards.
type Container struct {
	mu sync.Mutex

	config config.Effective
	logger *output.Logger

	// Injected overrides
	renderer   presenter.Renderer
	provider   wallet.Provider
	noProvider bool
	approver   wallet.Approver
	clock      ports.Clock
	httpClient *http.Client
	idGen      func() string

	// Lazy-initialized components
	session   *wallet.Session
	region    *presenter.Region
	ghClient  *github.Client
	adapter   *github.Adapter
	trigger   *trigger.Client
	poller    *monitor.Poller
	simulator *simulate.Simulator
	launcher  *launcher.Launcher
}

// Option is a function that configures the container.
type Option func(*Container)

// WithLogger sets a custom logger.
func WithLogger(logger *output.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithRenderer sets how the status region is drawn. Defaults to the
// console renderer.
func WithRenderer(r presenter.Renderer) Option {
	return func(c *Container) {
		c.renderer = r
	}
}

// WithProvider replaces the wallet provider derived from config. A nil
// provider means no wallet is available.
func WithProvider(p wallet.Provider) Option {
	return func(c *Container) {
		c.provider = p
		c.noProvider = p == nil
	}
}

// WithApprover sets the prompt used to approve interactive connects.
func WithApprover(a wallet.Approver) Option {
	return func(c *Container) {
		c.approver = a
	}
}

// WithClock sets the clock for polling and simulation.
func WithClock(clock ports.Clock) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithHTTPClient sets the HTTP client used for the automation API.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Container) {
		c.httpClient = client
	}
}

// WithIDGenerator sets the submission id generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Container) {
		c.idGen = fn
	}
}

// New creates a new dependency injection container for cfg.
func New(cfg config.Effective, opts ...Option) *Container {
	c := &Container{
		config: cfg,
		clock:  ports.SystemClock{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = output.NewLogger()
	}
	c.logger.SetVerbose(cfg.Verbose)
	c.logger.SetNoColor(cfg.NoColor)
	c.logger.SetJSONMode(cfg.JSON)

	return c
}

// Config returns the resolved configuration.
func (c *Container) Config() config.Effective {
	return c.config
}

// Logger returns the logger instance.
func (c *Container) Logger() *output.Logger {
	return c.logger
}

// Provider returns the configured wallet provider, or nil when none exists.
func (c *Container) Provider() wallet.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.providerLocked()
}

func (c *Container) providerLocked() wallet.Provider {
	if c.provider != nil || c.noProvider {
		return c.provider
	}
	if p := ProviderFromConfig(c.config.Wallet, c.approver); p != nil {
		c.provider = p
	} else {
		c.noProvider = true
	}
	return c.provider
}

// ProviderFromConfig builds the local wallet provider: a configured public
// key wins over a keypair file, and the Solana CLI default keypair is used
// when neither is set. Returns nil when no wallet is available.
func ProviderFromConfig(w config.WalletConfig, approver wallet.Approver) wallet.Provider {
	opts := []wallet.LocalOption{wallet.WithTrusted(w.Trusted)}
	if approver != nil {
		opts = append(opts, wallet.WithApprover(approver))
	}

	if w.PublicKey != "" {
		return wallet.NewStaticProvider(w.PublicKey, opts...)
	}

	path := ExpandHome(w.Keypair)
	if path == "" {
		path = wallet.DefaultKeypairPath()
	}
	if path == "" {
		return nil
	}
	return wallet.NewKeypairProvider(path, opts...)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Session returns the wallet session.
func (c *Container) Session() *wallet.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		c.session = wallet.NewSession(c.providerLocked(), c.config.Network, wallet.WithLogger(c.logger))
	}
	return c.session
}

// Region returns the status display region.
func (c *Container) Region() *presenter.Region {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regionLocked()
}

func (c *Container) regionLocked() *presenter.Region {
	if c.region == nil {
		r := c.renderer
		if r == nil {
			r = presenter.NewConsoleRenderer(c.logger, c.spinner())
		}
		c.region = presenter.NewRegion(r)
	}
	return c.region
}

// spinner returns a status spinner for terminals, nil otherwise.
func (c *Container) spinner() *output.StatusSpinner {
	if c.config.JSON || !isTerminal(os.Stderr) {
		return nil
	}
	return output.NewStatusSpinner()
}

// GitHubClient returns the automation API client.
func (c *Container) GitHubClient() *github.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.githubLocked()
}

func (c *Container) githubLocked() *github.Client {
	if c.ghClient == nil {
		opts := []github.ClientOption{
			github.WithBaseURL(c.config.APIURL),
			github.WithOwnerRepo(c.config.Owner, c.config.Repo),
			github.WithTimeout(c.config.RequestTimeout),
			github.WithUserAgent(version.UserAgent()),
		}
		if c.httpClient != nil {
			opts = append(opts, github.WithHTTPClient(c.httpClient))
		}
		c.ghClient = github.NewClient(opts...)
	}
	return c.ghClient
}

func (c *Container) adapterLocked() *github.Adapter {
	if c.adapter == nil {
		c.adapter = github.NewAdapter(c.githubLocked())
	}
	return c.adapter
}

// Dispatcher returns the workflow dispatcher port.
func (c *Container) Dispatcher() ports.Dispatcher {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adapterLocked()
}

// RunSource returns the run status port.
func (c *Container) RunSource() ports.RunSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adapterLocked()
}

// TriggerClient returns the remote trigger client.
func (c *Container) TriggerClient() *trigger.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.triggerLocked()
}

func (c *Container) triggerLocked() *trigger.Client {
	if c.trigger == nil {
		opts := []trigger.Option{
			trigger.WithClock(c.clock),
			trigger.WithLogger(c.logger),
		}
		if c.idGen != nil {
			opts = append(opts, trigger.WithIDGenerator(c.idGen))
		}
		c.trigger = trigger.NewClient(c.adapterLocked(), trigger.Config{
			Owner:    c.config.Owner,
			Repo:     c.config.Repo,
			Workflow: c.config.Workflow,
			Ref:      c.config.Ref,
			Kind:     c.config.TriggerMode,
		}, opts...)
	}
	return c.trigger
}

// Poller returns the workflow poller.
func (c *Container) Poller() *monitor.Poller {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pollerLocked()
}

func (c *Container) pollerLocked() *monitor.Poller {
	if c.poller == nil {
		c.poller = monitor.NewPoller(c.adapterLocked(), c.regionLocked(),
			monitor.WithInterval(c.config.PollInterval),
			monitor.WithMaxAttempts(c.config.MaxAttempts),
			monitor.WithClock(c.clock),
			monitor.WithLogger(c.logger),
		)
	}
	return c.poller
}

// Simulator returns the demo-mode simulator.
func (c *Container) Simulator() *simulate.Simulator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.simulatorLocked()
}

func (c *Container) simulatorLocked() *simulate.Simulator {
	if c.simulator == nil {
		c.simulator = simulate.NewSimulator(c.regionLocked(),
			simulate.WithStep(c.config.SimulationStep),
			simulate.WithClock(c.clock),
			simulate.WithLogger(c.logger),
		)
	}
	return c.simulator
}

// Launcher returns the submission orchestrator.
func (c *Container) Launcher() *launcher.Launcher {
	session := c.Session()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.launcher == nil {
		c.launcher = launcher.New(
			session,
			c.triggerLocked(),
			c.pollerLocked(),
			c.simulatorLocked(),
			c.regionLocked(),
			launcher.WithLogger(c.logger),
		)
	}
	return c.launcher
}

// Close releases the launcher and session subscriptions, cancelling any
// active task.
func (c *Container) Close() {
	c.mu.Lock()
	l, s := c.launcher, c.session
	c.mu.Unlock()

	if l != nil {
		l.Close()
	}
	if s != nil {
		s.Close()
	}
}
