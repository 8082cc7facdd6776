package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/domain/workflow"
)

// ErrSetupCancelled is returned when the user aborts a prompt.
var ErrSetupCancelled = errors.New("configuration cancelled")

// InteractiveSetup handles interactive configuration prompts.
type InteractiveSetup struct {
	homeDir string
	writer  *ConfigWriter
	out     io.Writer
}

// NewInteractiveSetup creates a new InteractiveSetup for the given home directory.
func NewInteractiveSetup(homeDir string, out io.Writer) *InteractiveSetup {
	return &InteractiveSetup{
		homeDir: homeDir,
		writer:  NewConfigWriter(homeDir),
		out:     out,
	}
}

// IsInteractive returns true if the terminal supports interactive input.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LoadDefaults loads the existing home config to use as prompt defaults.
func (s *InteractiveSetup) LoadDefaults() *FileConfig {
	if !s.writer.Exists() {
		return &FileConfig{}
	}
	cfg, _, err := NewConfigLoader(s.homeDir, "", nil).WithWorkDir(s.homeDir).LoadFileConfig()
	if err != nil {
		return &FileConfig{}
	}
	return cfg
}

// Run executes the interactive configuration flow.
func (s *InteractiveSetup) Run() (*FileConfig, error) {
	cfg := s.LoadDefaults()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Welcome to token-launcher configuration!")
	fmt.Fprintln(s.out, "Press Ctrl+C at any time to cancel.")
	fmt.Fprintln(s.out)

	owner, err := promptText("Automation repository owner", valueOr(cfg.Owner, DefaultOwner), "Owner", required)
	if err != nil {
		return nil, err
	}
	cfg.Owner = &owner

	repo, err := promptText("Automation repository name", valueOr(cfg.Repo, DefaultRepo), "Repository", required)
	if err != nil {
		return nil, err
	}
	cfg.Repo = &repo

	modes := []string{string(workflow.TriggerDispatch), string(workflow.TriggerIssue)}
	mode, err := promptSelect("Select trigger mode", modes, valueOr(cfg.TriggerMode, modes[0]), "Trigger mode")
	if err != nil {
		return nil, err
	}
	cfg.TriggerMode = &mode

	networks := make([]string, len(token.Networks))
	for i, n := range token.Networks {
		networks[i] = n.String()
	}
	network, err := promptSelect("Select default network", networks, valueOr(cfg.Network, networks[0]), "Network")
	if err != nil {
		return nil, err
	}
	cfg.Network = &network

	keypair, err := promptText("Solana keypair file (empty to skip)", valueOr(walletKeypair(cfg), ""), "Keypair", nil)
	if err != nil {
		return nil, err
	}
	if keypair = strings.TrimSpace(keypair); keypair != "" {
		if cfg.Wallet == nil {
			cfg.Wallet = &WalletFileConfig{}
		}
		cfg.Wallet.Keypair = &keypair
	}

	return cfg, nil
}

// RunWithDefaults returns a FileConfig with default values.
// Used when terminal is non-interactive.
func (s *InteractiveSetup) RunWithDefaults() *FileConfig {
	owner, repo := DefaultOwner, DefaultRepo
	mode := string(workflow.TriggerDispatch)
	network := token.DefaultNetwork.String()
	return &FileConfig{
		Owner:       &owner,
		Repo:        &repo,
		TriggerMode: &mode,
		Network:     &network,
	}
}

// WriteConfig writes the configuration to homeDir/config.toml.
func (s *InteractiveSetup) WriteConfig(cfg *FileConfig) error {
	return s.writer.Write(cfg)
}

// Path returns the file WriteConfig writes.
func (s *InteractiveSetup) Path() string {
	return s.writer.Path()
}

func promptSelect(label string, items []string, current, selected string) (string, error) {
	cursor := 0
	for i, item := range items {
		if item == current {
			cursor = i
			break
		}
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✓ " + selected + ": {{ . | green }}",
		},
	}

	_, result, err := prompt.Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return result, nil
}

func promptText(label, def, success string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}: ",
			Valid:   "{{ . | green }}: ",
			Invalid: "{{ . | red }}: ",
			Success: "✓ " + success + ": ",
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return strings.TrimSpace(result), nil
}

func required(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func valueOr(p *string, def string) string {
	if p != nil && *p != "" {
		return *p
	}
	return def
}

func walletKeypair(cfg *FileConfig) *string {
	if cfg.Wallet == nil {
		return nil
	}
	return cfg.Wallet.Keypair
}

// handlePromptError converts promptui errors to user-friendly messages.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrSetupCancelled
	}
	return err
}
