package views

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altuslabsxyz/token-launcher/internal/application/launcher"
	"github.com/altuslabsxyz/token-launcher/internal/domain/common"
	"github.com/altuslabsxyz/token-launcher/internal/domain/token"
	"github.com/altuslabsxyz/token-launcher/internal/presenter"
	"github.com/altuslabsxyz/token-launcher/internal/tui"
	"github.com/altuslabsxyz/token-launcher/internal/tui/components"
	"github.com/altuslabsxyz/token-launcher/internal/wallet"
)

// Session is the wallet session surface the form needs.
type Session interface {
	State() wallet.State
	ConnectSilently(ctx context.Context) (string, bool)
	Connect(ctx context.Context) (string, error)
	Disconnect(ctx context.Context)
}

// Submitter accepts a filled form.
type Submitter interface {
	Submit(ctx context.Context, f token.Form) (*launcher.Submission, error)
}

// FormDeps are the collaborators of FormModel. Every call into them runs
// in a tea.Cmd, off the event loop, because they write to the status
// region and the region forwards into this program.
type FormDeps struct {
	Ctx       context.Context
	Session   Session
	Submitter Submitter
	Presenter presenter.Presenter
}

// Text input indexes.
const (
	fieldName = iota
	fieldSymbol
	fieldDescription
	fieldSupply
	fieldDecimals
	fieldImageURL
	numInputs
)

// Toggle indexes follow the text inputs in focus order.
const (
	focusRevokeMint = numInputs + iota
	focusRevokeFreeze
	numFocusable
)

var inputLabels = [numInputs]string{
	fieldName:        "Name*",
	fieldSymbol:      "Symbol*",
	fieldDescription: "Description",
	fieldSupply:      "Supply*",
	fieldDecimals:    "Decimals",
	fieldImageURL:    "Image URL",
}

// FormModel is the token creation form.
type FormModel struct {
	deps FormDeps

	inputs       [numInputs]textinput.Model
	focus        int
	revokeMint   bool
	revokeFreeze bool
	network      token.Network

	wallet     wallet.State
	connecting bool
	submitting bool
	notice     string

	status components.StatusBox
	width  int
	Done   bool
}

// NewFormModel creates the form on network with the wallet state as of now.
func NewFormModel(deps FormDeps, network token.Network) FormModel {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if network == "" {
		network = token.DefaultNetwork
	}

	m := FormModel{
		deps:    deps,
		network: network,
		wallet:  deps.Session.State(),
		status:  components.NewStatusBox(),
		width:   80,
	}

	placeholders := [numInputs]string{
		fieldName:        "My Token",
		fieldSymbol:      "MTK",
		fieldDescription: "What the token is for",
		fieldSupply:      strconv.Itoa(token.DefaultSupply),
		fieldDecimals:    strconv.Itoa(token.DefaultDecimals),
		fieldImageURL:    "https://example.com/logo.png",
	}
	limits := [numInputs]int{32, 10, 200, 20, 1, 200}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldSupply].SetValue(strconv.Itoa(token.DefaultSupply))
	m.inputs[fieldDecimals].SetValue(strconv.Itoa(token.DefaultDecimals))
	m.inputs[fieldName].Focus()
	return m
}

// Init attempts a silent wallet reconnect and starts the spinner.
func (m FormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.status.Init(), m.connectSilentlyCmd())
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StatusMsg:
		m.status.Set(msg.Status, msg.Visible)
		return m, nil

	case SessionMsg:
		m.wallet = msg.State
		return m, nil

	case connectDoneMsg:
		m.connecting = false
		m.wallet = m.deps.Session.State()
		return m, nil

	case disconnectDoneMsg:
		m.wallet = m.deps.Session.State()
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if errors.Is(msg.err, launcher.ErrSubmissionInFlight) {
			m.notice = common.GetUserMessage(msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	return m, cmd
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "esc":
		m.Done = true
		return m, tea.Quit

	case "ctrl+w":
		if m.wallet.Connected() || m.connecting {
			return m, nil
		}
		m.connecting = true
		return m, m.connectCmd()

	case "ctrl+d":
		if !m.wallet.Connected() {
			return m, nil
		}
		return m, m.disconnectCmd()
	}

	if !m.wallet.Connected() {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+n":
		m.network = nextNetwork(m.network)
		return m, nil

	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % numFocusable)

	case "shift+tab", "up":
		return m, m.setFocus((m.focus + numFocusable - 1) % numFocusable)

	case " ":
		if m.toggle() {
			return m, nil
		}

	case "enter":
		if m.toggle() {
			return m, nil
		}
		if m.submitting {
			m.notice = "A token submission is already in progress."
			return m, nil
		}
		m.submitting = true
		return m, m.submitCmd(m.Form())
	}

	if m.focus < numInputs {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// toggle flips the focused checkbox and reports whether one was focused.
func (m *FormModel) toggle() bool {
	switch m.focus {
	case focusRevokeMint:
		m.revokeMint = !m.revokeMint
		return true
	case focusRevokeFreeze:
		m.revokeFreeze = !m.revokeFreeze
		return true
	}
	return false
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	if m.focus < numInputs {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if i < numInputs {
		return m.inputs[i].Focus()
	}
	return nil
}

// Form returns the raw field values.
func (m FormModel) Form() token.Form {
	return token.Form{
		Network:               m.network,
		Name:                  m.inputs[fieldName].Value(),
		Symbol:                m.inputs[fieldSymbol].Value(),
		Description:           m.inputs[fieldDescription].Value(),
		Supply:                m.inputs[fieldSupply].Value(),
		Decimals:              m.inputs[fieldDecimals].Value(),
		ImageURL:              m.inputs[fieldImageURL].Value(),
		RevokeMintAuthority:   m.revokeMint,
		RevokeFreezeAuthority: m.revokeFreeze,
	}
}

// Network returns the selected network.
func (m FormModel) Network() token.Network {
	return m.network
}

// Submitting reports whether a submission is being monitored.
func (m FormModel) Submitting() bool {
	return m.submitting
}

func (m FormModel) connectSilentlyCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		deps.Session.ConnectSilently(deps.Ctx)
		return connectDoneMsg{}
	}
}

func (m FormModel) connectCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		addr, err := deps.Session.Connect(deps.Ctx)
		if err != nil {
			deps.Presenter.Show(presenter.Error("Wallet connection failed", err))
			return connectDoneMsg{err: err}
		}
		deps.Presenter.Show(presenter.Success("Wallet connected", addr))
		return connectDoneMsg{}
	}
}

// disconnectCmd runs off the event loop: disconnecting waits for the
// active task to stop, and the task writes to the region.
func (m FormModel) disconnectCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		deps.Session.Disconnect(deps.Ctx)
		return disconnectDoneMsg{}
	}
}

func (m FormModel) submitCmd(f token.Form) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		sub, err := deps.Submitter.Submit(deps.Ctx, f)
		if err == nil {
			sub.Wait()
		}
		return submitDoneMsg{sub: sub, err: err}
	}
}

func nextNetwork(n token.Network) token.Network {
	for i, candidate := range token.Networks {
		if candidate == n {
			return token.Networks[(i+1)%len(token.Networks)]
		}
	}
	return token.DefaultNetwork
}

// View implements tea.Model
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle("Solana Token Launcher").String())
	b.WriteString("\n\n")
	b.WriteString(m.walletLine())
	b.WriteString("\n\n")

	if m.wallet.Connected() {
		b.WriteString(m.formView())
		b.WriteString("\n")
	}

	if status := m.status.View(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(tui.WarningStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.MutedStyle.Render(m.helpLine()))
	return b.String()
}

func (m FormModel) walletLine() string {
	switch {
	case m.wallet.Connected():
		return tui.SuccessStyle.Render(tui.IconSuccess+" Wallet ") + shortAddress(m.wallet.Address)
	case m.connecting:
		return tui.RunningStyle.Render(tui.IconRunning + " Connecting wallet...")
	default:
		return tui.WarningStyle.Render("Wallet not connected.") + " Press ctrl+w to connect."
	}
}

func (m FormModel) formView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", tui.LabelStyle.Render("Network"), tui.BoldStyle.Render(m.network.String()))

	for i := range m.inputs {
		label := tui.LabelStyle.Render(inputLabels[i])
		if i == m.focus {
			label = tui.FocusedStyle.Width(16).Render(inputLabels[i])
		}
		fmt.Fprintf(&b, "%s%s\n", label, m.inputs[i].View())
	}

	b.WriteString(m.checkbox(focusRevokeMint, "Revoke mint authority", m.revokeMint))
	b.WriteString(m.checkbox(focusRevokeFreeze, "Revoke freeze authority", m.revokeFreeze))
	return b.String()
}

func (m FormModel) checkbox(idx int, label string, checked bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	line := box + " " + label
	if m.focus == idx {
		line = tui.FocusedStyle.Render(line)
	}
	return line + "\n"
}

func (m FormModel) helpLine() string {
	if !m.wallet.Connected() {
		return "ctrl+w connect • esc quit"
	}
	return "tab/shift+tab move • space toggle • enter submit • ctrl+n network • ctrl+d disconnect • esc quit"
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}
