package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type viewState int

const (
	stateComposing viewState = iota
	stateLoading
	stateResult
	stateFailed
)

const (
	requestTimeout = 90 * time.Second
	copiedWindow   = 2500 * time.Millisecond

	composeInstruction = "Tab switches between the email text and the tone picker. Press Ctrl+S to generate a reply, Esc to quit."
	failureMessage     = "Failed to generate the reply. Check your network connection and try again."
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render
	errorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render
	subtleTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render
)

// writeClipboard is swapped out in tests; the real clipboard is not
// available on headless machines.
var writeClipboard = clipboard.WriteAll

type replyMsg struct {
	reply string
	err   error
}

type copyResetMsg struct {
	seq int
}

type appModel struct {
	client      *APIClient
	view        viewState
	spinner     spinner.Model
	editor      textarea.Model
	toneIdx     int
	toneFocused bool
	reply       string
	copied      bool
	copySeq     int
	status      string
	viewport    viewport.Model
}

func newAppModel(client *APIClient) *appModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	editor := textarea.New()
	editor.Placeholder = "Paste the email you want to reply to..."
	editor.CharLimit = 0
	editor.SetWidth(80)
	editor.SetHeight(10)
	editor.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return &appModel{
		client:   client,
		view:     stateComposing,
		spinner:  sp,
		editor:   editor,
		viewport: vp,
	}
}

func (m *appModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case replyMsg:
		if msg.err != nil {
			m.view = stateFailed
			m.status = ""
			return m, nil
		}
		m.reply = msg.reply
		m.copied = false
		m.status = ""
		m.view = stateResult
		m.refreshViewport()
		return m, nil
	case copyResetMsg:
		// A newer copy restarts the window; its stale timer must not clear it.
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m *appModel) handleWindowSize(msg tea.WindowSizeMsg) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = maxInt(5, msg.Height-4)
	m.editor.SetWidth(maxInt(20, msg.Width-4))
	m.editor.SetHeight(maxInt(5, msg.Height-8))
	m.refreshViewport()
}

func (m *appModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.view {
	case stateComposing:
		return m.handleComposeKey(msg)
	case stateLoading:
		// No cancellation: the request runs to completion or failure.
		return m, nil
	case stateResult:
		return m.handleResultKey(msg)
	case stateFailed:
		return m.handleFailedKey(msg)
	default:
		return m, nil
	}
}

func (m *appModel) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlS:
		return m.beginSubmission()
	case tea.KeyTab:
		m.toneFocused = !m.toneFocused
		if m.toneFocused {
			m.editor.Blur()
		} else {
			m.editor.Focus()
		}
		return m, nil
	}

	if m.toneFocused {
		switch msg.Type {
		case tea.KeyLeft:
			m.toneIdx = (m.toneIdx + len(toneChoices) - 1) % len(toneChoices)
		case tea.KeyRight:
			m.toneIdx = (m.toneIdx + 1) % len(toneChoices)
		case tea.KeyEnter:
			return m.beginSubmission()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *appModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A copy-failure diagnostic lives until the next keypress.
	m.status = ""
	if m.handleViewportScroll(msg) {
		return m, nil
	}
	if msg.Type != tea.KeyRunes {
		return m, nil
	}
	switch strings.ToLower(string(msg.Runes)) {
	case "c":
		return m.copyReply()
	case "n":
		return m.backToCompose()
	case "q":
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *appModel) handleFailedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.backToCompose()
	case tea.KeyRunes:
		switch strings.ToLower(string(msg.Runes)) {
		case "r":
			return m.backToCompose()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *appModel) handleViewportScroll(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp:
		m.viewport.LineUp(1)
	case tea.KeyDown:
		m.viewport.LineDown(1)
	case tea.KeyPgUp:
		m.viewport.ViewUp()
	case tea.KeyPgDown:
		m.viewport.ViewDown()
	case tea.KeyHome:
		m.viewport.GotoTop()
	case tea.KeyEnd:
		m.viewport.GotoBottom()
	default:
		return false
	}
	return true
}

// beginSubmission gates the submit action: it is a no-op while the content is
// empty, and unreachable while a request is in flight because only the
// composing view routes keys here.
func (m *appModel) beginSubmission() (tea.Model, tea.Cmd) {
	content := m.editor.Value()
	if strings.TrimSpace(content) == "" {
		m.status = "Email content cannot be empty."
		return m, nil
	}
	m.reply = ""
	m.status = ""
	m.view = stateLoading
	return m, tea.Batch(m.spinner.Tick, generateReplyCmd(m.client, content, m.currentTone()))
}

func (m *appModel) copyReply() (tea.Model, tea.Cmd) {
	if err := writeClipboard(m.reply); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.copied = true
	m.copySeq++
	m.status = ""
	seq := m.copySeq
	return m, tea.Tick(copiedWindow, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

func (m *appModel) backToCompose() (tea.Model, tea.Cmd) {
	m.view = stateComposing
	m.status = ""
	m.copied = false
	m.toneFocused = false
	cmd := m.editor.Focus()
	return m, cmd
}

func (m *appModel) currentTone() string {
	return toneChoices[m.toneIdx]
}

func (m *appModel) refreshViewport() {
	if m.view != stateResult {
		return
	}
	m.viewport.SetContent(m.reply)
	m.viewport.GotoTop()
}

func (m *appModel) View() string {
	switch m.view {
	case stateComposing:
		return m.renderComposeView()
	case stateLoading:
		return fmt.Sprintf("%s Generating reply...\n", m.spinner.View())
	case stateResult:
		return m.renderResultView()
	case stateFailed:
		return m.renderFailedView()
	default:
		return ""
	}
}

func (m *appModel) renderComposeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Email Reply Writer"))
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderToneLine())
	b.WriteString("\n\n")
	b.WriteString(subtleTextStyle(composeInstruction))
	if m.status != "" {
		b.WriteString("\n" + errorTextStyle(m.status))
	}
	return b.String()
}

func (m *appModel) renderToneLine() string {
	label := toneLabel(m.currentTone())
	if m.toneFocused {
		return fmt.Sprintf("%s %s %s",
			labelStyle("Tone:"),
			selectedStyle("< "+label+" >"),
			subtleTextStyle("(left/right to change, Enter to submit)"),
		)
	}
	return fmt.Sprintf("%s %s", labelStyle("Tone:"), label)
}

func (m *appModel) renderResultView() string {
	footer := "Choose: [c]opy  [n]ew reply  [q]uit  (arrow keys scroll)"
	if m.copied {
		footer = successStyle("Copied to clipboard.")
	}
	if m.status != "" {
		footer = errorTextStyle(m.status)
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("Generated Reply"),
		m.viewport.View(),
		subtleTextStyle(footer),
	)
}

func (m *appModel) renderFailedView() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("Error"),
		errorTextStyle(failureMessage),
		subtleTextStyle("Press Enter or 'r' to try again, 'q' to quit."),
	)
}

func generateReplyCmd(client *APIClient, emailContent, tone string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		reply, err := client.GenerateReply(ctx, emailContent, tone)
		return replyMsg{reply: reply, err: err}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
