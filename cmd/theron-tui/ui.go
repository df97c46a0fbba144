package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const placeholderText = "What do you do?"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")). // gold
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)
)

// engineReplyMsg carries one finished engine response back to the UI.
type engineReplyMsg struct {
	text string
	quit bool
}

// GameUI is the BubbleTea model that runs the windowed sink. It never
// touches the World; completed input lines go to the engine goroutine
// through the single-slot channel, and responses come back as messages.
type GameUI struct {
	inputCh chan<- string

	viewport viewport.Model
	textarea textarea.Model

	transcript []string // alternating player/engine lines for copy
	ready      bool
	loading    bool
	width      int
	height     int

	showQuitModal bool
	copied        bool
}

func NewGameUI(inputCh chan<- string, welcome string) GameUI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return GameUI{
		inputCh:    inputCh,
		textarea:   ta,
		viewport:   vp,
		transcript: []string{welcome},
	}
}

func (m GameUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m *GameUI) writeContent() {
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("VILLAGE OF THERON") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	for _, entry := range m.transcript {
		if strings.HasPrefix(entry, "> ") {
			content.WriteString(userStyle.Render(entry) + "\n\n")
		} else {
			content.WriteString(gameStyle.Render(wordwrap.String(entry, width)) + "\n\n")
		}
	}
	if m.loading {
		content.WriteString(loadingStyle.Render("...") + "\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - 5
		m.textarea.SetWidth(m.width - 6)
		m.ready = true
		m.writeContent()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(strings.Join(m.transcript, "\n")); err == nil {
				m.copied = true
			}
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.copied = false
			m.transcript = append(m.transcript, "> "+input)
			m.loading = true
			m.writeContent()
			// Hand the line to the engine goroutine. The slot is free
			// because loading gates a second send until the reply.
			m.inputCh <- input
			return m, nil
		}

	case engineReplyMsg:
		m.loading = false
		m.transcript = append(m.transcript, msg.text)
		m.writeContent()
		if msg.quit {
			return m, tea.Quit
		}
		return m, nil
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "y", "enter":
			return m, tea.Quit
		case "n", "esc":
			m.showQuitModal = false
			return m, nil
		}
	}
	return m, nil
}

func (m GameUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showQuitModal {
		modal := modalStyle.Render(
			modalTitleStyle.Render("Leave Theron?") + "\n\n" +
				"Unsaved progress will be lost.\n\n" +
				"[y] quit    [n] keep playing")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	status := promptStyle.Render("enter: send · ctrl+y: copy transcript · esc: quit")
	if m.copied {
		status = promptStyle.Render("transcript copied · esc: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.textarea.View(),
		status,
	)
}
