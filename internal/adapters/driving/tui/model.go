// Package tui provides an interactive terminal chat with the assistant.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
)

var (
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	youStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// entry is one question/answer exchange in the transcript.
type entry struct {
	question string
	answer   domain.Answer
	err      error
}

// answerMsg carries a finished assistant call back into the update loop.
type answerMsg struct {
	question string
	answer   domain.Answer
	err      error
}

// Model is the Bubble Tea model for the chat TUI.
type Model struct {
	assistant driving.AssistantService
	input     textinput.Model
	viewport  viewport.Model
	history   []entry
	status    string
	waiting   bool
	ready     bool
}

// New creates a new chat model.
func New(assistant driving.AssistantService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about Alyyan's portfolio and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		assistant: assistant,
		input:     ti,
		viewport:  vp,
		status:    "Ready. Ctrl+C to quit.",
	}
}

// Run starts the chat TUI and blocks until the user quits.
func Run(assistant driving.AssistantService) error {
	p := tea.NewProgram(New(assistant), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + ih + 1 // header + status + input frame + spacer
		vh := msg.Height - reserved - ch
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderTranscript())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" && !m.waiting {
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				break
			}
			m.input.Reset()
			m.waiting = true
			m.status = "Thinking..."
			return m, m.ask(question)
		}

	case answerMsg:
		m.waiting = false
		m.history = append(m.history, entry{
			question: msg.question,
			answer:   msg.answer,
			err:      msg.err,
		})
		if msg.err != nil {
			m.status = "Error. Ask again or Ctrl+C to quit."
		} else {
			m.status = fmt.Sprintf("Answered from %s. Ctrl+C to quit.", msg.answer.Domain)
		}
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ask runs the assistant call off the update loop.
func (m Model) ask(question string) tea.Cmd {
	assistant := m.assistant
	return func() tea.Msg {
		answer, err := assistant.Ask(context.Background(), question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("PortfolioAI")
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := metaStyle.Render(m.status)
	return header + "\n" + chat + "\n" + input + "\n" + status
}

// renderTranscript renders the full conversation history.
func (m Model) renderTranscript() string {
	if len(m.history) == 0 {
		return "Ask a question to get started."
	}

	var b strings.Builder
	for i, e := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(youStyle.Render("You: "))
		b.WriteString(e.question)
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString(errStyle.Render("Error: " + e.err.Error()))
			continue
		}
		b.WriteString(botStyle.Render("PortfolioAI: "))
		b.WriteString(e.answer.Text)
		if sources := sourceLine(e.answer); sources != "" {
			b.WriteString("\n")
			b.WriteString(metaStyle.Render(sources))
		}
	}
	return b.String()
}

// sourceLine summarises the grounding sources of an answer.
func sourceLine(answer domain.Answer) string {
	if len(answer.Sources) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(answer.Sources))
	var names []string
	for _, chunk := range answer.Sources {
		name := chunk.Metadata["repo_name"]
		if name == "" {
			name = chunk.Metadata["file_name"]
		}
		if name == "" {
			name = chunk.Source()
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return "sources: " + strings.Join(names, ", ")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
