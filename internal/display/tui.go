// internal/display/tui.go
package display

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/touchhand/internal/poller"
	"github.com/tamzrod/touchhand/internal/status"
)

// Messages
type frameMsg poller.Result

// TUI model
type model struct {
	title     string
	cellWidth int
	frame     poller.Result // last result with a frame
	last      poller.Result // last result, frame or not
	haveFrame bool
	width     int
	height    int
	quitting  bool
}

func newModel(title string, scale int) model {
	return model{
		title:     title,
		cellWidth: CellWidth(scale),
		width:     80,
		height:    24,
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		res := poller.Result(msg)
		m.last = res
		if res.OK() {
			m.frame = res
			m.haveFrame = true
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	okStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	var s strings.Builder
	s.WriteString(titleStyle.Render(m.title))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render("Press 'q' to quit"))
	s.WriteString("\n\n")

	if !m.haveFrame {
		s.WriteString(headerStyle.Render("Waiting for first frame..."))
		s.WriteString("\n")
	} else {
		s.WriteString(RenderHeatmap(m.frame.Image, m.cellWidth))
		s.WriteString("\n\n")
		s.WriteString(okStyle.Render(fmt.Sprintf("frame #%d  %s  peak %.0f",
			m.frame.Seq, m.frame.At.Format(time.TimeOnly), m.frame.Grid.Max())))
		s.WriteString("\n")
	}

	st := m.last.Status
	switch st.Health {
	case status.HealthError:
		s.WriteString(errorStyle.Render(fmt.Sprintf("%s for %ds (%d failed reads): %s",
			status.HealthName(st.Health), st.SecondsInError, st.Failures, st.LastError)))
	default:
		s.WriteString(headerStyle.Render(fmt.Sprintf("%s  frames %d",
			status.HealthName(st.Health), st.Frames)))
	}
	s.WriteString("\n")

	return s.String()
}

// TUI is a bubbletea display. Run blocks in the calling goroutine;
// Show may be called from the poll loop.
type TUI struct {
	p    *tea.Program
	done chan struct{}
}

// NewTUI builds the program. opts are passed to tea.NewProgram.
func NewTUI(title string, scale int, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		p:    tea.NewProgram(newModel(title, scale), opts...),
		done: make(chan struct{}),
	}
}

// Run blocks until the user quits or Quit is called.
func (t *TUI) Run() error {
	defer close(t.done)
	if _, err := t.p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Quit stops the program from outside.
func (t *TUI) Quit() {
	t.p.Quit()
}

// Done is closed once Run has returned.
func (t *TUI) Done() <-chan struct{} {
	return t.done
}

// Show implements poller.Sink.
func (t *TUI) Show(ctx context.Context, res poller.Result) error {
	select {
	case <-t.done:
		return poller.ErrQuit
	case <-ctx.Done():
		return nil
	default:
	}
	t.p.Send(frameMsg(res))
	return nil
}
