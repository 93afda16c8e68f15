package animation

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	figuredto "watersim/internal/modules/figure/dto"
	"watersim/internal/ui/components"
	"watersim/internal/ui/theme"
)

const (
	defaultWidth = 60
	maxWidth     = 100
	defaultTitle = "Virtual Water Collection Simulation"
)

type tickMsg time.Time

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

// Model plays precomputed accumulation frames at a fixed interval.
type Model struct {
	anim     figuredto.AnimationOutput
	volumes  []float64
	index    int
	progress progress.Model
	keys     keyMap
	help     help.Model
	width    int
	done     bool
	quit     bool
}

func New(anim figuredto.AnimationOutput) Model {
	volumes := make([]float64, 0, len(anim.Frames))
	for _, f := range anim.Frames {
		volumes = append(volumes, f.Volume)
	}
	return Model{
		anim:    anim,
		volumes: volumes,
		progress: progress.New(
			progress.WithGradient(string(theme.Sapphire), string(theme.Lavender)),
			progress.WithWidth(defaultWidth),
		),
		keys: keyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:  help.New(),
		width: defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	if len(m.anim.Frames) == 0 {
		return tea.Quit
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.anim.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-8, 10), maxWidth)
		m.progress.Width = m.width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quit = true
			return m, tea.Quit
		}
	case tickMsg:
		if m.index+1 >= len(m.anim.Frames) {
			m.done = true
			return m, tea.Quit
		}
		m.index++
		return m, m.tick()
	}
	return m, nil
}

// Frame reports the frame currently shown.
func (m Model) Frame() figuredto.FrameOutput {
	if len(m.anim.Frames) == 0 {
		return figuredto.FrameOutput{}
	}
	return m.anim.Frames[m.index]
}

// Finished reports whether the last frame was reached.
func (m Model) Finished() bool { return m.done }

// Aborted reports whether the user quit before the last frame.
func (m Model) Aborted() bool { return m.quit }

func (m Model) View() string {
	frame := m.Frame()
	ratio := 0.0
	if m.anim.Capacity > 0 {
		ratio = frame.Volume / m.anim.Capacity
	}
	shown := m.volumes
	if len(shown) > 0 {
		shown = shown[:m.index+1]
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Muted.Render(frame.TimeLabel),
		strings.Repeat(" ", 4),
		theme.Hot.Render(frame.VolumeLabel),
	)
	title := m.anim.Title
	if title == "" {
		title = defaultTitle
	}
	body := strings.Join([]string{
		theme.Title.Render(title),
		header,
		m.progress.ViewAs(ratio),
		theme.Curve.Render(components.Sparkline(shown, m.anim.Capacity, m.width)),
		theme.Muted.Render(fmt.Sprintf("frame %d/%d  capacity %.0f ml  %.0f s", frame.Index+1, len(m.anim.Frames), m.anim.Capacity, m.anim.CollectionTime)),
		m.help.View(m.keys),
	}, "\n")
	return theme.Pane.Render(body) + "\n"
}
