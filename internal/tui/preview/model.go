// Package preview animates the frames of a transform in the terminal.
package preview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/pkg/color"
)

const (
	defaultFPS   = 12
	defaultWidth = 80
)

// TickMsg advances the animation by one frame.
type TickMsg time.Time

// Model is the preview model
type Model struct {
	title  string
	frames []any

	index   int
	playing bool
	fps     int

	keys     KeyMap
	help     help.Model
	progress progress.Model

	width int
}

// NewModel creates a preview over frames played at fps frames per second.
// A non-positive fps uses the default rate.
func NewModel(title string, frames []any, fps int) Model {
	if fps <= 0 {
		fps = defaultFPS
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultWidth - 20

	return Model{
		title:    title,
		frames:   frames,
		playing:  len(frames) > 1,
		fps:      fps,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		progress: bar,
		width:    defaultWidth,
	}
}

// Init starts playback.
func (m Model) Init() tea.Cmd {
	if !m.playing {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(10, msg.Width-20)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.index = m.wrap(m.index + 1)
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if len(m.frames) < 2 {
			return m, nil
		}
		m.playing = !m.playing
		if m.playing {
			return m, m.tick()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.playing = false
		m.index = m.wrap(m.index + 1)

	case key.Matches(msg, m.keys.Prev):
		m.playing = false
		m.index = m.wrap(m.index - 1)

	case key.Matches(msg, m.keys.Restart):
		m.index = 0

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) wrap(i int) int {
	n := len(m.frames)
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Index returns the current frame index.
func (m Model) Index() int {
	return m.index
}

// Playing reports whether the animation is running.
func (m Model) Playing() bool {
	return m.playing
}

// Current returns the value of the current frame, or nil without frames.
func (m Model) Current() any {
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[m.index]
}

// View renders the current model state
func (m Model) View() string {
	if len(m.frames) == 0 {
		return render.MutedStyle.Render("No frames to preview.") + "\n"
	}

	ratio := 0.0
	if len(m.frames) > 1 {
		ratio = float64(m.index) / float64(len(m.frames)-1)
	}

	status := "paused"
	if m.playing {
		status = "playing"
	}

	counter := fmt.Sprintf("frame %d/%d  %s", m.index+1, len(m.frames), status)

	sections := []string{
		render.TitleStyle.Render(m.title),
		"",
		m.renderFrame(m.Current()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, m.progress.ViewAs(ratio), "  ", render.MutedStyle.Render(counter)),
		"",
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderFrame(v any) string {
	c, ok := v.(color.Color)
	if !ok {
		return render.Value(v)
	}

	width := max(10, m.width-4)
	swatch := render.Swatch(c, width)
	return lipgloss.JoinVertical(lipgloss.Left, swatch, swatch, swatch, render.Plain(c))
}
