package wallview

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/wall"
)

const wheelStep = 3

// callbackMsg carries a deferred gesture callback onto the program loop.
type callbackMsg func()

// Model is the Bubble Tea model showing a wall full screen. The last row is
// a status line and the last column a scrollbar.
type Model struct {
	wall      *wall.Wall
	canvas    *Canvas
	gesture   *wall.Gesture
	scrollbar Scrollbar
	program   *tea.Program
	logger    *slog.Logger

	width, height int
	status        string
	statusStyle   lipgloss.Style
}

// New creates a model for src configured from cfg.
func New(cfg wall.Config, src wall.DataSource, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Model{
		canvas:      NewCanvas(),
		scrollbar:   NewScrollbar(),
		logger:      logger,
		status:      "drag or scroll to move, click a tile, q to quit",
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	m.wall = wall.New(m.canvas, cfg.Options(logger)...)
	m.wall.SetOnItemClick(func(_ wall.Surface, index int, id int64) {
		m.status = fmt.Sprintf("clicked #%d (id %d)", index, id)
	})
	m.wall.SetOnItemLongClick(func(_ wall.Surface, index int, id int64) bool {
		m.status = fmt.Sprintf("long pressed #%d (id %d)", index, id)
		return true
	})
	m.wall.SetDataSource(src)

	opts := append(cfg.GestureOptions(logger), wall.WithScheduler(wall.PostScheduler{Post: m.post}))
	m.gesture = wall.NewGesture(m.wall, opts...)
	return m
}

// Wall returns the wall shown by the model.
func (m *Model) Wall() *wall.Wall { return m.wall }

// Canvas returns the host the wall draws into.
func (m *Model) Canvas() *Canvas { return m.canvas }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// Run starts a full screen program with mouse support and blocks until it
// quits.
func (m *Model) Run(opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	m.program = tea.NewProgram(m, opts...)
	_, err := m.program.Run()
	if err != nil {
		return fmt.Errorf("wallview: %w", err)
	}
	return nil
}

// post hands f to the program loop. Without a running program the callback
// is dropped.
func (m *Model) post(f func()) {
	if m.program != nil {
		m.program.Send(callbackMsg(f))
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas.RequestRelayout()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "j", "down":
			m.wall.Scroll(1)
		case "k", "up":
			m.wall.Scroll(-1)
		case "pgdown", " ", "f":
			m.wall.Scroll(m.pageSize())
		case "pgup", "b":
			m.wall.Scroll(-m.pageSize())
		case "home", "g":
			m.wall.Scroll(-m.wall.ScrollOffset())
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case callbackMsg:
		msg()
	}

	m.relayout()
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.wall.Scroll(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.wall.Scroll(wheelStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.gesture.HandlePointer(wall.PointerEvent{Action: wall.PointerDown, X: x, Y: y})
	case msg.Action == tea.MouseActionMotion:
		if m.gesture.State() != wall.TouchResting {
			m.gesture.HandlePointer(wall.PointerEvent{Action: wall.PointerMove, X: x, Y: y})
		}
	case msg.Action == tea.MouseActionRelease:
		if m.gesture.State() != wall.TouchResting {
			m.gesture.HandlePointer(wall.PointerEvent{Action: wall.PointerUp, X: x, Y: y})
		}
	}
}

// wallSize returns the cells available to the wall.
func (m *Model) wallSize() (int, int) {
	return max(m.width-1, 0), max(m.height-1, 0)
}

func (m *Model) pageSize() int {
	return max(m.wall.ViewportHeight()-1, 1)
}

func (m *Model) relayout() {
	if !m.canvas.TakeRelayout() {
		return
	}
	w, h := m.wallSize()
	m.wall.Measure(wall.Exact(w), wall.Exact(h))
	m.canvas.SetClip(m.wall.Viewport())
	m.wall.Layout()
	m.logger.Debug("relayout", "width", w, "height", h, "children", len(m.canvas.Children()))
}

// View implements tea.Model.
func (m *Model) View() string {
	w, h := m.wallSize()
	if w == 0 || h == 0 {
		return ""
	}
	offset, extent, rng := m.wall.ScrollMetrics()
	bar := m.scrollbar
	bar.Offset, bar.Extent, bar.Range = offset, extent, rng

	body := lipgloss.JoinHorizontal(lipgloss.Top, Render(m.canvas, w, h), bar.View(h))
	status := m.statusStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
