package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsunami-run/internal/core"
	"github.com/vovakirdan/tsunami-run/internal/registry"
	"github.com/vovakirdan/tsunami-run/internal/storage"
)

// helpRows is the number of terminal rows under the game screen.
const helpRows = 1

// digester is implemented by games that can fingerprint their current run.
type digester interface {
	Digest() uint64
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Store   *storage.Store // Run history; nil disables saving
	Logger  *log.Logger    // Step events at debug level; nil disables logging
	KeyHold float32        // Seconds a key press counts as held
}

// Model is the Bubble Tea model for playing a registered mode.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	controls  *ControlState
	gameState core.GameState
	lastTick  *time.Time
	highScore int
	runSaved  *bool // Whether the current game over has been recorded
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.KeyHold <= 0 {
		opts.KeyHold = 0.15
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpRows)),
		opts:     opts,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		controls: NewControlState(opts.KeyHold),
		lastTick: new(time.Time),
		runSaved: new(bool),
	}
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.highScore = m.loadHighScore()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.controls.Press(m.keys, msg) {
		return m, nil
	}

	switch action := m.keys.MapCommand(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.game.Command(action)
		m.controls.Reset()
		*m.runSaved = false
		*m.lastTick = time.Time{}
		m.gameState = m.game.State()
	case core.ActionNone:
	default:
		m.game.Command(action)
		*m.lastTick = time.Time{}
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleResize processes window resize events. The session is size
// independent, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation with the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(*m.lastTick, now)
	*m.lastTick = now

	result := m.game.Step(dt, m.controls.Controls(dt))
	m.gameState = result.State

	if m.opts.Logger != nil {
		for _, ev := range result.Events {
			m.opts.Logger.Debug(ev.Kind.String(), "id", ev.ID, "chunk", ev.Chunk, "detail", ev.Detail)
		}
	}

	if m.gameState.GameOver && !*m.runSaved {
		m.saveRun()
		*m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Best effort: the game goes on regardless.
func (m *Model) saveRun() {
	st := m.gameState
	if m.opts.Logger != nil {
		m.opts.Logger.Info("run ended", "mode", m.game.ID(), "score", st.Score, "distance", st.Distance, "reason", st.Reason)
	}
	if m.opts.Store == nil {
		return
	}

	run := storage.Run{
		Mode:     m.game.ID(),
		Score:    st.Score,
		Distance: st.Distance,
		Reason:   st.Reason,
		Seed:     st.Seed,
		Duration: time.Duration(st.Elapsed * float64(time.Second)),
	}
	if d, ok := m.game.(digester); ok {
		run.Digest = fmt.Sprintf("%016x", d.Digest())
	}

	_, err := m.opts.Store.SaveRun(run)
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
	if st.Score > m.highScore {
		m.highScore = st.Score
	}
}

func (m Model) loadHighScore() int {
	if m.opts.Store == nil {
		return 0
	}
	high, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		return 0
	}
	return high
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tsunami", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.highScore > 0 {
		footer = fmt.Sprintf("best %d  •  %s", m.highScore, footer)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given mode.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
