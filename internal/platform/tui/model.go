package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drops/internal/config"
	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/games/drops"
	"github.com/vovakirdan/tui-drops/internal/registry"
	"github.com/vovakirdan/tui-drops/internal/sched"
)

// Rows used outside the board: HUD above, announcer below it. The help bar
// under the announcer grows when full help is shown.
const (
	hudRows       = 1
	announcerRows = 1
)

var (
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	difficultyTag  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	stateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	announcerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a game screen.
type Options struct {
	Config     config.GameConfig
	Profiles   *registry.Registry
	Difficulty config.DifficultyPreset
	Runtime    core.RuntimeConfig
	Player     CuePlayer   // nil plays no sound
	Logger     *log.Logger // nil discards
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	game       *drops.Game
	clock      *sched.Clock
	board      *Board
	profiles   *registry.Registry
	difficulty config.DifficultyPreset
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	logger     *log.Logger
	lastFrame  time.Time
	quitting   bool
}

// NewModel wires a game, its virtual clock and a board of the configured size.
func NewModel(opts Options) (Model, error) {
	profiles := opts.Profiles
	if profiles == nil {
		var err error
		profiles, err = registry.FromConfig(opts.Config)
		if err != nil {
			return Model{}, err
		}
	}

	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = config.DifficultyNormal
	}
	profile, err := profiles.Lookup(difficulty)
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	board := NewBoard(cfg.ScreenW, boardHeight(cfg.ScreenH, footerRows(h, keys)), opts.Config.Session.Toast(), rand.New(rand.NewSource(cfg.Seed+1)))
	board.SetPlayer(opts.Player)
	board.SetMuted(cfg.Muted)

	clock := sched.NewClock()
	game := drops.New(drops.Options{
		Config:    opts.Config,
		Profile:   profile,
		Scheduler: clock,
		Presenter: board,
		Rand:      rand.New(rand.NewSource(cfg.Seed)),
		Logger:    logger,
	})
	game.Reset()

	return Model{
		game:       game,
		clock:      clock,
		board:      board,
		profiles:   profiles,
		difficulty: difficulty,
		keys:       keys,
		help:       h,
		config:     cfg,
		logger:     logger,
	}, nil
}

// footerRows returns the rows below the board for the current help mode.
func footerRows(h help.Model, keys KeyMap) int {
	return announcerRows + lipgloss.Height(h.View(keys))
}

func boardHeight(screenH, footer int) int {
	return core.Max(0, screenH-hudRows-footer)
}

// layout sizes the board to whatever the HUD and footer leave free.
func (m Model) layout() {
	m.board.Resize(m.config.ScreenW, boardHeight(m.config.ScreenH, footerRows(m.help, m.keys)))
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleAction applies a player action to the game.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		m.game.Start()
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionReset:
		m.game.Reset()
	case core.ActionEasy:
		m.selectDifficulty(config.DifficultyEasy)
	case core.ActionNormal:
		m.selectDifficulty(config.DifficultyNormal)
	case core.ActionHard:
		m.selectDifficulty(config.DifficultyHard)
	case core.ActionDifficulty:
		m.selectDifficulty(m.profiles.Next(m.difficulty))
	case core.ActionSound:
		muted := m.board.ToggleMute()
		m.board.Notice(soundNotice(muted))
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

// selectDifficulty swaps the active profile. Drops already falling keep
// their own.
func (m *Model) selectDifficulty(key config.DifficultyPreset) {
	p, err := m.profiles.Lookup(key)
	if err != nil {
		m.logger.Warn("difficulty not available", "difficulty", key, "error", err)
		return
	}
	m.difficulty = key
	m.game.SetProfile(p)
	m.board.Notice(fmt.Sprintf("Difficulty: %s", p.Name))
}

func soundNotice(muted bool) string {
	if muted {
		return "Sound off"
	}
	return "Sound on"
}

// handleMouse forwards left clicks to the board in board coordinates.
// The board always starts right below the HUD.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.board.Click(msg.X, msg.Y-hudRows)
	return m, nil
}

// handleResize processes window resize events. The round keeps running;
// drops are positioned relative to the field.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleFrame advances animation and the game clock by the frame time.
// Drops only fall while the round is running.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastFrame, now, m.config.FPS)
	m.lastFrame = now

	m.advance(dt)
	return m, frameCmd(m.config.FPS)
}

func (m Model) advance(dt time.Duration) {
	if m.game.State() == drops.StateRunning {
		m.board.Fall(dt)
	}
	m.clock.Advance(dt)
	m.board.Step(dt)
}

// View renders the HUD, the board and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := RenderScreen(m.board.Draw())
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHUD(),
		field,
		announcerStyle.Render(truncate(m.board.Announcement(), m.config.ScreenW)),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderHUD() string {
	scoreStyle := style(core.ColorScore)
	if m.board.Pulsing() {
		scoreStyle = style(core.ColorScorePulse)
	}
	timeStyle := hudStyle
	if m.board.Warning() {
		timeStyle = style(core.ColorWarning)
	}

	parts := []string{
		labelStyle.Render("Score ") + scoreStyle.Render(fmt.Sprintf("%3d", m.board.Score())),
		labelStyle.Render("Time ") + timeStyle.Render(fmt.Sprintf("%2ds", m.board.TimeLeft())),
		labelStyle.Render("Target ") + hudStyle.Render(fmt.Sprintf("%d", m.game.Profile().TargetScore)),
		difficultyTag.Render(m.game.Profile().Name),
	}
	if m.board.Streak() {
		parts = append(parts, style(core.ColorStreak).Render("streak!"))
	}
	if m.board.Muted() {
		parts = append(parts, labelStyle.Render("muted"))
	}
	parts = append(parts, stateStyle.Render(stateHint(m.game.State())))

	return lipgloss.NewStyle().MaxWidth(m.config.ScreenW).Render(strings.Join(parts, "  "))
}

func stateHint(s drops.State) string {
	switch s {
	case drops.StateIdle:
		return "press s to start"
	case drops.StatePaused:
		return "paused"
	case drops.StateEnded:
		return "round over, s to play again"
	default:
		return ""
	}
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}

// Game returns the controller driven by this model.
func (m Model) Game() *drops.Game { return m.game }

// Board returns the presenter of this model.
func (m Model) Board() *Board { return m.board }

// Run starts the Bubble Tea program for a game screen.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
