package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli"
)

const version = "1.0.0"

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLI() *cli.App {
	app := cli.NewApp()
	app.Name = "countdown"
	app.Usage = "count down to the New Year, then watch the fireworks"
	app.Version = version
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "year, y", Usage: "target year (midnight January 1)"},
		cli.StringFlag{Name: "timezone, z", Usage: "local, UTC or an IANA zone name"},
		cli.StringFlag{Name: "theme", Usage: "dark-gold, midnight-blue, aurora or light"},
		cli.IntFlag{Name: "fps", Usage: "frames per second"},
		cli.StringFlag{Name: "log-file", Usage: "write debug logs to this file"},
		cli.BoolFlag{Name: "print, p", Usage: "print the time remaining and exit"},
		cli.BoolFlag{Name: "list-timezones", Usage: "list the selectable timezones and exit"},
		cli.BoolFlag{Name: "celebrate", Usage: "start three seconds before midnight"},
	}
	app.Action = run
	return app
}

func applyFlags(c *cli.Context, config *Config) {
	if c.IsSet("year") {
		config.TargetYear = c.Int("year")
	}
	if c.IsSet("timezone") {
		config.Timezone = c.String("timezone")
	}
	if c.IsSet("theme") {
		config.Theme = c.String("theme")
	}
	if c.IsSet("fps") && c.Int("fps") > 0 {
		config.FPS = c.Int("fps")
	}
	if c.IsSet("log-file") {
		config.LogFile = c.String("log-file")
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "countdown")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func run(c *cli.Context) error {
	config := loadConfig()
	applyFlags(c, config)

	logger, closeLog, err := newLogger(config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	timezones := NewTimezoneService(SystemClock)
	if c.Bool("list-timezones") {
		for _, tz := range timezones.Choices() {
			fmt.Printf("%-20s %s\n", tz, timezones.Label(tz))
		}
		return nil
	}
	if config.Timezone != "" && !timezones.IsValid(config.Timezone) {
		return fmt.Errorf("unknown timezone %q", config.Timezone)
	}

	prefs := NewFileStore(config.PrefsFile, logger)
	tz := config.Timezone
	if tz == "" {
		tz = prefs.LoadTimezone()
	}

	if c.Bool("print") {
		cd := NewCountdown(config.TargetYear, SystemClock, NewFrameLoop(SystemClock), logger)
		cd.SetTimezone(tz)
		fmt.Println(countdownText(cd.CalculateTimeRemaining(), config.TargetYear, timezones.Label(tz)))
		return nil
	}

	var clock Clock = SystemClock
	if c.Bool("celebrate") {
		probe := NewCountdown(config.TargetYear, SystemClock, NewFrameLoop(SystemClock), logger)
		probe.SetTimezone(tz)
		clock = offsetClock{base: SystemClock, offset: probe.Target().Sub(time.Now()) - 3*time.Second}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := newModel(config, logger, clock, prefs, rng)
	m.countdown.SetTimezone(tz)
	if config.Theme != "" {
		m.themes.Apply(config.Theme)
	}

	logger.Info("starting", "year", config.TargetYear, "timezone", tz, "fps", config.FPS)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

type model struct {
	width  int
	height int
	mode   Mode
	help   bool

	config *Config
	logger *slog.Logger
	clock  Clock
	loop   *FrameLoop

	countdown *Countdown
	timezones *TimezoneService
	prefs     PreferencesStore
	themes    *ThemeManager
	surface   *ggSurface
	fireworks *Simulation

	remaining         TimeRemaining
	hasReachedNewYear bool

	errorMessage   string
	successMessage string
}

func newModel(config *Config, logger *slog.Logger, clock Clock, prefs PreferencesStore, rng Random) *model {
	loop := NewFrameLoop(clock)
	m := &model{
		width:     80,
		height:    24,
		mode:      ModeCountdown,
		config:    config,
		logger:    logger,
		clock:     clock,
		loop:      loop,
		countdown: NewCountdown(config.TargetYear, clock, loop, logger),
		timezones: NewTimezoneService(clock),
		prefs:     prefs,
		themes:    NewThemeManager(prefs),
	}
	m.countdown.SetListener(m)

	cols, rows := m.canvasSize()
	surface, err := NewGGSurface(cols*cellWidth, rows*cellHeight)
	if err == nil {
		m.surface = surface
		m.fireworks, err = NewSimulation(surface, loop, rng, logger)
	}
	if err != nil {
		logger.Error("fireworks disabled", "error", err)
		m.surface = nil
	}
	return m
}

func (m *model) Init() tea.Cmd {
	m.countdown.Start()
	return m.frameCmd()
}

func (m *model) frameCmd() tea.Cmd {
	fps := m.config.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSurface()
		return m, nil

	case frameMsg:
		m.loop.RunFrame(m.clock.Now())
		return m, m.frameCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Tick receives every countdown recomputation.
func (m *model) Tick(remaining TimeRemaining) {
	m.remaining = remaining
}

// Completed fades the countdown out and starts the show once.
func (m *model) Completed() {
	m.remaining = TimeRemaining{IsComplete: true}
	if m.hasReachedNewYear {
		return
	}
	m.hasReachedNewYear = true
	m.mode = ModeTransition
	m.logger.Info("countdown complete", "year", m.countdown.TargetYear(), "timezone", m.countdown.Timezone())

	m.loop.After(celebrationDelay, func() {
		m.mode = ModeCelebration
		if m.fireworks != nil {
			m.fireworks.Start()
		}
	})
}

func (m *model) destroy() {
	m.countdown.Stop()
	if m.fireworks != nil {
		m.fireworks.Cleanup()
	}
}

// canvasSize is the fireworks area in terminal cells: the whole window less
// the banner and status lines.
func (m *model) canvasSize() (int, int) {
	cols := m.width
	rows := m.height - 2
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (m *model) resizeSurface() {
	if m.surface == nil {
		return
	}
	cols, rows := m.canvasSize()
	if err := m.surface.Resize(cols*cellWidth, rows*cellHeight); err != nil {
		m.logger.Error("surface resize failed", "error", err)
		return
	}
	m.fireworks.Resize()
}

func (m *model) summary() string {
	return countdownText(m.remaining, m.countdown.TargetYear(), m.timezones.Label(m.countdown.Timezone()))
}

func (m *model) View() string {
	if m.help {
		return m.helpView()
	}

	showFireworks := m.mode == ModeCelebration || (m.fireworks != nil && m.fireworks.Active())
	var body string
	if showFireworks {
		body = m.celebrationView()
	} else {
		body = lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, m.countdownView())
	}
	return body + "\n" + m.statusLine()
}

func (m *model) countdownView() string {
	theme := m.themes.Theme()
	units := []struct {
		value int
		name  string
	}{
		{m.remaining.Days, "DAYS"},
		{m.remaining.Hours, "HOURS"},
		{m.remaining.Minutes, "MINUTES"},
		{m.remaining.Seconds, "SECONDS"},
	}

	cards := make([]string, 0, len(units))
	for _, u := range units {
		digit := theme.Digit.Render(FormatTimeUnit(u.value))
		unit := theme.Unit.Width(lipgloss.Width(digit)).Render(u.name)
		cards = append(cards, lipgloss.JoinVertical(lipgloss.Center, digit, unit), "  ")
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render(fmt.Sprintf("Countdown to %d", m.countdown.TargetYear())),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:len(cards)-1]...),
		theme.Label.Render(m.timezones.Label(m.countdown.Timezone())),
		theme.Help.Render("t/T timezone · c theme · f fireworks · y copy · s/e export · ? help · q quit"),
	)
	if m.mode == ModeTransition {
		return lipgloss.NewStyle().Faint(true).Render(view)
	}
	return view
}

func (m *model) celebrationView() string {
	theme := m.themes.Theme()
	text := fmt.Sprintf("✨ Happy New Year %d! ✨", m.countdown.TargetYear())
	if m.mode != ModeCelebration {
		text = "Fireworks preview"
	}
	banner := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, theme.Banner.Render(text))

	cols, rows := m.canvasSize()
	if m.surface == nil {
		return banner + strings.Repeat("\n", rows)
	}
	return banner + "\n" + renderHalfBlocks(m.surface.Image(), cols, rows)
}

func (m *model) statusLine() string {
	theme := m.themes.Theme()
	switch {
	case m.errorMessage != "":
		return theme.Error.Render(m.errorMessage)
	case m.successMessage != "":
		return theme.Status.Render(m.successMessage)
	}
	return theme.Status.Render(fmt.Sprintf(" %s │ %s │ theme %s ", m.summary(), m.countdown.Timezone(), theme.Name))
}

func (m *model) helpView() string {
	theme := m.themes.Theme()
	lines := []string{
		"KEYBOARD SHORTCUTS",
		"",
		"t / → / l     next timezone",
		"T / ← / h     previous timezone",
		"tab / s-tab   skip two timezones",
		"c             cycle theme",
		"f             start/stop fireworks",
		"y             copy countdown to clipboard",
		"s             save fireworks snapshot (PNG)",
		"e             save countdown line (TXT)",
		"?             toggle this help",
		"q / esc       quit",
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Title.GetForeground()).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
