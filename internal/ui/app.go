package ui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sentradeck/internal/config"
	"sentradeck/internal/deck"
	"sentradeck/internal/slides"
)

// Options configures the presenter.
type Options struct {
	Style               string
	StartSlide          int
	AutoAdvanceInterval time.Duration
	Timing              deck.Timing
	ResizeDebounce      time.Duration
	SwipeThreshold      int
	SwipeMaxVertical    int
	Fullscreen          bool
	Observer            deck.Observer
	Logger              *slog.Logger
	IsTerminal          func() bool // defaults to StdoutIsTerminal
}

// OptionsFromConfig maps loaded settings onto presenter options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Style:               cfg.Style,
		StartSlide:          cfg.StartSlide,
		AutoAdvanceInterval: cfg.AutoAdvanceInterval,
		Timing: deck.Timing{
			SwapDelay:      cfg.Timing.Swap,
			SettleDelay:    cfg.Timing.Settle,
			AnimationDelay: cfg.Timing.Animation,
		},
		ResizeDebounce:   cfg.Timing.ResizeDebounce,
		SwipeThreshold:   cfg.Swipe.Threshold,
		SwipeMaxVertical: cfg.Swipe.MaxVertical,
		Fullscreen:       cfg.Fullscreen,
	}
}

func (o Options) withDefaults() Options {
	def := OptionsFromConfig(config.Default())
	if o.Style == "" {
		o.Style = def.Style
	}
	if o.AutoAdvanceInterval <= 0 {
		o.AutoAdvanceInterval = def.AutoAdvanceInterval
	}
	if o.ResizeDebounce <= 0 {
		o.ResizeDebounce = def.ResizeDebounce
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = def.SwipeThreshold
	}
	if o.SwipeMaxVertical <= 0 {
		o.SwipeMaxVertical = def.SwipeMaxVertical
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// resizeMsg ends a resize debounce window. Only the latest one counts.
type resizeMsg struct {
	seq int
}

// AppModel is the root presenter model. It routes terminal input to the
// deck controller and draws the stage.
type AppModel struct {
	Deck       *slides.Deck
	Controller *deck.Controller
	Stage      *Stage
	Keys       *KeybindRegistry

	sched      *cmdScheduler
	fullscreen *Fullscreen
	swipe      *swipeTracker
	opts       Options
	log        *slog.Logger

	resizeSeq int
	showHelp  bool
	framing   bool // a frameMsg is in flight
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the presenter for d.
func NewAppModel(d *slides.Deck, opts Options) *AppModel {
	opts = opts.withDefaults()
	stage := NewStage(d, opts.Style)
	sched := newCmdScheduler()
	ctrl := deck.New(stage, sched,
		deck.WithTiming(opts.Timing),
		deck.WithObserver(opts.Observer),
		deck.WithLogger(opts.Logger),
	)
	return &AppModel{
		Deck:       d,
		Controller: ctrl,
		Stage:      stage,
		Keys:       DefaultKeybinds(),
		sched:      sched,
		fullscreen: NewFullscreen(opts.Fullscreen, opts.IsTerminal),
		swipe:      newSwipeTracker(opts.SwipeThreshold, opts.SwipeMaxVertical),
		opts:       opts,
		log:        opts.Logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Controller.Start()
	if a.opts.StartSlide > 1 {
		a.Controller.GoTo(a.opts.StartSlide)
	}
	return a.commands()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case timerMsg:
		a.sched.Fire(msg.id)
	case frameMsg:
		a.framing = false
		a.Stage.StepAnimations()
	case resizeMsg:
		if msg.seq == a.resizeSeq {
			a.Controller.RefreshDisplay()
		}
	case tea.WindowSizeMsg:
		a.Stage.SetSize(msg.Width, msg.Height)
		a.resizeSeq++
		seq := a.resizeSeq
		cmd = tea.Tick(a.opts.ResizeDebounce, func(time.Time) tea.Msg {
			return resizeMsg{seq: seq}
		})
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case tea.MouseMsg:
		cmd = a.handleMouse(msg)
	}
	return a, tea.Batch(cmd, a.commands())
}

// commands collects scheduler ticks and, while an entry animation runs,
// the next frame.
func (a *appModelAdapter) commands() tea.Cmd {
	cmds := []tea.Cmd{a.sched.Drain()}
	if !a.framing && a.Stage.Animating() {
		a.framing = true
		cmds = append(cmds, tea.Tick(frameInterval, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := a.Keys.Lookup(msg)
	if !ok {
		if a.Mode() == ModePrint {
			return a.Stage.UpdatePrintView(msg)
		}
		return nil
	}
	if action.Navigation() && a.Controller.Animating() {
		return nil
	}

	switch action {
	case ActionNext:
		a.Controller.Next()
	case ActionPrev:
		a.Controller.Prev()
	case ActionFirst:
		a.Controller.First()
	case ActionLast:
		a.Controller.Last()
	case ActionRestart:
		a.Controller.GoTo(1)
	case ActionPrint:
		a.Controller.TogglePrintMode()
	case ActionAuto:
		a.toggleAutoAdvance()
	case ActionFullscreen:
		cmd, err := a.fullscreen.Toggle()
		if err != nil {
			a.log.Warn("fullscreen toggle rejected", "error", err)
			return nil
		}
		a.log.Info("fullscreen toggled", "on", a.fullscreen.On())
		return cmd
	case ActionHelp:
		a.showHelp = !a.showHelp
	case ActionQuit:
		a.Controller.StopAutoAdvance()
		return tea.Quit
	}
	return nil
}

func (a *appModelAdapter) toggleAutoAdvance() {
	if a.Controller.ToggleAutoAdvance(a.opts.AutoAdvanceInterval) {
		a.Stage.SetStatus("auto " + a.Controller.AutoAdvanceInterval().String())
		return
	}
	a.Stage.SetStatus("")
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionMotion {
		return nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		if a.Mode() == ModePrint {
			return a.Stage.UpdatePrintView(msg)
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			a.swipe.Start(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if !a.swipe.Active() {
			return nil
		}
		swipe, moved := a.swipe.End(msg.X, msg.Y)
		switch {
		case swipe == SwipeNone && !moved:
			a.click(msg.X, msg.Y)
		case a.Controller.Animating():
			// dropped mid-transition
		case swipe == SwipeNext:
			a.Controller.Next()
		case swipe == SwipePrev:
			a.Controller.Prev()
		}
	}
	return nil
}

// click activates the footer control at (x, y).
func (a *appModelAdapter) click(x, y int) {
	if a.Mode() == ModePrint {
		return
	}
	_, h := a.Stage.Size()
	if y != h-1 {
		return
	}
	z := a.Stage.FooterHit(x)
	if z.kind == zoneNone || a.Controller.Animating() {
		return
	}
	switch z.kind {
	case zonePrev:
		a.Controller.Prev()
	case zoneNext:
		a.Controller.Next()
	case zoneDot:
		a.Controller.GoTo(z.index)
	}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Mode() == ModePrint {
		return a.Stage.PrintView()
	}
	w, h := a.Stage.Size()
	help := a.helpView(w, h-3)
	bodyH := h - 3
	if help != "" {
		bodyH -= lipgloss.Height(help)
	}
	if bodyH < 0 {
		bodyH = 0
	}

	parts := []string{a.Stage.ProgressView(), "", a.Stage.SlideView(bodyH)}
	if help != "" {
		parts = append(parts, help)
	}
	parts = append(parts, a.Stage.FooterView())
	return strings.Join(parts, "\n")
}

// helpView returns the help shown above the footer in at most maxRows rows.
// The expanded box drops back to the one-line bar when it does not fit.
func (a *appModelAdapter) helpView(width, maxRows int) string {
	if a.showHelp {
		if full := RenderKeybindHelp(a.Keys, width, true); lipgloss.Height(full) <= maxRows {
			return full
		}
	}
	if maxRows < 1 {
		return ""
	}
	return RenderKeybindHelp(a.Keys, width, false)
}

// Export renders d in print mode at the given width, for writing the whole
// deck to a non-interactive output.
func Export(d *slides.Deck, opts Options, width int) string {
	opts = opts.withDefaults()
	stage := NewStage(d, opts.Style)
	stage.SetSize(width, defaultHeight)
	ctrl := deck.New(stage, newCmdScheduler(), deck.WithLogger(opts.Logger))
	ctrl.TogglePrintMode()
	return stage.PrintDocument() + "\n"
}
