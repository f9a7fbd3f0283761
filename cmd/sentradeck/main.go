package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sentradeck/internal/config"
	"sentradeck/internal/logging"
	"sentradeck/internal/slides"
	"sentradeck/internal/telemetry"
	"sentradeck/internal/ui"
)

// flags holds command-line overrides. Zero values leave the config alone.
type flags struct {
	configPath string
	deck       string
	start      int
	style      string
	logPath    string
	logLevel   string
	fullscreen bool
	noMouse    bool
	export     bool
	width      int
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to a TOML config file (default $SENTRADECK_CONFIG or the user config dir)")
	flag.StringVar(&f.deck, "deck", "", "markdown deck to present; also accepted as the first argument (default: built-in demo)")
	flag.IntVar(&f.start, "start", 0, "slide to open on (1-based)")
	flag.StringVar(&f.style, "style", "", "glamour style: dark, light, notty, dracula, auto, ...")
	flag.StringVar(&f.logPath, "log", "", "log file path")
	flag.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.BoolVar(&f.fullscreen, "fullscreen", false, "start on the alternate screen")
	flag.BoolVar(&f.noMouse, "no-mouse", false, "disable mouse clicks and swipes")
	flag.BoolVar(&f.export, "export", false, "print every slide to stdout and exit")
	flag.IntVar(&f.width, "width", 80, "line width for -export")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sentradeck [flags] [deck.md]\n\n")
		fmt.Fprintf(os.Stderr, "Sentradeck presents a markdown slide deck in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if f.deck == "" && flag.NArg() > 0 {
		f.deck = flag.Arg(0)
	}
	return f
}

// apply layers flag overrides on top of the loaded config.
func (f flags) apply(cfg *config.Config) {
	if f.deck != "" {
		cfg.Deck = f.deck
	}
	if f.start > 0 {
		cfg.StartSlide = f.start
	}
	if f.style != "" {
		cfg.Style = f.style
	}
	if f.logPath != "" {
		cfg.Log.Path = f.logPath
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.fullscreen {
		cfg.Fullscreen = true
	}
	if f.noMouse {
		cfg.Mouse = false
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	d, err := slides.Load(cfg.Deck)
	if err != nil {
		return err
	}

	opts := ui.OptionsFromConfig(cfg)
	if f.export {
		fmt.Print(ui.Export(d, opts, f.width))
		return nil
	}

	log, logErr := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	defer logging.Close()
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "sentradeck: logging disabled: %v\n", logErr)
	}
	log.Info("starting", "deck", cfg.Deck, "slides", len(d.Slides), "style", cfg.Style)

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	titles := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		titles[i] = s.Title
	}
	visits := telemetry.NewVisitObserver(ctx, tp, titles)
	defer visits.Close()

	opts.Observer = visits
	opts.Logger = log
	model := ui.NewAppModel(d, opts).AsTeaModel()

	var progOpts []tea.ProgramOption
	if cfg.Fullscreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("run presenter: %w", err)
	}
	log.Info("exiting")
	return nil
}

func main() {
	f := parseFlags()
	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "sentradeck: %v\n", err)
		os.Exit(1)
	}
}
