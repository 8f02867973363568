package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"journalplot/internal/config"
	"journalplot/pkg/journal"
)

// app carries state shared by the subcommands: the loaded config and the
// logger. Populated by the root command's PersistentPreRun.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log zerolog.Logger
}

func (a *app) init() error {
	lvl, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(lvl)

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug().Str("path", a.configPath).Msg("config loaded")
	}

	style, err := a.cfg.JournalStyle()
	if err != nil {
		return err
	}
	journal.SetDefault(style)
	st := journal.Default()
	a.log.Debug().
		Float64("font_pt", st.BaseFontSize).
		Float64("line_pt", st.LineWidth).
		Msg("journal style set")
	return nil
}

// outDir resolves the output directory: flag > config > ./figures.
func (a *app) outDir(flag string) string {
	if flag != "" {
		return flag
	}
	if a.cfg.OutDir != "" {
		return a.cfg.OutDir
	}
	return "figures"
}

// format resolves the export format: flag > config > svg.
func (a *app) format(flag string) string {
	if flag != "" {
		return flag
	}
	if a.cfg.Format != "" {
		return a.cfg.Format
	}
	return "svg"
}

// dpi resolves the raster resolution: flag > config > library default.
func (a *app) dpi(flag float64) float64 {
	if flag > 0 {
		return flag
	}
	return a.cfg.DPI
}
