package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = parseLevel(os.Getenv("JOURNALPLOT_LOG_LEVEL"))

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logRender reports one render request's outcome at info level or above.
func logRender(r *http.Request, lvl LogLevel, figure, format string, status int, dur time.Duration, err error) {
	if lvl < LevelInfo {
		if err == nil || lvl < LevelError {
			return
		}
	}
	if zlog != nil {
		z := zlog.Info().
			Str("figure", figure).
			Str("format", format).
			Int("status", status).
			Dur("dur", dur)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		if err != nil {
			z = z.Err(err)
		}
		z.Msg("render")
		return
	}
	if err != nil {
		log.Printf("render figure=%s format=%s status=%d dur=%s err=%v", figure, format, status, dur, err)
		return
	}
	log.Printf("render figure=%s format=%s status=%d dur=%s", figure, format, status, dur)
}
