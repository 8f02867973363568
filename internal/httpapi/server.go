package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"journalplot/internal/render"
	"journalplot/pkg/journal"
	"journalplot/pkg/types"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListFigures() []types.FigureInfo
	Widths() []types.JournalWidth
	Render(ctx context.Context, name string, p render.Params, format string, dpi float64, w io.Writer) error
	Ready() bool
}

// NewMux builds the preview server router: /figures, /widths, /healthz,
// /readyz and /metrics.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON and SVG responses
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	// ListFigures godoc
	// @Summary List demo figures
	// @Produce json
	// @Success 200 {object} types.FiguresResponse
	// @Router /figures [get]
	r.Get("/figures", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.FiguresResponse{Figures: svc.ListFigures()}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	// Widths godoc
	// @Summary Journal width table
	// @Produce json
	// @Success 200 {object} types.WidthsResponse
	// @Router /widths [get]
	r.Get("/widths", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(types.WidthsResponse{Widths: svc.Widths()}); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	})

	// RenderFigure godoc
	// @Summary Render a demo figure
	// @Param name path string true "figure name"
	// @Param format query string false "svg, png, pdf, eps, tiff or jpeg (default svg)"
	// @Param journal query string false "journal width name, e.g. nature_single"
	// @Param width_mm query number false "figure width in mm"
	// @Param aspect query number false "height/width ratio"
	// @Param dpi query number false "raster resolution (default 600)"
	// @Success 200 {file} binary
	// @Failure 400 {object} types.ErrorResponse
	// @Failure 404 {object} types.ErrorResponse
	// @Router /figures/{name} [get]
	r.Get("/figures/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		q := r.URL.Query()

		format := q.Get("format")
		if format == "" {
			format = "svg"
		}
		ct, ok := journal.ContentType(format)
		if !ok {
			writeJSONError(w, http.StatusBadRequest, "unsupported format "+strconv.Quote(format))
			return
		}

		var p render.Params
		p.Journal = q.Get("journal")
		var err error
		if p.WidthMM, err = queryFloat(q.Get("width_mm")); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid width_mm")
			return
		}
		if p.AspectRatio, err = queryFloat(q.Get("aspect")); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid aspect")
			return
		}
		dpi, err := queryFloat(q.Get("dpi"))
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid dpi")
			return
		}

		start := time.Now()
		lvl := requestLogLevel(r)

		// Buffer the render so failures can still produce a JSON error.
		var buf bytes.Buffer
		err = svc.Render(r.Context(), name, p, format, dpi, &buf)
		ObserveRender(name, format, time.Since(start), err)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case render.IsUnknownFigure(err):
				status = http.StatusNotFound
			case render.IsUnknownJournal(err):
				status = http.StatusBadRequest
			}
			writeJSONError(w, status, err.Error())
			logRender(r, lvl, name, format, status, time.Since(start), err)
			return
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			// Client went away mid-response; nothing sensible to send.
			logRender(r, lvl, name, format, http.StatusOK, time.Since(start), err)
			return
		}
		logRender(r, lvl, name, format, http.StatusOK, time.Since(start), nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

func queryFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
