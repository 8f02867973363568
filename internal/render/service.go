package render

import (
	"context"
	"io"
	"sync"

	"journalplot/internal/dataset"
	"journalplot/pkg/journal"
	"journalplot/pkg/types"
)

// Service exposes the figure registry to the HTTP layer.
type Service struct {
	readyOnce sync.Once
	ready     bool
}

// NewService returns a render service backed by the builder registry.
func NewService() *Service { return &Service{} }

// ListFigures returns the available demo figures.
func (s *Service) ListFigures() []types.FigureInfo { return List() }

// Widths returns the journal width table sorted by name.
func (s *Service) Widths() []types.JournalWidth {
	names := journal.WidthNames()
	ws := make([]types.JournalWidth, 0, len(names))
	for _, n := range names {
		mm, _ := journal.WidthMM(n)
		ws = append(ws, types.JournalWidth{Name: n, WidthMM: mm})
	}
	return ws
}

// Render builds the named figure and writes it to w in the given format.
func (s *Service) Render(ctx context.Context, name string, p Params, format string, dpi float64, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := Build(name, p)
	if err != nil {
		return err
	}
	return f.WriteTo(w, format, dpi)
}

// Ready reports whether the embedded demo data parses. Checked once.
func (s *Service) Ready() bool {
	s.readyOnce.Do(func() {
		_, err := dataset.LoadIris()
		s.ready = err == nil
	})
	return s.ready
}
