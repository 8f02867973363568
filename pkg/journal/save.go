package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DefaultDPI is the export resolution for raster formats. Vector formats
// (SVG, PDF, EPS) ignore it.
const DefaultDPI = 600

// SaveOptions tune export. Zero values mean: format from the file
// extension, DefaultDPI.
type SaveOptions struct {
	DPI    float64
	Format string
}

// Save exports the figure to path, picking the format from the extension.
// Prefer .svg for journal submission: it scales, keeps text editable in
// Inkscape, and diffs cleanly.
func (f *Figure) Save(path string) error {
	return f.SaveWith(path, SaveOptions{})
}

// SaveWith exports the figure to path with explicit options.
func (f *Figure) SaveWith(path string, o SaveOptions) error {
	format := o.Format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	if format == "" {
		return fmt.Errorf("cannot infer format for %q: no extension", path)
	}
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.WriteTo(w, format, o.DPI); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// WriteTo renders the figure in the given format onto w. dpi <= 0 uses
// DefaultDPI; it only affects raster formats.
func (f *Figure) WriteTo(w io.Writer, format string, dpi float64) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch strings.ToLower(format) {
	case "svg":
		c := vgsvg.New(f.Width, f.Height)
		f.render(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	case "png":
		c := f.rasterCanvas(dpi)
		_, err := vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	case "tif", "tiff":
		c := f.rasterCanvas(dpi)
		_, err := vgimg.TiffCanvas{Canvas: c}.WriteTo(w)
		return err
	case "jpg", "jpeg":
		c := f.rasterCanvas(dpi)
		_, err := vgimg.JpegCanvas{Canvas: c}.WriteTo(w)
		return err
	case "pdf":
		c := vgpdf.New(f.Width, f.Height)
		f.render(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	case "eps":
		c := vgeps.New(f.Width, f.Height)
		f.render(draw.New(c))
		_, err := c.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported figure format %q", format)
	}
}

func (f *Figure) rasterCanvas(dpi float64) *vgimg.Canvas {
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(int(dpi)),
	)
	f.render(draw.New(c))
	return c
}

// Formats lists the supported export formats.
func Formats() []string {
	return []string{"svg", "png", "pdf", "eps", "tiff", "jpeg"}
}

// ContentType maps an export format to its MIME type, for HTTP serving.
func ContentType(format string) (string, bool) {
	switch strings.ToLower(format) {
	case "svg":
		return "image/svg+xml", true
	case "png":
		return "image/png", true
	case "pdf":
		return "application/pdf", true
	case "eps":
		return "application/postscript", true
	case "tif", "tiff":
		return "image/tiff", true
	case "jpg", "jpeg":
		return "image/jpeg", true
	}
	return "", false
}
