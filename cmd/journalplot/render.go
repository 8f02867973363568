package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"journalplot/internal/common/fsutil"
	"journalplot/internal/render"
	"journalplot/pkg/journal"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out     string
		format  string
		dpi     float64
		widthMM float64
		aspect  float64
		width   string
	)
	cmd := &cobra.Command{
		Use:   "render [figure...]",
		Short: "Render demo figures to files",
		Long: `Render the named demo figures (all of them when none are given).
The "widths" figure expands into one file per compared journal width.`,
		Example: `  journalplot render
  journalplot render iris --format png --dpi 300
  journalplot render basic --journal cell_single --out paper/figs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				for _, fi := range render.List() {
					names = append(names, fi.Name)
				}
			}

			dir, err := fsutil.ExpandHome(a.outDir(out))
			if err != nil {
				return err
			}
			if err := fsutil.EnsureDir(dir); err != nil {
				return err
			}
			fm := a.format(format)
			opts := journal.SaveOptions{DPI: a.dpi(dpi)}

			for _, name := range names {
				if name == "widths" && width == "" {
					// Same plot at several physical widths, one file each.
					for _, jw := range render.CompareWidths() {
						path := filepath.Join(dir, outputName("journal_width_"+jw, fm))
						if err := renderOne(a, name, render.Params{Journal: jw}, path, opts); err != nil {
							return err
						}
					}
					continue
				}
				p := render.Params{Journal: width, WidthMM: widthMM, AspectRatio: aspect}
				path := filepath.Join(dir, outputName(name, fm))
				if err := renderOne(a, name, p, path, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output directory (default \"figures\")")
	cmd.Flags().StringVar(&format, "format", "", "Export format: svg|png|pdf|eps|tiff|jpeg (default svg)")
	cmd.Flags().Float64Var(&dpi, "dpi", 0, "Raster resolution (default 600, vector formats ignore it)")
	cmd.Flags().StringVar(&width, "journal", "", "Journal width name, e.g. nature_single")
	cmd.Flags().Float64Var(&widthMM, "width-mm", 0, "Figure width in mm (overridden by --journal)")
	cmd.Flags().Float64Var(&aspect, "aspect", 0, "Height/width ratio")
	return cmd
}

func renderOne(a *app, name string, p render.Params, path string, opts journal.SaveOptions) error {
	f, err := render.Build(name, p)
	if err != nil {
		return err
	}
	if err := f.SaveWith(path, opts); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	a.log.Info().Str("figure", name).Str("path", path).Msg("saved")
	return nil
}

// outputName builds the output filename for a figure and format.
func outputName(name, format string) string {
	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext == "tiff" {
		ext = "tif"
	}
	return name + "." + ext
}
