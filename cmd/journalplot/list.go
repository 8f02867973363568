package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"journalplot/internal/render"
	"journalplot/pkg/journal"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List demo figures and the journal width table",
		Example: "  journalplot list",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Figures:")
			for _, fi := range render.List() {
				fmt.Fprintf(out, "  %-12s %dx%d at %g mm (aspect %g) - %s\n",
					fi.Name, fi.Rows, fi.Cols, fi.WidthMM, fi.AspectRatio, fi.Description)
			}

			fmt.Fprintln(out, "\nJournal widths (mm):")
			for _, name := range journal.WidthNames() {
				mm, _ := journal.WidthMM(name)
				fmt.Fprintf(out, "  %-16s %g\n", name, mm)
			}
			return nil
		},
	}
}
