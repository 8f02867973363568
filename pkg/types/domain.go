package types

// FigureInfo describes a renderable demo figure.
type FigureInfo struct {
	// Stable identifier, used in the render URL.
	// example: multipanel
	Name string `json:"name" example:"multipanel"`
	// Human-friendly description of what the figure shows.
	// example: 2x2 grid with scatter, lines, histogram and bar chart
	Description string `json:"description" example:"2x2 grid with scatter, lines, histogram and bar chart"`
	// Default figure width in millimeters.
	// example: 178
	WidthMM float64 `json:"width_mm" example:"178"`
	// Default height/width ratio.
	// example: 0.8
	AspectRatio float64 `json:"aspect_ratio" example:"0.8"`
	// Panel grid shape.
	// example: 2
	Rows int `json:"rows" example:"2"`
	// example: 2
	Cols int `json:"cols" example:"2"`
}

// JournalWidth is one entry of the journal width table.
type JournalWidth struct {
	// Journal column name, e.g. nature_single.
	// example: nature_single
	Name string `json:"name" example:"nature_single"`
	// Full-page width in millimeters.
	// example: 89
	WidthMM float64 `json:"width_mm" example:"89"`
}
