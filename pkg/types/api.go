package types

// FiguresResponse wraps the list returned by GET /figures.
type FiguresResponse struct {
	// Available demo figures.
	Figures []FigureInfo `json:"figures"`
}

// WidthsResponse wraps the journal width table returned by GET /widths.
type WidthsResponse struct {
	// Known journal widths, sorted by name.
	Widths []JournalWidth `json:"widths"`
}

// ErrorResponse is the uniform JSON error payload.
type ErrorResponse struct {
	// Human-readable error message.
	// example: unknown figure "irsi"
	Error string `json:"error" example:"unknown figure \"irsi\""`
	// HTTP status code echoed in the body.
	// example: 404
	Code int `json:"code" example:"404"`
}
