package entities

import (
	"errors"
	"time"
)

// ErrSlideCountMismatch is returned when a written document reads back with a
// different number of slides than were constructed
var ErrSlideCountMismatch = errors.New("slide count mismatch")

// ExportFormat represents the output formats a deck can be written in
type ExportFormat string

const (
	FormatPowerPoint ExportFormat = "pptx"
	FormatMarkdown   ExportFormat = "markdown"
	FormatHTML       ExportFormat = "html"
	FormatYAML       ExportFormat = "yaml"
)

// SupportedFormats lists every format in a stable order
func SupportedFormats() []ExportFormat {
	return []ExportFormat{FormatPowerPoint, FormatMarkdown, FormatHTML, FormatYAML}
}

// IsValid reports whether the format is supported
func (f ExportFormat) IsValid() bool {
	for _, known := range SupportedFormats() {
		if f == known {
			return true
		}
	}
	return false
}

// ExportOptions contains configuration for one export
type ExportOptions struct {
	Format     ExportFormat `json:"format"`
	OutputPath string       `json:"output_path"`
}

// ExportResult describes a finished export
type ExportResult struct {
	Success    bool          `json:"success"`
	Format     string        `json:"format"`
	OutputPath string        `json:"output_path"`
	FileSize   int64         `json:"file_size"`
	SlideCount int           `json:"slide_count"`
	Duration   time.Duration `json:"duration"`
}

// SlideSummary is what the inspector reads back for a single slide
type SlideSummary struct {
	Index        int      `json:"index"`
	Layout       string   `json:"layout"`
	Title        string   `json:"title"`
	Placeholders []string `json:"placeholders,omitempty"`
	TextBoxes    int      `json:"text_boxes"`
	Rectangles   int      `json:"rectangles"`
	Paragraphs   []string `json:"paragraphs,omitempty"`
}

// DeckSummary is what the inspector reads back from a written document
type DeckSummary struct {
	Title      string         `json:"title"`
	Width      EMU            `json:"width"`
	Height     EMU            `json:"height"`
	SlideCount int            `json:"slide_count"`
	Slides     []SlideSummary `json:"slides"`
}
