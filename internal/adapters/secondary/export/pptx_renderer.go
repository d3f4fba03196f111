package export

import (
	"context"

	"github.com/fredcamaral/deckgen/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// PowerPointRenderer writes the deck as an Office Open XML presentation
type PowerPointRenderer struct{}

// NewPowerPointRenderer creates a new presentation renderer
func NewPowerPointRenderer() *PowerPointRenderer {
	return &PowerPointRenderer{}
}

// Render encodes the deck and writes it atomically to the output path
func (r *PowerPointRenderer) Render(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	size, err := pptx.WriteFile(ctx, deck, options.OutputPath)
	if err != nil {
		return nil, err
	}

	return &entities.ExportResult{
		Success:    true,
		Format:     string(entities.FormatPowerPoint),
		OutputPath: options.OutputPath,
		FileSize:   size,
		SlideCount: deck.SlideCount(),
	}, nil
}

// Supports returns true if this renderer supports the given format
func (r *PowerPointRenderer) Supports(format entities.ExportFormat) bool {
	return format == entities.FormatPowerPoint
}

// GetMimeType returns the MIME type for presentation exports
func (r *PowerPointRenderer) GetMimeType() string {
	return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
}
