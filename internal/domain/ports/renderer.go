package ports

import (
	"context"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// DeckExporter writes a deck to disk in one of the supported formats
type DeckExporter interface {
	Export(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error)
}

// DeckInspector reads a written presentation document back
type DeckInspector interface {
	Inspect(ctx context.Context, path string) (*entities.DeckSummary, error)
}
