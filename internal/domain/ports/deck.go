package ports

import (
	"context"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// DeckSource produces the slide definitions of a deck from a style
type DeckSource interface {
	// Name identifies the deck
	Name() string

	// Deck builds the deck; the same style always yields the same deck
	Deck(style entities.Style) (*entities.Deck, error)
}

// DeckService defines the build use case
type DeckService interface {
	// Build produces the deck and writes it to options.OutputPath
	Build(ctx context.Context, style entities.Style, options *entities.ExportOptions) (*entities.ExportResult, error)

	// Outline returns the deck definition without writing anything
	Outline(style entities.Style) (*entities.Deck, error)
}
