package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// DeckService builds a deck from its source, writes it and verifies the result
type DeckService struct {
	source    ports.DeckSource
	exporter  ports.DeckExporter
	inspector ports.DeckInspector
	logger    *slog.Logger
}

// NewDeckService creates a new deck service. The inspector is optional; without
// one the written document is not read back.
func NewDeckService(
	source ports.DeckSource,
	exporter ports.DeckExporter,
	inspector ports.DeckInspector,
	logger *slog.Logger,
) *DeckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckService{
		source:    source,
		exporter:  exporter,
		inspector: inspector,
		logger:    logger.With(slog.String("service", "deck"), slog.String("deck", source.Name())),
	}
}

// Outline returns the validated deck definition without writing anything
func (s *DeckService) Outline(style entities.Style) (*entities.Deck, error) {
	deck, err := s.source.Deck(style)
	if err != nil {
		return nil, fmt.Errorf("building deck: %w", err)
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	return deck, nil
}

// Build produces the deck, writes it and, for presentation output, reads the
// file back and checks that every slide made it
func (s *DeckService) Build(ctx context.Context, style entities.Style, options *entities.ExportOptions) (*entities.ExportResult, error) {
	if options == nil {
		return nil, errors.New("export options cannot be nil")
	}
	if options.OutputPath == "" {
		return nil, errors.New("output path cannot be empty")
	}

	deck, err := s.Outline(style)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("deck assembled", slog.Int("slides", deck.SlideCount()), slog.String("format", string(options.Format)))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build cancelled: %w", err)
	}

	result, err := s.exporter.Export(ctx, deck, options)
	if err != nil {
		return nil, fmt.Errorf("exporting deck: %w", err)
	}
	result.SlideCount = deck.SlideCount()

	if s.inspector != nil && isPresentation(options.Format) {
		summary, err := s.inspector.Inspect(ctx, result.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("reading back %s: %w", result.OutputPath, err)
		}
		if summary.SlideCount != deck.SlideCount() {
			return nil, fmt.Errorf("%w: built %d, read back %d", entities.ErrSlideCountMismatch, deck.SlideCount(), summary.SlideCount)
		}
		result.SlideCount = summary.SlideCount
		s.logger.Debug("document verified", slog.String("path", result.OutputPath), slog.Int("slides", summary.SlideCount))
	}

	s.logger.Debug("deck written",
		slog.String("path", result.OutputPath),
		slog.String("format", result.Format),
		slog.Int("slides", result.SlideCount),
		slog.Int64("bytes", result.FileSize),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

func isPresentation(format entities.ExportFormat) bool {
	return format == "" || format == entities.FormatPowerPoint
}

var _ ports.DeckService = (*DeckService)(nil)
