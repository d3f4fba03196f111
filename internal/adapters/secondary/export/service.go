package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// ExportErrorType categorizes different types of export errors
type ExportErrorType string

const (
	ErrorTypeValidation    ExportErrorType = "validation"
	ErrorTypeRenderer      ExportErrorType = "renderer"
	ErrorTypeFilesystem    ExportErrorType = "filesystem"
	ErrorTypeConfiguration ExportErrorType = "configuration"
)

// ExportError provides detailed error information with categorization
type ExportError struct {
	Type    ExportErrorType `json:"type"`
	Message string          `json:"message"`
	Details string          `json:"details,omitempty"`
	Code    string          `json:"code,omitempty"`
	Cause   error           `json:"-"`
}

func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s error: %s - %s", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Renderer writes a deck in one format
type Renderer interface {
	Render(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error)
	Supports(format entities.ExportFormat) bool
	GetMimeType() string
}

// Service implements export functionality
type Service struct {
	renderers map[entities.ExportFormat]Renderer
	logger    *slog.Logger
}

// NewService creates a new export service with every built-in renderer registered
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	fsys := ports.NewRealFileSystem()

	service := &Service{
		renderers: make(map[entities.ExportFormat]Renderer),
		logger:    logger.With("component", "export"),
	}

	// Register default renderers
	service.RegisterRenderer(entities.FormatPowerPoint, NewPowerPointRenderer())
	service.RegisterRenderer(entities.FormatMarkdown, NewMarkdownRenderer(fsys))
	service.RegisterRenderer(entities.FormatHTML, NewHTMLRenderer(fsys))
	service.RegisterRenderer(entities.FormatYAML, NewYAMLRenderer(fsys))

	return service
}

// RegisterRenderer registers a renderer for a specific format
func (s *Service) RegisterRenderer(format entities.ExportFormat, renderer Renderer) {
	s.renderers[format] = renderer
}

// Export writes the deck in the requested format. An empty format means pptx.
func (s *Service) Export(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	start := time.Now()

	if err := s.validateOptions(deck, options); err != nil {
		return nil, err
	}

	format := options.Format
	if format == "" {
		format = entities.FormatPowerPoint
	}

	renderer, exists := s.renderers[format]
	if !exists {
		return nil, &ExportError{
			Type:    ErrorTypeConfiguration,
			Message: "unsupported export format",
			Details: string(format),
			Code:    "UNSUPPORTED_FORMAT",
		}
	}

	s.logger.Debug("exporting deck", "format", format, "path", options.OutputPath, "slides", deck.SlideCount())

	result, err := renderer.Render(ctx, deck, options)
	if err != nil {
		exportErr := categorizeError(err)
		s.logger.Debug("export failed", "format", format, "type", exportErr.Type, "error", err)
		return nil, exportErr
	}

	result.Duration = time.Since(start)
	return result, nil
}

// GetSupportedFormats returns the registered formats in a stable order
func (s *Service) GetSupportedFormats() []entities.ExportFormat {
	formats := make([]entities.ExportFormat, 0, len(s.renderers))
	for _, format := range entities.SupportedFormats() {
		if _, ok := s.renderers[format]; ok {
			formats = append(formats, format)
		}
	}
	return formats
}

// GetMimeType returns the MIME type a format is written as
func (s *Service) GetMimeType(format entities.ExportFormat) (string, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	return renderer.GetMimeType(), nil
}

// validateOptions checks the request before anything touches the disk
func (s *Service) validateOptions(deck *entities.Deck, options *entities.ExportOptions) error {
	if deck == nil {
		return &ExportError{
			Type:    ErrorTypeValidation,
			Message: "deck cannot be nil",
			Code:    "NULL_DECK",
		}
	}

	if options == nil {
		return &ExportError{
			Type:    ErrorTypeValidation,
			Message: "export options cannot be nil",
			Code:    "NULL_OPTIONS",
		}
	}

	if options.OutputPath == "" {
		return &ExportError{
			Type:    ErrorTypeValidation,
			Message: "output path is required",
			Code:    "MISSING_OUTPUT_PATH",
		}
	}

	if options.Format != "" && !options.Format.IsValid() {
		return &ExportError{
			Type:    ErrorTypeValidation,
			Message: "unknown export format",
			Details: string(options.Format),
			Code:    "INVALID_FORMAT",
		}
	}

	return nil
}

// categorizeError categorizes an error into an ExportError; the original
// error stays reachable through Unwrap
func categorizeError(err error) *ExportError {
	var exportErr *ExportError
	if errors.As(err, &exportErr) {
		return exportErr
	}

	var pathErr *fs.PathError
	var linkErr *os.LinkError

	switch {
	case errors.As(err, &pathErr), errors.As(err, &linkErr),
		errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return &ExportError{
			Type:    ErrorTypeFilesystem,
			Message: "writing output failed",
			Details: err.Error(),
			Code:    "WRITE_FAILED",
			Cause:   err,
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &ExportError{
			Type:    ErrorTypeRenderer,
			Message: "export cancelled",
			Details: err.Error(),
			Code:    "CANCELLED",
			Cause:   err,
		}
	default:
		return &ExportError{
			Type:    ErrorTypeRenderer,
			Message: "renderer error",
			Details: err.Error(),
			Code:    "RENDERER_ERROR",
			Cause:   err,
		}
	}
}

// Ensure Service implements ports.DeckExporter
var _ ports.DeckExporter = (*Service)(nil)
