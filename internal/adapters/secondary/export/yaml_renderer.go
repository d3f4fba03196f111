package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// YAMLRenderer dumps the deck definition
type YAMLRenderer struct {
	fs ports.FileSystem
}

// NewYAMLRenderer creates a new YAML renderer
func NewYAMLRenderer(fsys ports.FileSystem) *YAMLRenderer {
	return &YAMLRenderer{fs: fsys}
}

// Render writes the deck definition as YAML
func (r *YAMLRenderer) Render(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, deck); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := ports.WriteFileAtomic(r.fs, options.OutputPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing yaml file: %w", err)
	}

	return &entities.ExportResult{
		Success:    true,
		Format:     string(entities.FormatYAML),
		OutputPath: options.OutputPath,
		FileSize:   int64(buf.Len()),
		SlideCount: deck.SlideCount(),
	}, nil
}

// Supports returns true if this renderer supports the given format
func (r *YAMLRenderer) Supports(format entities.ExportFormat) bool {
	return format == entities.FormatYAML
}

// GetMimeType returns the MIME type for YAML exports
func (r *YAMLRenderer) GetMimeType() string {
	return "application/yaml"
}

// EncodeYAML writes the deck definition with two-space indentation
func EncodeYAML(w io.Writer, deck *entities.Deck) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(deck); err != nil {
		return fmt.Errorf("encoding deck: %w", err)
	}
	return encoder.Close()
}
