package pptx

import (
	"context"
	"fmt"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// WriteFile encodes the deck and writes it to path, replacing any existing
// file. The parent directory must exist. Either the complete document lands
// at path or nothing does. Returns the number of bytes written.
func WriteFile(ctx context.Context, deck *entities.Deck, path string) (int64, error) {
	data, err := Encode(ctx, deck)
	if err != nil {
		return 0, err
	}

	if err := ports.WriteFileAtomic(ports.NewRealFileSystem(), path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	return int64(len(data)), nil
}
