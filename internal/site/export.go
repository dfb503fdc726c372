package site

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"cloudplaza/internal/deck"
)

// Export renders d and writes it to path.
// Write atomically: write to temp file, then rename.
func Export(ctx context.Context, path string, d *deck.Deck) error {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
