package cmd

import (
	"context"
	"log/slog"

	"github.com/fdlang/fdl/log"
)

// Check validates that a document parses, reporting the byte offset of the
// first malformed construct otherwise.
type Check struct {
	File string `arg:"" default:"-" help:"FDL input file or '-' for stdin" name:"file"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, c.File)
	if err != nil {
		// Lexer errors already carry the byte offset.
		return err
	}

	log.InfoContext(ctx, "document is well formed",
		slog.String("file", c.File),
		slog.Int("sections", doc.Len()),
	)

	return nil
}
