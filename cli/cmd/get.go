package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Get fetches one field value from a document and prints it.
type Get struct {
	Section string `arg:"" help:"Section name" name:"section"`
	Field   string `arg:"" help:"Field name"   name:"field"`
	File    string `       help:"FDL input file or '-' for stdin" default:"-" short:"f"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, g.File)
	if err != nil {
		return err
	}

	value, ok := doc.Fetch(g.Section, g.Field)
	if !ok {
		return ErrNotFound.With(
			slog.String("section", g.Section),
			slog.String("field", g.Field),
		)
	}

	fmt.Println(value)

	return nil
}
