package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// List prints section names, or the field names of one section.
type List struct {
	Section string `arg:"" help:"Section whose field names to list" name:"section" optional:""`
	File    string `       help:"FDL input file or '-' for stdin"   default:"-"    short:"f"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, l.File)
	if err != nil {
		return err
	}

	if l.Section == "" {
		// Source order, duplicate names included.
		for s := range doc.Sections() {
			fmt.Println(s.Name)
		}

		return nil
	}

	sec, ok := doc.Section(l.Section)
	if !ok {
		return ErrNotFound.With(slog.String("section", l.Section))
	}

	for _, f := range sec.Fields {
		fmt.Println(f.Name)
	}

	return nil
}
