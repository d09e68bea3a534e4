package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fdlang/fdl/log"
	"github.com/goccy/go-yaml"
)

// Export renders a document as JSON or YAML on standard output.
//
// Duplicate section and field names collapse to their first occurrence,
// matching lookup order.
type Export struct {
	File   string `arg:"" default:"-" help:"FDL input file or '-' for stdin" name:"file"`
	Format string `default:"json" enum:"json,yaml" help:"Output format (${enum})" short:"o"`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, e.File)
	if err != nil {
		return err
	}

	tree := doc.ToMap()

	var out []byte

	switch e.Format {
	case "yaml":
		out, err = yaml.Marshal(tree)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		out, err = json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}
		out = append(out, '\n')
	}

	fmt.Print(string(out))

	log.TraceContext(ctx, "export complete",
		slog.String("format", e.Format),
		slog.Int("sections", len(tree)),
	)

	return nil
}
