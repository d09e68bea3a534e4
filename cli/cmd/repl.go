package cmd

import (
	"context"

	"github.com/fdlang/fdl/cli/cmd/repl"
	"github.com/fdlang/fdl/log"
	"github.com/fdlang/fdl/pkg"
)

// Repl starts an interactive query shell over a document.
type Repl struct {
	File string `arg:"" default:"-" help:"FDL input file or '-' for stdin" name:"file"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, r.File)
	if err != nil {
		return err
	}

	return repl.Run(ctx, doc, pkg.CacheDir(), log.Default())
}
