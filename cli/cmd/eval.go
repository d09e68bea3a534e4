package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
)

// Eval evaluates an expression against a document and prints the result.
//
// Each section is exposed as a map keyed by field name, so fields are
// addressed as section.field (or section["odd name"] when the name is not
// a valid identifier). All values are strings.
type Eval struct {
	Expression string `arg:"" help:"Expression to evaluate" name:"expression"`
	File       string `       help:"FDL input file or '-' for stdin" default:"-" short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := loadDocument(ctx, e.File)
	if err != nil {
		return err
	}

	env := make(map[string]any, doc.Len())
	for name, fields := range doc.ToMap() {
		env[name] = fields
	}

	program, err := expr.Compile(e.Expression, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return ErrEvaluate.Wrap(err).With(slog.String("expression", e.Expression))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return ErrEvaluate.Wrap(err).With(slog.String("expression", e.Expression))
	}

	fmt.Println(result)

	return nil
}
