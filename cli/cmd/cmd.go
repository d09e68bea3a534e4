package cmd

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fdlang/fdl/fdl"
	"github.com/fdlang/fdl/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// configPathKey is used to store the configuration file path in
// [context.Context].
type configPathKey struct{}

// WithConfigPath returns a new context.Context carrying the path of the
// CLI configuration file.
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

func configPathFrom(ctx context.Context) string {
	path, _ := ctx.Value(configPathKey{}).(string)

	return path
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// loadDocument loads the FDL document at path, reading standard input when
// path is "-". Trace diagnostics go to the default logger.
func loadDocument(ctx context.Context, path string) (*fdl.Document, error) {
	if path == stdinSource {
		return fdl.LoadReader(ctx, os.Stdin, fdl.WithLogger(log.Default()))
	}

	return fdl.Load(ctx, path, fdl.WithLogger(log.Default()))
}
