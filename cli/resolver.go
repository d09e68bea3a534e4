package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/fdlang/fdl/fdl"
)

// resolve returns a [kong.ConfigurationLoader] that parses config files
// written in FDL itself.
//
// The fields of the first section named section supply flag defaults. Since
// FDL captures names and values verbatim, both halves are whitespace-trimmed
// here so the natural "name = value" layout works. Flag names with hyphens
// (e.g. "log-level") may use underscores in the config file instead.
//
// Example config file:
//
//	[config]
//	log-level = debug
//	log-format = text
//	log-pretty = true
//	[/]
//
// Command-line flags override config file values. A config file that fails
// to parse contributes no values rather than failing the whole CLI.
func resolve(ctx context.Context, section string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		doc, err := fdl.LoadReader(ctx, r)
		if err != nil {
			return config{}, nil
		}

		sec, ok := doc.Section(section)
		if !ok {
			return config{}, nil
		}

		values := make(config, len(sec.Fields))

		for _, f := range sec.Fields {
			name := strings.TrimSpace(f.Name)

			// First match wins, like Document.Fetch.
			if _, dup := values[name]; dup {
				continue
			}

			values[name] = strings.TrimSpace(f.Value)
		}

		return values, nil
	}
}

// config implements [kong.Resolver] for FDL configs.
type config map[string]string

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// Nothing to validate: the config was already parsed successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Kong flags use hyphens, but FDL field names may use underscores.
	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: let Kong use its defaults.
	return nil, nil
}
