// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information, and
// output formats that are applied at logger creation time using functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//	logger.Info("loaded", slog.String("path", path))
//
// Five levels are supported, [LevelTrace] through [LevelError]; trace sits
// below [slog.LevelDebug] and is used by the fdl package for per-stage
// parse diagnostics.
//
// Each level has a context-aware and a context-unaware variant. The
// context-unaware variants call their counterparts with the context
// returned by [DefaultContextProvider], which is [context.TODO] by default.
//
// The zero Logger discards all messages, so library code can carry a
// Logger field unconditionally and log only when a caller installed one.
// Package-level functions (Config, Debug, Error, ...) operate on a default
// logger writing to standard output.
package log
