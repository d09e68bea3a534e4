package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.config.level != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.config.level)
	}

	if logger.config.caller != DefaultCaller {
		t.Errorf("expected default caller %v, got %v", DefaultCaller, logger.config.caller)
	}

	if logger.config.format != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug), WithPretty(false))

	logger.Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()

	logger2 := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger2.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_BelowDebug(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "trace message") {
		t.Error("trace message not logged at Trace level")
	}

	// The level attribute reports the custom name, not DEBUG-4.
	if !strings.Contains(output, "TRACE") {
		t.Errorf("trace level name not reported: %s", output)
	}

	buf.Reset()

	logger2 := Make(&buf, WithLevel(LevelDebug), WithPretty(false))
	logger2.Trace("hidden")

	if buf.Len() > 0 {
		t.Error("trace message logged when level is Debug")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
		logger.Info("hello", slog.String("key", "value"))

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
		}

		if record["msg"] != "hello" {
			t.Errorf("msg = %v, want hello", record["msg"])
		}

		if record["key"] != "value" {
			t.Errorf("key = %v, want value", record["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("hello", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, "msg=hello") {
			t.Errorf("text output missing message: %s", output)
		}

		if !strings.Contains(output, "key=value") {
			t.Errorf("text output missing attribute: %s", output)
		}
	})
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	if !strings.Contains(buf.String(), "source") {
		t.Error("caller info not included when enabled")
	}

	buf.Reset()

	logger2 := Make(&buf, WithCaller(false), WithPretty(false))
	logger2.Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Wrap_OverridesOptions(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError), WithPretty(false))

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not apply the overridden level")
	}

	// The original logger keeps its configuration.
	if logger.Level() != LevelError {
		t.Errorf("original level = %v, want %v", logger.Level(), LevelError)
	}

	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped level = %v, want %v", wrapped.Level(), LevelDebug)
	}
}

func TestLogger_With_AttachesAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false)).With(slog.String("component", "lexer"))
	logger.Info("tokenized")

	output := buf.String()
	if !strings.Contains(output, "component") || !strings.Contains(output, "lexer") {
		t.Errorf("attached attribute missing from output: %s", output)
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic and must not emit anywhere.
	logger.Info("dropped")
	logger.ErrorContext(context.Background(), "dropped too")
}

func TestLogger_ContextVariants(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	ctx := context.Background()

	logger.TraceContext(ctx, "t")
	logger.DebugContext(ctx, "d")
	logger.InfoContext(ctx, "i")
	logger.WarnContext(ctx, "w")
	logger.ErrorContext(ctx, "e")

	output := buf.String()

	for _, msg := range []string{"t", "d", "i", "w", "e"} {
		if !strings.Contains(output, `"msg":"`+msg+`"`) {
			t.Errorf("missing %q record in output: %s", msg, output)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText))
	if logger.Format() != FormatText {
		t.Errorf("Format() = %v, want %v", logger.Format(), FormatText)
	}
}
