package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects logger output to a buffer and restores the
// previous writer, level and format on cleanup.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)

	mu.RLock()
	origOut, origColor, origFormat := output, useColor, format
	mu.RUnlock()
	origLevel := level.Level()

	InitWithWriter(buf, "", "text", false)

	t.Cleanup(func() {
		level.Set(origLevel)
		mu.Lock()
		output, useColor, format = origOut, origColor, origFormat
		mu.Unlock()
		reconfigure()
	})
	return buf
}

func decodeJSONLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	return entry
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		skip  []string
	}{
		{"DEBUG", []string{"debug message", "info message", "warn message", "error message"}, nil},
		{"INFO", []string{"info message", "warn message", "error message"}, []string{"debug message"}},
		{"WARN", []string{"warn message", "error message"}, []string{"debug message", "info message"}},
		{"ERROR", []string{"error message"}, []string{"debug message", "info message", "warn message"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := captureOutput(t)
			SetLevel(tt.level)

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			out := buf.String()
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.skip {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	captureOutput(t)

	SetLevel("debug")
	assert.Equal(t, slog.LevelDebug, level.Level())

	SetLevel("Warning")
	assert.Equal(t, slog.LevelWarn, level.Level())

	SetLevel("INVALID")
	assert.Equal(t, slog.LevelWarn, level.Level(), "unknown names leave the level unchanged")
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("error")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, l)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestTextFormat(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")

	Info("decoded", KeyType, "TransactionEnvelope", KeyBytes, 128, "note", "has spaces", KeyDurationMs, 1.5)

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "decoded")
	assert.Contains(t, out, "type=TransactionEnvelope")
	assert.Contains(t, out, "bytes=128")
	assert.Contains(t, out, `note="has spaces"`)
	assert.Contains(t, out, "duration_ms=1.500")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestTextFormat_Groups(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")

	getLogger().With("run", "r1").WithGroup("decode").Info("done", "bytes", 4)

	out := buf.String()
	assert.Contains(t, out, "run=r1")
	assert.Contains(t, out, "decode.bytes=4")
}

func TestJSONFormat(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")
	SetFormat("json")

	Info("check", KeyCanonical, true, KeyMatches, 2)

	entry := decodeJSONLine(t, buf)
	assert.Equal(t, "check", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, true, entry["canonical"])
	assert.Equal(t, float64(2), entry["matches"])
}

func TestSetFormat_IgnoresUnknown(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")
	SetFormat("xml")

	Info("still text")
	assert.Contains(t, buf.String(), "INFO")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestContextLogging(t *testing.T) {
	t.Run("InjectsFields", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")
		SetFormat("json")

		lc := NewLogContext("decode").WithType("SCVal").WithSource("stdin").WithRunID("abc123")
		ctx := WithContext(context.Background(), lc)

		InfoCtx(ctx, "decoded", "extra_field", "value")

		entry := decodeJSONLine(t, buf)
		assert.Equal(t, "abc123", entry[KeyRunID])
		assert.Equal(t, "decode", entry[KeyCommand])
		assert.Equal(t, "SCVal", entry[KeyType])
		assert.Equal(t, "stdin", entry[KeySource])
		assert.Equal(t, "value", entry["extra_field"])
	})

	t.Run("NilContext", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("INFO")

		require.NotPanics(t, func() {
			//nolint:staticcheck
			InfoCtx(nil, "test message")
		})
		assert.Contains(t, buf.String(), "test message")
	})

	t.Run("FilteredByLevel", func(t *testing.T) {
		buf := captureOutput(t)
		SetLevel("ERROR")

		ctx := WithContext(context.Background(), NewLogContext("hash"))
		DebugCtx(ctx, "hidden")
		WarnCtx(ctx, "hidden too")
		ErrorCtx(ctx, "shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "command=hash")
	})
}

func TestLogContext(t *testing.T) {
	lc := NewLogContext("check")
	assert.Equal(t, "check", lc.Command)
	assert.False(t, lc.StartTime.IsZero())
	assert.GreaterOrEqual(t, lc.DurationMs(), 0.0)

	typed := lc.WithType("LedgerEntry")
	assert.Equal(t, "LedgerEntry", typed.TypeName)
	assert.Empty(t, lc.TypeName, "original unchanged")

	var none *LogContext
	assert.Nil(t, none.Clone())
	assert.Nil(t, none.WithType("x"))
	assert.Zero(t, none.DurationMs())
	assert.Nil(t, FromContext(context.Background()))
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, "", Err(nil).Key)

	attr := Err(assert.AnError)
	assert.Equal(t, KeyError, attr.Key)
	assert.Contains(t, attr.Value.String(), "assert.AnError")

	assert.Equal(t, KeyType, Type("Asset").Key)
	assert.Equal(t, int64(7), Offset(7).Value.Int64())
	assert.True(t, Canonical(true).Value.Bool())
}

func TestConcurrentLogging(t *testing.T) {
	buf := captureOutput(t)
	SetLevel("INFO")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Info("line", "n", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
}

func TestInit(t *testing.T) {
	captureOutput(t)

	require.NoError(t, Init(Config{}))
	require.NoError(t, Init(Config{Level: "DEBUG", Format: "json", Output: "stderr"}))
	assert.Equal(t, slog.LevelDebug, level.Level())

	path := t.TempDir() + "/xdrctl.log"
	require.NoError(t, Init(Config{Level: "INFO", Format: "text", Output: path}))
	Info("to file")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	err = Init(Config{Output: t.TempDir() + "/missing/dir/x.log"})
	assert.Error(t, err)
}

func BenchmarkLogDisabled(b *testing.B) {
	InitWithWriter(new(bytes.Buffer), "ERROR", "text", false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Debug("test message", "key", "value")
	}
}

func BenchmarkLogJSON(b *testing.B) {
	InitWithWriter(new(bytes.Buffer), "DEBUG", "json", false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Info("test message", "key", "value", "count", i)
	}
}
