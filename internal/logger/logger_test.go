package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

func TestFieldsAndFormatting(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"section": "permasalahan"}).Info("revealed after %d frames", 12)

	entry := decode(t, buf.Bytes())
	assert.Equal(t, "revealed after 12 frames", entry["message"])
	assert.Equal(t, "permasalahan", entry["section"])
	assert.Equal(t, "info", entry["level"])
}

func TestMessageWithoutArgsIsLiteral(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Warn("100% cotton")
	assert.Equal(t, "100% cotton", decode(t, buf.Bytes())["message"])
}

func TestLevelFilters(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: " WARN ", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Empty(t, strings.TrimSpace(buf.String()))

	log.Warn("shown")
	assert.Equal(t, "warn", decode(t, buf.Bytes())["level"])
}

func TestErrorCarriesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"src": "hero.jpg"}).Error(errors.New("boom"), "image %s failed", "hero")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	entry := decode(t, []byte(lines[0]))
	assert.Equal(t, "image hero failed", entry["message"])
	assert.Equal(t, "hero.jpg", entry["src"])
	assert.Equal(t, "boom", entry["error"])
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("page closed")
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "page closed")
	assert.NotContains(t, out, "{")
}

func TestUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"loud"`)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	assert.NotPanics(t, func() {
		nilLogger.Info("ignored %d", 1)
		nilLogger.Warn("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		assert.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	})
	assert.NotPanics(t, func() {
		Nop().Warn("discarded")
	})
}

func TestOpenFileAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reveal.log")
	for _, msg := range []string{"first", "second"} {
		log, closer, err := OpenFile(path, "debug")
		require.NoError(t, err)
		log.Warn(msg)
		require.NoError(t, closer.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "second", decode(t, []byte(lines[1]))["message"])
}

func TestOpenFileWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	log, closer, err := OpenFile("  ", "info")
	require.NoError(t, err)
	require.NotNil(t, log)
	require.NoError(t, closer.Close())
}

func TestOpenFileBadLevelClosesFile(t *testing.T) {
	t.Parallel()

	_, _, err := OpenFile(filepath.Join(t.TempDir(), "reveal.log"), "loud")
	require.Error(t, err)
}
