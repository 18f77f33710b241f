package sink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrgchamp/sensormon/internal/record"
)

func TestTextFormatterIncludesSerial(t *testing.T) {
	f := TextFormatter{}
	line := f.Format(record.Record{Serial: "111", Type: record.TypeTemperature, Temperature: 24.5})
	assert.Contains(t, line, "serial=111")
}

func TestJSONFormatterIsValidJSONLine(t *testing.T) {
	f := JSONFormatter{}
	line := f.Format(record.Record{Serial: "111"})
	assert.True(t, json.Valid([]byte(line)))
	assert.NotContains(t, line, "\n")
	assert.Contains(t, line, `"Serial":"111"`)
}

func TestConsoleTransportWritesLine(t *testing.T) {
	var buf bytes.Buffer
	tr := NewConsoleTransport(&buf)
	require.NoError(t, tr.Write("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestFileTransportTruncatesAndWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))
	tr, err := NewFileTransport(path, nil)
	require.NoError(t, err)
	defer tr.Close()
	require.NoError(t, tr.Write("line1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Sensor Monitoring Log - "))
	assert.NotContains(t, string(data), "stale content")
	assert.Contains(t, string(data), "line1")
}

func TestSetDisplayContinuesAfterOneSinkFails(t *testing.T) {
	var buf bytes.Buffer
	good := New(TextFormatter{}, NewConsoleTransport(&buf))
	bad := New(TextFormatter{}, failingTransport{})
	set := NewSet(nil, bad, good)
	set.Display(record.Record{Serial: "111"})
	assert.Contains(t, buf.String(), "serial=111")
}

type failingTransport struct{}

func (failingTransport) Write(string) error { return assert.AnError }
func (failingTransport) Close() error       { return nil }
