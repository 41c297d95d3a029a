package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("debug", "json", &buf)
	require.NoError(t, err)

	log.Debug().Str("route", "/api/apply").Msg("handled")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "/api/apply", line["route"])
	assert.Equal(t, "handled", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", "json", &buf)
	require.NoError(t, err)

	log.Info().Msg("quiet")
	assert.Zero(t, buf.Len())

	log.Error().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("INFO", "console", &buf)
	require.NoError(t, err)

	log.Info().Str("preset", "ruby").Msg("applied")
	assert.Contains(t, buf.String(), "applied")
	assert.Contains(t, buf.String(), "preset=")
}

func TestNewEmptyLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "json", &buf)
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
