package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/nodetree/internal/config"
)

func TestNew_Text(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", FormatText)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown k=1")
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", "JSON")
	require.NoError(t, err)
	logger.Debug("hello", "run", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "abc", record["run"])
	require.Equal(t, "DEBUG", record["level"])
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	_, err := New(&bytes.Buffer{}, "loud", FormatText)
	require.Error(t, err)
	_, err = New(&bytes.Buffer{}, "info", "xml")
	require.EqualError(t, err, `logging: unknown format "xml"`)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, err := FromConfig(&buf, config.NewConfig().Log)
	require.NoError(t, err)
	logger.Debug("quiet")
	logger.Info("loud")
	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "loud")
}
