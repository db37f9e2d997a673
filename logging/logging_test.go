package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lwwgraph/config"
	"github.com/katalvlaran/lwwgraph/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "replica_id", "a")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, logging.Service, rec["service"])
	assert.Equal(t, "a", rec["replica_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(config.Log{Level: "debug", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Debug("merge", "vertices", 3)
	assert.Contains(t, buf.String(), "msg=merge")
	assert.Contains(t, buf.String(), "vertices=3")
}

func TestNew_Invalid(t *testing.T) {
	_, err := logging.New(config.Log{Level: "loud", Format: "text"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = logging.New(config.Log{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing happens")
}
