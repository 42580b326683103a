package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevels(t *testing.T) {
	t.Cleanup(func() { Init("warn", "text") })

	Init("DEBUG", "text")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Init("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Init("warn", "text") })

	Init("info", "json")
	SetOutput(&buf)
	Log.WithField("file", "GBC 2024-01-05 Friday.docx").Info("wrote sign")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wrote sign", entry["msg"])
	assert.Equal(t, "GBC 2024-01-05 Friday.docx", entry["file"])
}
