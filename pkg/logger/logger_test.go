package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchys-amb/ambutrack-api/pkg/logger"
)

func TestNew_NivelesConocidosYDefault(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verboso", zerolog.InfoLevel}, // desconocido cae a info
	}
	for _, c := range cases {
		l := logger.New(logger.Config{Env: "production", Level: c.level})
		assert.Equal(t, c.want, l.Zerolog().GetLevel(), "nivel %q", c.level)
	}
}

func TestNew_EstampaElServicio(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "ambutrack-api"})
	zl := l.Zerolog().Output(&buf)

	zl.Info().Msg("arrancando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ambutrack-api", line["service"])
	assert.NotEmpty(t, line["time"])
}

func TestSub_AgregaElComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "ambutrack-api"})
	zl := l.Sub("auditoria").Zerolog().Output(&buf)

	zl.Warn().Msg("no se pudo registrar actividad")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "auditoria", line["component"])
	assert.Equal(t, "ambutrack-api", line["service"], "el sublogger hereda el servicio")
}
