package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Backends(t *testing.T) {
	for _, backend := range []string{"", "slog", "zap", "ZAP"} {
		t.Run(backend, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(backend, &buf)
			require.NoError(t, err)

			log.Info(context.Background(), "listening", "addr", ":3000")
			if z, ok := log.(*ZapLogger); ok {
				require.NoError(t, z.Sync())
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
			assert.Equal(t, ":3000", line["addr"])
		})
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New("logrus", &bytes.Buffer{})
	assert.Error(t, err)
}
