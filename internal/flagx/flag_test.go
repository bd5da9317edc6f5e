package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "postgres://x", "-a", ":3000"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "postgres://x"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", ":3000"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "dash token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "equals value starting with dash",
			args:         []string{"-s=--secret"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s=--secret"},
		},
		{
			name:         "order and repeats preserved",
			args:         []string{"-a", ":1", "-k", "4", "-a", ":2"},
			allowedFlags: []string{"-a", "-k"},
			want:         []string{"-a", ":1", "-k", "4", "-a", ":2"},
		},
		{
			name:         "empty",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-config", "/path/long.json", "-a", ":3000"}
	assert.Equal(t, "/path/long.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-c", "/path/1.json", "-config=/path/2.json"}
	assert.Equal(t, "/path/2.json", JsonConfigFlags())

	os.Args = []string{"testbin", "-x", "1"}
	assert.Empty(t, JsonConfigFlags())
}

func TestEnvFileFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-e", "prod.env", "-c", "cfg.json"}
	assert.Equal(t, "prod.env", EnvFileFlags())

	os.Args = []string{"testbin", "-env-file=local.env"}
	assert.Equal(t, "local.env", EnvFileFlags())

	os.Args = []string{"testbin"}
	assert.Empty(t, EnvFileFlags())
}
