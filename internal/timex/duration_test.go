package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string minutes", in: `"60m"`, want: time.Hour},
		{name: "string compound", in: `"1h30s"`, want: time.Hour + 30*time.Second},
		{name: "integer nanoseconds", in: `1000000000`, want: time.Second},
		{name: "zero", in: `0`, want: 0},
		{name: "bad string", in: `"soon"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
		{name: "not json", in: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_InsideStruct(t *testing.T) {
	var v struct {
		TTL Duration `json:"ttl"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ttl":"15m"}`), &v))
	assert.Equal(t, 15*time.Minute, v.TTL.Duration)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ttl":"15m0s"}`, string(out))
}
