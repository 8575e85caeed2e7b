package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		found bool
	}{
		{"json", true},
		{"go-json", true},
		{"msgpack", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, c)
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecsRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := payload{Name: "slots", Count: 3}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodecsAgreeOnBytes(t *testing.T) {
	// Both built-ins must emit the identical canonical form, otherwise a
	// snapshot written under one name would not be byte-stable under the other.
	v := []any{nil, [2]any{uint64(1), "x"}}

	a := MustMarshal(JSON{}, v)
	b := MustMarshal(GoJSON{}, v)
	assert.Equal(t, string(a), string(b))
}

func TestDefault(t *testing.T) {
	require.NotNil(t, Default)
	_, ok := ByName(Default.Name())
	assert.True(t, ok)
}
