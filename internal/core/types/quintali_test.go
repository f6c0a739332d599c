package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuintali_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewQuintaliFromFloat64(150.5))
	require.NoError(t, err)
	assert.Equal(t, "150.50", string(b))

	b, err = json.Marshal(NewQuintaliFromInt(-3))
	require.NoError(t, err)
	assert.Equal(t, "-3.00", string(b))
}

func TestQuintali_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Quintali
	}{
		{"150.5", NewQuintaliFromFloat64(150.5)},
		{"300", NewQuintaliFromInt(300)},
		{`"12.75"`, NewQuintaliFromFloat64(12.75)},
		{"null", 0},
		// extra digits are truncated, not rounded
		{"10.999", NewQuintaliFromFloat64(10.99)},
		{"-2.5", NewQuintaliFromFloat64(-2.5)},
	}

	for _, tt := range tests {
		var q Quintali
		require.NoError(t, json.Unmarshal([]byte(tt.in), &q), "input %s", tt.in)
		assert.Equal(t, tt.want, q, "input %s", tt.in)
	}
}

func TestQuintali_UnmarshalJSON_Invalid(t *testing.T) {
	var q Quintali
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &q))
}

func TestQuintali_Decimal(t *testing.T) {
	d := NewQuintaliFromFloat64(150.5).Decimal()
	assert.Equal(t, "150.5", d.String())
}
