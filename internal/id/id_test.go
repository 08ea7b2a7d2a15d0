package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRef(t *testing.T) {
	assert.Equal(t, "1", FormatRef(0))
	assert.Equal(t, "12", FormatRef(11))
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		ref  string
		want int
	}{
		{"1", 0},
		{"3", 2},
		{"#3", 2},
		{" 10 ", 9},
	}
	for _, tt := range tests {
		got, err := ParseRef(tt.ref)
		require.NoError(t, err, "ParseRef(%q)", tt.ref)
		assert.Equal(t, tt.want, got, "ParseRef(%q)", tt.ref)
	}
}

func TestParseRef_Invalid(t *testing.T) {
	for _, ref := range []string{"", "#", "0", "-2", "abc", "1.5"} {
		_, err := ParseRef(ref)
		assert.Error(t, err, "ParseRef(%q) should fail", ref)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 9, 99} {
		got, err := ParseRef(FormatRef(idx))
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
}
