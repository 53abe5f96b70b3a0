package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParseMethodUnknown(t *testing.T) {
	for _, name := range []string{"", "sobel", "GRADIENT", "colour"} {
		_, err := ParseMethod(name)
		assert.ErrorIs(t, err, ErrUnknownMethod, "name %q", name)
	}
}
