package qr

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNGBase64ProducesPNG(t *testing.T) {
	out, err := PNGBase64("00020126330014BR.GOV.BCB.PIX6304ABCD", DefaultSize)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)

	// PNG signature
	require.GreaterOrEqual(t, len(raw), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, raw[:8])
}

func TestPNGBase64DefaultsSize(t *testing.T) {
	out, err := PNGBase64("payload", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
