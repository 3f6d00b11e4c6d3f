package gift

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewDerivesShareCount(t *testing.T) {
	g := New("Jogo de panelas", decimal.RequireFromString("100.00"), decimal.RequireFromString("25.00"), "")

	assert.Equal(t, 4, g.TotalShares)
	assert.Equal(t, 4, g.RemainingShares)
	assert.NoError(t, g.Validate())
}

func TestNewFloorsUnevenDivision(t *testing.T) {
	g := New("Aspirador", decimal.RequireFromString("100.00"), decimal.RequireFromString("30.00"), "")

	assert.Equal(t, 3, g.TotalShares)
	assert.NoError(t, g.Validate())
}

func TestValidateRejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name  string
		total string
		share string
	}{
		{"zero total", "0", "10.00"},
		{"negative total", "-50.00", "10.00"},
		{"zero share", "100.00", "0"},
		{"negative share", "100.00", "-1.00"},
		{"share above total", "10.00", "25.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := New("Presente", decimal.RequireFromString(tc.total), decimal.RequireFromString(tc.share), "")
			assert.Error(t, g.Validate())
		})
	}
}

func TestValidateRequiresName(t *testing.T) {
	g := New("", decimal.RequireFromString("100.00"), decimal.RequireFromString("25.00"), "")
	assert.Error(t, g.Validate())
}

func TestIsFullyFunded(t *testing.T) {
	g := New("Cafeteira", decimal.RequireFromString("60.00"), decimal.RequireFromString("20.00"), "")
	assert.False(t, g.IsFullyFunded())

	g.RemainingShares = 0
	assert.True(t, g.IsFullyFunded())
}
