package pix

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumKnownVector(t *testing.T) {
	// Published CRC-16/CCITT-FALSE check value for the ASCII digits 1-9.
	assert.Equal(t, "29B1", Checksum([]byte("123456789")))
}

func TestChecksumDeterministic(t *testing.T) {
	data := []byte("00020126330014BR.GOV.BCB.PIX6304")
	assert.Equal(t, Checksum(data), Checksum(data))
}

func TestChecksumZeroPadded(t *testing.T) {
	out := Checksum([]byte("123456789"))
	assert.Len(t, out, 4)
	assert.Equal(t, strings.ToUpper(out), out)
}

func TestBuildGoldenPayload(t *testing.T) {
	enc := NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")

	payload, err := enc.Build(decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	assert.Equal(t,
		"00020126330014BR.GOV.BCB.PIX011143130257829520400005303986540550.005802BR5922LUCAS HENRIQUE R RAUGI6005MATAO62070503***630402CA",
		payload)
}

func TestBuildAmountFieldTracksLength(t *testing.T) {
	enc := NewEncoder("pix@example.com", "MARIA DA SILVA", "SAO PAULO")

	p1, err := enc.Build(decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.Contains(t, p1, "540512.50")

	p2, err := enc.Build(decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	assert.Contains(t, p2, "5406100.00")

	p3, err := enc.Build(decimal.RequireFromString("1234.50"))
	require.NoError(t, err)
	assert.Contains(t, p3, "54071234.50")
}

func TestBuildAlwaysTwoFractionDigits(t *testing.T) {
	enc := NewEncoder("pix@example.com", "MARIA DA SILVA", "SAO PAULO")

	p, err := enc.Build(decimal.NewFromInt(7))
	require.NoError(t, err)
	assert.Contains(t, p, "54047.00")
}

func TestBuildDeterministic(t *testing.T) {
	enc := NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")
	amount := decimal.RequireFromString("10.00")

	p1, err := enc.Build(amount)
	require.NoError(t, err)
	p2, err := enc.Build(amount)
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
}

func TestBuildRejectsNonPositiveAmount(t *testing.T) {
	enc := NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")

	_, err := enc.Build(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = enc.Build(decimal.RequireFromString("-5.00"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestBuildChecksumCoversPayloadPrefix(t *testing.T) {
	enc := NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")

	payload, err := enc.Build(decimal.RequireFromString("33.33"))
	require.NoError(t, err)
	require.Greater(t, len(payload), 4)

	body, crc := payload[:len(payload)-4], payload[len(payload)-4:]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, Checksum([]byte(body)), crc)
}

func TestBuildCountsCharactersNotBytes(t *testing.T) {
	enc := NewEncoder("pix@example.com", "JOAO DA SILVA", "SÃO PAULO")

	payload, err := enc.Build(decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	// Ã is two bytes but one character; the length field counts characters.
	assert.Contains(t, payload, "6009SÃO PAULO")
}

func TestNewEncoderTruncatesOnCharacterBoundary(t *testing.T) {
	name := strings.Repeat("A", 24) + "ÃB"
	enc := NewEncoder("key", name, "MATÃO DA SERRA DO SUL")

	payload, err := enc.Build(decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	require.True(t, utf8.ValidString(payload))
	assert.Contains(t, payload, "5925"+strings.Repeat("A", 24)+"Ã")
	assert.Contains(t, payload, "6015MATÃO DA SERRA ")
}

func TestBuildRejectsOversizedKey(t *testing.T) {
	enc := NewEncoder(strings.Repeat("k", 78), "MARIA DA SILVA", "SAO PAULO")

	_, err := enc.Build(decimal.RequireFromString("1.00"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewEncoderTruncatesIdentityFields(t *testing.T) {
	enc := NewEncoder("key", "A NAME FAR LONGER THAN TWENTY FIVE CHARACTERS", "A CITY LONGER THAN FIFTEEN")

	payload, err := enc.Build(decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	assert.Contains(t, payload, "5925A NAME FAR LONGER THAN TW")
	assert.Contains(t, payload, "6015A CITY LONGER T")
}

func TestBuildStartsWithFormatIndicator(t *testing.T) {
	enc := NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")

	payload, err := enc.Build(decimal.RequireFromString("2.00"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload, "000201"))
}
