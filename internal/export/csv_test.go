package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
)

func testContribution(guest, giftName, amount string, shares int) *contribution.Contribution {
	return &contribution.Contribution{
		ID:        uuid.New(),
		GuestName: guest,
		Gift:      gift.Gift{Name: giftName},
		Shares:    shares,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: time.Date(2025, 11, 8, 14, 30, 0, 0, time.UTC),
	}
}

func TestContributionsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Contributions(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"ID", "Guest", "Gift", "Shares", "Amount", "Date"}, records[0])
}

func TestContributionsCommaDecimalSeparator(t *testing.T) {
	var buf bytes.Buffer
	entries := []*contribution.Contribution{
		testContribution("Maria", "Jogo de panelas", "125.50", 5),
	}
	require.NoError(t, Contributions(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Maria", row[1])
	assert.Equal(t, "Jogo de panelas", row[2])
	assert.Equal(t, "5", row[3])
	assert.Equal(t, "125,50", row[4])
	assert.Equal(t, "2025-11-08 14:30:00", row[5])
}

func TestContributionsAnonymousFallback(t *testing.T) {
	var buf bytes.Buffer
	entries := []*contribution.Contribution{
		testContribution("", "Cafeteira", "20.00", 1),
	}
	require.NoError(t, Contributions(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, contribution.AnonymousGuest, records[1][1])
}

func TestContributionsPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	entries := []*contribution.Contribution{
		testContribution("Primeiro", "A", "10.00", 1),
		testContribution("Segundo", "B", "20.00", 2),
	}
	require.NoError(t, Contributions(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Primeiro", records[1][1])
	assert.Equal(t, "Segundo", records[2][1])
}
