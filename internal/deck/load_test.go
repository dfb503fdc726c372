package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_RevenueRows(t *testing.T) {
	rev := Default().Finance.Revenue
	require.Len(t, rev, 3)
	assert.Equal(t, FinancialMetric{Year: "2025", Conservative: 100, Base: 116, Optimistic: 140}, rev[0])
	assert.Equal(t, FinancialMetric{Year: "2027", Conservative: 120, Base: 145, Optimistic: 180}, rev[2])
}

func TestDefault_IndependentCopies(t *testing.T) {
	a := Default()
	a.Team.Founders[0].Name = "changed"
	assert.Equal(t, "马果雯", Default().Team.Founders[0].Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Deck)
	}{
		{"scenario order", func(d *Deck) { d.Finance.Revenue[1].Base = 200 }},
		{"negative", func(d *Deck) { d.Finance.Revenue[0].Conservative = -1 }},
		{"year order", func(d *Deck) { d.Finance.Revenue[2].Year = "2024" }},
		{"trend order", func(d *Deck) { d.Market.Trend[0].Year = "2030" }},
		{"founder name", func(d *Deck) { d.Team.Founders[1].Name = "" }},
		{"negative share", func(d *Deck) { d.Finance.RevenueMix[0].Percent = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mutate(d)
			err := d.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestParse_OverridesKeepDefaults(t *testing.T) {
	d, err := Parse([]byte(`
brand: Rooftop
finance:
  revenue:
    - {year: "2030", conservative: 1, base: 2, optimistic: 3}
`))
	require.NoError(t, err)
	assert.Equal(t, "Rooftop", d.Brand)
	assert.Equal(t, []FinancialMetric{{Year: "2030", Conservative: 1, Base: 2, Optimistic: 3}}, d.Finance.Revenue)
	// untouched sections keep shipped content
	assert.Equal(t, Default().Team, d.Team)
	assert.Equal(t, Default().Finance.Highlights, d.Finance.Highlights)
}

func TestParse_RejectsInvalid(t *testing.T) {
	_, err := Parse([]byte(`
finance:
  revenue:
    - {year: "2030", conservative: 5, base: 2, optimistic: 3}
`))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte("brand: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("team:\n  intro: hello\n"), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", d.Team.Intro)
	assert.Len(t, d.Team.Founders, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
