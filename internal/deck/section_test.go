package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_Order(t *testing.T) {
	want := []SectionID{SectionHome, SectionSummary, SectionMarket, SectionProducts, SectionFinance, SectionTeam}
	assert.Equal(t, want, Sections())

	for i, id := range Sections() {
		assert.Equal(t, i, id.Index(), "index of %s", id)
	}
}

func TestSections_ReturnsCopy(t *testing.T) {
	s := Sections()
	s[0] = SectionTeam
	assert.Equal(t, SectionHome, Sections()[0])
}

func TestParseSection(t *testing.T) {
	for _, id := range Sections() {
		got, err := ParseSection(string(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := ParseSection("pricing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestSectionID_LabelsDistinct(t *testing.T) {
	seen := map[string]SectionID{}
	for _, id := range Sections() {
		l := id.Label()
		if prev, ok := seen[l]; ok {
			t.Fatalf("label %q shared by %s and %s", l, prev, id)
		}
		seen[l] = id
	}
	assert.Equal(t, -1, SectionID("nope").Index())
}
