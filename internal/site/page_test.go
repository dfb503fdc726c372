package site

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudplaza/internal/deck"
)

func render(t *testing.T, d *deck.Deck) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	return buf.String()
}

func TestRender_SectionsInOrder(t *testing.T) {
	out := render(t, deck.Default())
	require.True(t, strings.HasPrefix(out, "<!doctype html>"))

	prev := -1
	for _, id := range deck.Sections() {
		tag := `<section id="` + string(id) + `"`
		assert.Equal(t, 1, strings.Count(out, tag), "section %s", id)
		i := strings.Index(out, tag)
		assert.Greater(t, i, prev, "section %s out of order", id)
		prev = i
	}
}

func TestRender_NavLinks(t *testing.T) {
	out := render(t, deck.Default())
	nav := out[strings.Index(out, `<nav id="nav">`):strings.Index(out, "</nav>")]
	for _, id := range deck.Sections() {
		assert.Contains(t, nav, `href="#`+string(id)+`"`)
		assert.Contains(t, nav, `data-nav="`+string(id)+`"`)
	}
	assert.Contains(t, nav, deck.Default().Brand)
	assert.NotContains(t, nav, `class="nav-item active"`, "no item is active before a click")
}

var chartAttr = regexp.MustCompile(`data-kind="([a-z-]+)" data-chart="([^"]*)"`)

func chartRows(t *testing.T, out, kind string) string {
	t.Helper()
	for _, m := range chartAttr.FindAllStringSubmatch(out, -1) {
		if m[1] == kind {
			return html.UnescapeString(m[2])
		}
	}
	t.Fatalf("no %s chart in output", kind)
	return ""
}

func TestRender_ChartDataVerbatim(t *testing.T) {
	d := deck.Default()
	out := render(t, d)

	var revenue []deck.FinancialMetric
	require.NoError(t, json.Unmarshal([]byte(chartRows(t, out, "bar")), &revenue))
	assert.Equal(t, d.Finance.Revenue, revenue)

	var trend []deck.TrendPoint
	require.NoError(t, json.Unmarshal([]byte(chartRows(t, out, "line")), &trend))
	assert.Equal(t, d.Market.Trend, trend)

	var audience []deck.Share
	require.NoError(t, json.Unmarshal([]byte(chartRows(t, out, "audience")), &audience))
	assert.Equal(t, d.Market.Audience, audience)

	var mix []deck.Share
	require.NoError(t, json.Unmarshal([]byte(chartRows(t, out, "revenue-mix")), &mix))
	assert.Equal(t, d.Finance.RevenueMix, mix)
}

func TestRender_ScrollScript(t *testing.T) {
	out := render(t, deck.Default())
	assert.Contains(t, out, "window.scrollY > 50")
	assert.Contains(t, out, `classList.toggle("scrolled"`)
	assert.NotContains(t, out, "IntersectionObserver", "active section follows clicks only")
}

func TestRender_ContentEscaped(t *testing.T) {
	d := deck.Default()
	d.Team.Founders[0].Name = "<b>x</b>"
	out := render(t, d)
	assert.NotContains(t, out, "<b>x</b>")
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
}

func TestExport_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, Export(context.Background(), path, deck.Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, render(t, deck.Default()), string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file left behind")
}

func TestExport_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Export(ctx, path, deck.Default())
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "index.html")
	err := Export(context.Background(), path, deck.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write temp file")
}
