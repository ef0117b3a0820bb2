package catalog

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Len(t, c.Sessions, 4)
	s, ok := c.Session("karma-dna-deep-dive")
	require.True(t, ok)
	assert.Equal(t, 60, s.Duration)
	assert.Equal(t, 2999, s.Price)

	_, ok = c.Session("tarot")
	assert.False(t, ok)

	pro, ok := c.Plan("pro")
	require.True(t, ok)
	assert.Equal(t, 100, pro.Price)
	assert.Equal(t, "https://zeno.fm/player/astrokalki-live", c.Radio.PlayerURL)
}

func TestUPILink(t *testing.T) {
	p := Default().Payment

	link := p.UPILink(100)
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "upi", u.Scheme)
	assert.Equal(t, "9211271977@hdfcbank", u.Query().Get("pa"))
	assert.Equal(t, "AstroKalki", u.Query().Get("pn"))
	assert.Equal(t, "INR", u.Query().Get("cu"))
	assert.Equal(t, "100", u.Query().Get("am"))

	u, err = url.Parse(p.UPILink(0))
	require.NoError(t, err)
	assert.False(t, u.Query().Has("am"))
}

func TestParseRejectsDuplicateSessions(t *testing.T) {
	_, err := Parse([]byte(`
sessions:
  - {slug: a, title: A, duration: 30, price: 1}
  - {slug: a, title: B, duration: 30, price: 1}
`))
	assert.ErrorContains(t, err, "duplicate")
}

func TestParseRejectsBadDuration(t *testing.T) {
	_, err := Parse([]byte(`
sessions:
  - {slug: a, title: A, duration: 0, price: 1}
`))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sessions:
  - {slug: quick, title: Quick, duration: 15, price: 499}
radio: {name: Test FM, player_url: "https://radio.test/live"}
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	s, ok := c.Session("quick")
	require.True(t, ok)
	assert.Equal(t, 499, s.Price)
	assert.Equal(t, "Test FM", c.Radio.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
