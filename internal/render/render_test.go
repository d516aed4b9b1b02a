package render

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestDefaultLoadsPages(t *testing.T) {
	r, err := Default()
	assert.NilError(t, err)
	for _, name := range []string{"homepage.html", "hpcapture.html", "hpcrime.html"} {
		assert.Check(t, r.Has(name), name)
	}
	assert.Check(t, r.Has("layout.html"))
	assert.Check(t, !r.Has("missing.html"))
}

func TestRenderPage(t *testing.T) {
	r, err := Default()
	assert.NilError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "hpcrime.html", map[string]string{"Name": "hpcrime", "Title": "Crime"})
	assert.NilError(t, err)
	out := buf.String()
	assert.Check(t, is.Contains(out, `id="hpcrime"`))
	assert.Check(t, is.Contains(out, "<title>Crime</title>"))
	assert.Check(t, is.Contains(out, `class="active" href="/hpcrime.html"`))
}

func TestRenderUnknown(t *testing.T) {
	r, err := Default()
	assert.NilError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "missing.html", nil)
	assert.Check(t, errors.Is(err, ErrNotFound))
	assert.Check(t, is.ErrorContains(err, "missing.html"))
	assert.Check(t, is.Equal(buf.Len(), 0))
}

func TestNewParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"t/bad.html": {Data: []byte("{{ .Broken ")},
	}
	_, err := New(fsys, "t/*.html")
	assert.Check(t, is.ErrorContains(err, "parse templates"))
}

func TestNewNoMatch(t *testing.T) {
	_, err := New(fstest.MapFS{}, "t/*.html")
	assert.Check(t, err != nil)
}

func TestRenderExecError(t *testing.T) {
	fsys := fstest.MapFS{
		"t/page.html": {Data: []byte(`{{template "nope" .}}`)},
	}
	r, err := New(fsys, "t/*.html")
	assert.NilError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "page.html", nil)
	assert.Check(t, is.ErrorContains(err, "execute page.html"))
	assert.Check(t, !errors.Is(err, ErrNotFound))
}
