package deck

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeck(t *testing.T) {
	slides := Default()
	require.Len(t, slides, 5)

	assert.Equal(t, slides[0].ID, Default()[0].ID, "demo ids are stable")

	seen := map[string]bool{}
	for _, s := range slides {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true
		_, err := ParseColor(s.Color)
		assert.NoError(t, err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
slides:
  - id: intro
    title: Welcome
    body: First slide
    color: "#102030"
  - body: untitled
`)
	slides, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, slides, 2)

	assert.Equal(t, "intro", slides[0].ID)
	assert.Equal(t, "Welcome", slides[0].Title)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 255}, slides[0].RGBA(color.RGBA{}))

	assert.NotEmpty(t, slides[1].ID)
	assert.Equal(t, "Slide 2", slides[1].Title)
	fallback := color.RGBA{1, 2, 3, 255}
	assert.Equal(t, fallback, slides[1].RGBA(fallback))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("slides: []"))
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Parse([]byte("slides: [{title: a, color: nope}]"))
	assert.Error(t, err)

	_, err = Parse([]byte("slides: {"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"ff8000", color.RGBA{255, 128, 0, 255}, false},
		{"#f80", color.RGBA{255, 136, 0, 255}, false},
		{" #000000 ", color.RGBA{0, 0, 0, 255}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			assert.Errorf(t, err, "ParseColor(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	slides := Default()
	data, err := Marshal(slides)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, slides, back)
}

func TestFromScript(t *testing.T) {
	script := `
names = ["alpha", "beta", "gamma"]
slides = [
    {"title": n.upper(), "body": "generated %d" % i, "color": rgb(10 * i, 20, 30)}
    for i, n in enumerate(names)
]
`
	slides, err := FromScript("gen.star", script)
	require.NoError(t, err)
	require.Len(t, slides, 3)

	assert.Equal(t, "ALPHA", slides[0].Title)
	assert.Equal(t, "generated 2", slides[2].Body)
	assert.Equal(t, "#14141e", slides[2].Color)
	assert.NotEmpty(t, slides[1].ID)
}

func TestFromScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing slides", `x = 1`},
		{"not a list", `slides = "nope"`},
		{"not a dict", `slides = [1, 2]`},
		{"bad color", `slides = [{"title": "a", "color": "red"}]`},
		{"rgb out of range", `slides = [{"color": rgb(300, 0, 0)}]`},
		{"syntax", `slides = [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromScript("bad.star", tt.script)
			assert.Error(t, err)
		})
	}

	_, err := FromScript("empty.star", `slides = []`)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("slides: [{title: a}, {title: b}]"), 0o644))
	slides, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, slides, 2)

	starPath := filepath.Join(dir, "deck.star")
	require.NoError(t, os.WriteFile(starPath, []byte(`slides = [{"title": "x"}]`), 0o644))
	slides, err = Load(starPath)
	require.NoError(t, err)
	assert.Equal(t, "x", slides[0].Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
