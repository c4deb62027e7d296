package preset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/textfx"
	"github.com/gogpu/textfx/text"
)

func sampleStack() *textfx.Stack {
	s := textfx.NewDefaultStack("#102030")
	for _, t := range []textfx.LayerType{
		textfx.TypeDropShadow,
		textfx.TypeStroke,
		textfx.TypeOuterGlow,
		textfx.TypeExtrusion,
		textfx.TypeGradientFill,
	} {
		s.Add(t)
	}
	return s
}

func TestCodecsRoundTrip(t *testing.T) {
	s := sampleStack()
	session := &Session{Text: "Hi", FontSize: 120, Alignment: "left", ShowBg: true, BgColor: "#FFFFFF"}

	for _, c := range Codecs() {
		t.Run(c.Name, func(t *testing.T) {
			data, err := Export(s.Layers(), session).Encode(c)
			require.NoError(t, err)

			cfg, err := Import(data, c, "")
			require.NoError(t, err)
			assert.Equal(t, s.Layers(), cfg.Stack.Layers())
			assert.Equal(t, session, cfg.Session)
		})
	}
}

func TestExportMigratesGradients(t *testing.T) {
	layers := []textfx.Layer{
		{ID: "a", Name: "Old", Enabled: true, Params: textfx.GradientFillParams{
			AngleDeg: 90,
			Legacy:   &textfx.LegacyGradient{TopColor: "#111111"},
		}},
		{ID: "b", Name: "Empty", Enabled: true, Params: textfx.GradientFillParams{
			Stops: []textfx.GradientStop{},
		}},
	}
	doc := Export(layers, nil)

	assert.Equal(t, Version, doc.Version)
	require.Len(t, doc.Layers, 2)
	assert.Equal(t, []map[string]any{{"offsetPct": 0.0, "color": "#111111"}}, doc.Layers[0].Params["stops"])
	assert.Equal(t, []map[string]any{{"offsetPct": 50.0, "color": "#000000"}}, doc.Layers[1].Params["stops"])

	data, err := doc.Encode(JSON)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "topColor")
	assert.NotContains(t, out, "locked")
	assert.NotContains(t, out, "session")
	assert.Contains(t, out, `"version": 1`)
}

func TestExportReplacesNonFiniteNumbers(t *testing.T) {
	layers := []textfx.Layer{
		textfx.NewLayer("f", textfx.TypeFill),
		{ID: "s", Enabled: true, Params: textfx.StrokeParams{Color: "#000000", OpacityPct: math.NaN(), WidthPx: math.Inf(1)}},
	}
	data, err := Export(layers, nil).Encode(JSON)
	require.NoError(t, err)

	cfg, err := Import(data, JSON, "")
	require.NoError(t, err)
	st, _ := cfg.Stack.Get("s")
	assert.Equal(t, textfx.StrokeParams{Color: "#000000"}, st.Params)
}

func TestSessionRequest(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		check   func(t *testing.T, req textfx.Request)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, req textfx.Request) {
				assert.Equal(t, 143.0, req.FontSize)
				assert.Equal(t, 24.0, req.Padding)
				assert.Equal(t, 1.0, req.Scale)
				assert.Equal(t, text.AlignCenter, req.Align)
				assert.False(t, req.ShowBackground)
				assert.Equal(t, textfx.DefaultBackground, req.Background)
			},
		},
		{
			name:    "clamped high",
			session: &Session{FontSize: 9000, Padding: ptr(1000.0), Scale: 20, ArcPct: 250},
			check: func(t *testing.T, req textfx.Request) {
				assert.Equal(t, 500.0, req.FontSize)
				assert.Equal(t, 300.0, req.Padding)
				assert.Equal(t, 8.0, req.Scale)
				assert.Equal(t, 100.0, req.ArcPct)
			},
		},
		{
			name:    "clamped low",
			session: &Session{FontSize: 2, Padding: ptr(-3.0), Scale: 0.5},
			check: func(t *testing.T, req textfx.Request) {
				assert.Equal(t, 8.0, req.FontSize)
				assert.Equal(t, 0.0, req.Padding)
				assert.Equal(t, 1.0, req.Scale)
			},
		},
		{
			name:    "background and alignment",
			session: &Session{Text: "A\nB", Alignment: "left", ShowBg: true, BgColor: "#abcdef"},
			check: func(t *testing.T, req textfx.Request) {
				assert.Equal(t, "A\nB", req.Text)
				assert.Equal(t, text.AlignLeft, req.Align)
				assert.True(t, req.ShowBackground)
				assert.Equal(t, "#ABCDEF", req.Background)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.session.Request())
		})
	}
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.json", "json"},
		{"dir/a.TOML", "toml"},
		{"a.yaml", "yaml"},
		{"a.yml", "yaml"},
	}
	for _, tt := range tests {
		c, err := CodecFor(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, c.Name, tt.path)
	}

	_, err := CodecFor("a.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	c, err := CodecByName("YAML")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Name)
	_, err = CodecByName("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	s := sampleStack()

	for _, name := range []string{"p.json", "p.toml", "p.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, Export(s.Layers(), nil)))

		cfg, err := Open(path, "")
		require.NoError(t, err, name)
		assert.Equal(t, s.Layers(), cfg.Stack.Layers(), name)
	}

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, writeFile(bad, "{"))
	_, err := Open(bad, "")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, bad, de.Path)
	assert.True(t, strings.Contains(err.Error(), bad))

	_, err = Open(filepath.Join(dir, "p.txt"), "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRead(t *testing.T) {
	cfg, err := Read(strings.NewReader("version: 1\nlayers:\n  - id: a\n    type: fill\n    enabled: true\n    params:\n      color: '#FF0000'\n"), YAML, "")
	require.NoError(t, err)
	assert.Equal(t, []textfx.Layer{{ID: "a", Name: "Fill", Enabled: true, Params: textfx.FillParams{Color: "#FF0000"}}}, cfg.Stack.Layers())
}

func writeFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0o644)
}
