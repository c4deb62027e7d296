package textfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		typ  LayerType
		want DrawPhase
	}{
		{TypeDropShadow, PhaseEffect},
		{TypeOuterGlow, PhaseEffect},
		{TypeExtrusion, PhaseEffect},
		{TypeFill, PhaseBaseFill},
		{TypeGradientFill, PhaseBaseFill},
		{"bevel", PhaseOther},
		{TypeStroke, PhaseStroke},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := PhaseOf(tt.typ); got != tt.want {
				t.Errorf("PhaseOf(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestBuildRenderStack(t *testing.T) {
	disabled := func(l Layer) Layer { l.Enabled = false; return l }
	unknown := Layer{ID: "u", Enabled: true, Params: UnknownParams{TypeName: "bevel"}}

	tests := []struct {
		name   string
		layers []Layer
		want   []string
	}{
		{
			name:   "empty",
			layers: nil,
			want:   []string{},
		},
		{
			name: "phase order",
			layers: []Layer{
				NewLayer("s1", TypeStroke),
				NewLayer("f", TypeFill),
				unknown,
				NewLayer("sh", TypeDropShadow),
				NewLayer("s2", TypeStroke),
				NewLayer("x", TypeExtrusion),
			},
			want: []string{"sh", "x", "f", "u", "s1", "s2"},
		},
		{
			name: "gradient wins over later fills",
			layers: []Layer{
				NewLayer("f1", TypeFill),
				NewLayer("g", TypeGradientFill),
				NewLayer("f2", TypeFill),
			},
			want: []string{"g"},
		},
		{
			name: "last enabled gradient wins",
			layers: []Layer{
				NewLayer("g1", TypeGradientFill),
				NewLayer("g2", TypeGradientFill),
				disabled(NewLayer("g3", TypeGradientFill)),
			},
			want: []string{"g2"},
		},
		{
			name: "last enabled fill without gradient",
			layers: []Layer{
				NewLayer("f1", TypeFill),
				NewLayer("f2", TypeFill),
				disabled(NewLayer("g", TypeGradientFill)),
			},
			want: []string{"f2"},
		},
		{
			name: "disabled layers are not drawn",
			layers: []Layer{
				disabled(NewLayer("f", TypeFill)),
				disabled(NewLayer("glow", TypeOuterGlow)),
				NewLayer("st", TypeStroke),
			},
			want: []string{"st"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := BuildRenderStack(tt.layers)
			if diff := cmp.Diff(tt.want, layerIDs(rs.Draw)); diff != "" {
				t.Errorf("draw order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRenderStackSingleBaseFill(t *testing.T) {
	layers := []Layer{
		fillLayer("a", "#FF0000"),
		NewLayer("g", TypeGradientFill),
		fillLayer("b", "#00FF00"),
	}
	rs := BuildRenderStack(layers)

	if len(rs.Enabled) != 3 {
		t.Errorf("Enabled = %d layers, want 3", len(rs.Enabled))
	}
	var fills []string
	for _, l := range rs.Draw {
		if PhaseOf(l.Type()) == PhaseBaseFill {
			fills = append(fills, l.ID)
		}
	}
	if diff := cmp.Diff([]string{"g"}, fills); diff != "" {
		t.Errorf("base fills mismatch (-want +got):\n%s", diff)
	}
}
