package textfx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeStops(t *testing.T) {
	tests := []struct {
		name string
		in   GradientFillParams
		want []GradientStop
	}{
		{
			name: "sorted by offset",
			in: GradientFillParams{Stops: []GradientStop{
				{OffsetPct: 80, Color: "#00ff00"},
				{OffsetPct: 10, Color: "#FF0000"},
			}},
			want: []GradientStop{
				{OffsetPct: 10, Color: "#FF0000"},
				{OffsetPct: 80, Color: "#00FF00"},
			},
		},
		{
			name: "ties keep input order",
			in: GradientFillParams{Stops: []GradientStop{
				{OffsetPct: 50, Color: "#FFFFFF"},
				{OffsetPct: 50, Color: "#000000"},
				{OffsetPct: 50, Color: "#888888"},
			}},
			want: []GradientStop{
				{OffsetPct: 50, Color: "#FFFFFF"},
				{OffsetPct: 50, Color: "#000000"},
				{OffsetPct: 50, Color: "#888888"},
			},
		},
		{
			name: "offsets clamped",
			in: GradientFillParams{Stops: []GradientStop{
				{OffsetPct: 140, Color: "#111111"},
				{OffsetPct: -20, Color: "#222222"},
				{OffsetPct: math.NaN(), Color: "#333333"},
			}},
			want: []GradientStop{
				{OffsetPct: 0, Color: "#222222"},
				{OffsetPct: 0, Color: "#333333"},
				{OffsetPct: 100, Color: "#111111"},
			},
		},
		{
			name: "invalid colors dropped",
			in: GradientFillParams{Stops: []GradientStop{
				{OffsetPct: 0, Color: "red"},
				{OffsetPct: 30, Color: "#ABC"},
				{OffsetPct: 60, Color: "#A1B2C3"},
			}},
			want: []GradientStop{{OffsetPct: 60, Color: "#A1B2C3"}},
		},
		{
			name: "no stops uses fallback",
			in:   GradientFillParams{},
			want: DefaultStops(),
		},
		{
			name: "only invalid stops uses fallback",
			in:   GradientFillParams{Stops: []GradientStop{{Color: ""}}},
			want: DefaultStops(),
		},
		{
			name: "legacy fields",
			in: GradientFillParams{Legacy: &LegacyGradient{
				TopColor:    "#010203",
				MidpointPct: ptr(40.0),
			}},
			want: []GradientStop{
				{OffsetPct: 0, Color: "#010203"},
				{OffsetPct: 40, Color: legacyMidColor},
				{OffsetPct: 100, Color: legacyBottomColor},
			},
		},
		{
			name: "empty legacy block is absent",
			in:   GradientFillParams{Legacy: &LegacyGradient{}},
			want: DefaultStops(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStops(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeStops() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeStopsIdempotent(t *testing.T) {
	inputs := []GradientFillParams{
		{},
		{Stops: []GradientStop{{OffsetPct: 70, Color: "aabbcc"}, {OffsetPct: 5, Color: "#123456"}, {OffsetPct: 5, Color: "#654321"}}},
		{Legacy: &LegacyGradient{MidColor: "#00FF00", MidpointPct: ptr(120.0)}},
		{Stops: []GradientStop{{OffsetPct: math.Inf(1), Color: "#FFFFFF"}}},
	}
	for i, in := range inputs {
		once := NormalizeStops(in)
		twice := NormalizeStops(GradientFillParams{Stops: once})
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("input %d: second pass changed stops (-once +twice):\n%s", i, diff)
		}
	}
}

func TestColorRamp(t *testing.T) {
	ramp := ColorRamp([]GradientStop{{OffsetPct: 0, Color: "#FF0000"}, {OffsetPct: 55, Color: "#0000FF"}})
	if len(ramp) != 2 {
		t.Fatalf("len = %d, want 2", len(ramp))
	}
	if ramp[1].Offset != 0.55 {
		t.Errorf("offset = %v, want 0.55", ramp[1].Offset)
	}
	if r, _, b, _ := ramp[1].Color.RGBA(); r != 0 || b != 0xffff {
		t.Errorf("color = %v, want blue", ramp[1].Color)
	}
}

func TestGradientAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{-45, -math.Pi / 4},
		{math.NaN(), math.Pi / 2},
		{math.Inf(1), math.Pi / 2},
	}
	for _, tt := range tests {
		if got := (GradientFillParams{AngleDeg: tt.deg}).angleRad(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("angleRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}
