package textfx

import (
	"slices"
	"strconv"
)

// Stack is an editable layer stack with a selection.
//
// Layer ids come from a per-stack sequence and are never reused, even after
// the layer is removed. Layers returned by Stack are copies; edits go
// through the Stack methods.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	layers   []Layer
	selected string
	seq      int
	used     map[string]struct{}
}

// NewStack creates a stack holding copies of layers and selects the layer
// with id selected, or the first layer when selected is unknown.
func NewStack(layers []Layer, selected string) *Stack {
	s := &Stack{
		layers: cloneLayers(layers),
		used:   make(map[string]struct{}, len(layers)),
	}
	for _, l := range s.layers {
		s.used[l.ID] = struct{}{}
	}
	if s.index(selected) >= 0 {
		s.selected = selected
	} else if len(s.layers) > 0 {
		s.selected = s.layers[0].ID
	}
	return s
}

// NewDefaultStack creates a stack with a single selected solid fill of
// fillColor, or black when fillColor is not a valid hex color.
func NewDefaultStack(fillColor string) *Stack {
	s := NewStack(nil, "")
	fill := s.newLayer(TypeFill)
	fill.Params = FillParams{Color: NormalizeHex(fillColor, DefaultFillColor)}
	s.layers = append(s.layers, fill)
	s.selected = fill.ID
	return s
}

// NextID returns a fresh layer id that is not used in the stack.
func (s *Stack) NextID() string {
	for {
		s.seq++
		id := "layer-" + strconv.Itoa(s.seq)
		if _, ok := s.used[id]; !ok {
			s.used[id] = struct{}{}
			return id
		}
	}
}

func (s *Stack) newLayer(t LayerType) Layer {
	return NewLayer(s.NextID(), t)
}

func (s *Stack) index(id string) int {
	return slices.IndexFunc(s.layers, func(l Layer) bool { return l.ID == id })
}

// Len returns the number of layers.
func (s *Stack) Len() int { return len(s.layers) }

// Layers returns a copy of the layers in stack order.
func (s *Stack) Layers() []Layer {
	return cloneLayers(s.layers)
}

// Get returns a copy of the layer with the given id.
func (s *Stack) Get(id string) (Layer, bool) {
	i := s.index(id)
	if i < 0 {
		return Layer{}, false
	}
	return s.layers[i].Clone(), true
}

// Selected returns the id of the selected layer, or "" when the stack is
// empty.
func (s *Stack) Selected() string { return s.selected }

// Select selects the layer with the given id.
func (s *Stack) Select(id string) error {
	if s.index(id) < 0 {
		return &LayerError{ID: id, Op: "select", Err: ErrLayerNotFound}
	}
	s.selected = id
	return nil
}

// Add appends a new layer of type t with default params and selects it.
func (s *Stack) Add(t LayerType) Layer {
	l := s.newLayer(t)
	s.layers = append(s.layers, l)
	s.selected = l.ID
	return l.Clone()
}

// Remove deletes the layer with the given id. When the selected layer is
// removed the first remaining layer becomes selected. Removing the last
// base fill inserts a black solid fill at the bottom of the stack and
// selects it. Remove reports whether the layer existed.
func (s *Stack) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	if s.selected == id {
		s.selected = ""
		if len(s.layers) > 0 {
			s.selected = s.layers[0].ID
		}
	}
	s.ensureBaseFill(DefaultFillColor)
	return true
}

func (s *Stack) ensureBaseFill(fallback string) {
	if s.BaseFillIndex() >= 0 {
		return
	}
	fill := s.newLayer(TypeFill)
	fill.Params = FillParams{Color: NormalizeHex(fallback, DefaultFillColor)}
	s.layers = slices.Insert(s.layers, 0, fill)
	s.selected = fill.ID
}

// Move swaps the layer with its neighbor dir positions away (usually -1 or
// +1). It reports false when the id is unknown or the target is out of
// range.
func (s *Stack) Move(id string, dir int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	j := i + dir
	if j < 0 || j >= len(s.layers) {
		return false
	}
	s.layers[i], s.layers[j] = s.layers[j], s.layers[i]
	return true
}

// LayerPatch is a partial layer update. Nil fields are left unchanged.
type LayerPatch struct {
	Name    *string
	Enabled *bool
	Params  Params
}

// Update applies patch to the layer with the given id. Params must be of
// the layer's current type; use SwitchBaseFill to change a fill's type.
func (s *Stack) Update(id string, patch LayerPatch) error {
	i := s.index(id)
	if i < 0 {
		return &LayerError{ID: id, Op: "update", Err: ErrLayerNotFound}
	}
	l := s.layers[i]
	if patch.Params != nil && patch.Params.LayerType() != l.Type() {
		return &LayerError{ID: id, Op: "update", Err: ErrTypeMismatch}
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Enabled != nil {
		l.Enabled = *patch.Enabled
	}
	if patch.Params != nil {
		l.Params = cloneParams(patch.Params)
	}
	s.layers[i] = l
	return nil
}

// BaseFillIndex returns the index of the base fill: the first gradient
// fill, else the first solid fill, else -1. Disabled layers count.
func (s *Stack) BaseFillIndex() int {
	return baseFillIndex(s.layers)
}

func baseFillIndex(layers []Layer) int {
	if i := slices.IndexFunc(layers, func(l Layer) bool { return l.Type() == TypeGradientFill }); i >= 0 {
		return i
	}
	return slices.IndexFunc(layers, func(l Layer) bool { return l.Type() == TypeFill })
}

// SwitchBaseFill replaces the base fill with a layer of type t, keeping its
// id and position. The replacement is enabled, named after t and selected.
//
// Switching a solid fill to a gradient gives the default stops with the
// stop nearest 50% recolored to the fill color. Switching a gradient to a
// solid fill uses the color of the stop nearest 50%. fallback is used when
// the old layer has no usable color.
//
// SwitchBaseFill reports false when t is not a fill type or there is no
// base fill. Switching to the current type is a successful no-op.
func (s *Stack) SwitchBaseFill(t LayerType, fallback string) bool {
	if t != TypeFill && t != TypeGradientFill {
		return false
	}
	i := s.BaseFillIndex()
	if i < 0 {
		return false
	}
	cur := s.layers[i]
	if cur.Type() == t {
		return true
	}
	fallback = NormalizeHex(fallback, DefaultFillColor)

	next := NewLayer(cur.ID, t)
	switch p := cur.Params.(type) {
	case GradientFillParams:
		next.Params = FillParams{Color: GradientMidColor(p, fallback)}
	case FillParams:
		c := fallback
		if p.Color != "" {
			c = p.Color
		}
		next.Params = SetGradientMidColor(next.Params.(GradientFillParams), c)
	}
	s.layers[i] = next
	s.selected = next.ID
	return true
}

// GradientMidColor returns the color of the stop nearest 50%, or fallback
// when p has no stops.
func GradientMidColor(p GradientFillParams, fallback string) string {
	i := nearestMidIndex(p.Stops)
	if i < 0 || p.Stops[i].Color == "" {
		return fallback
	}
	return p.Stops[i].Color
}

// SetGradientMidColor returns p with the stop nearest 50% recolored to
// color. A gradient without stops gets a single 50% stop.
func SetGradientMidColor(p GradientFillParams, color string) GradientFillParams {
	if len(p.Stops) == 0 {
		p.Stops = []GradientStop{{OffsetPct: 50, Color: color}}
		return p
	}
	p.Stops = slices.Clone(p.Stops)
	p.Stops[nearestMidIndex(p.Stops)].Color = color
	return p
}
