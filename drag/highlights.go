// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"image/color"

	"github.com/vrsketch/sketch/selection"
)

// Highlight is a selection highlighted in a color.
type Highlight struct {
	Sel   *selection.Selection
	Color color.RGBA
}

// Highlights keeps the set of highlights shown by a [Renderer] in sync
// with the list wanted at each step. Each step calls [Highlights.Add]
// for every wanted highlight, in a stable order, then
// [Highlights.Finish].
type Highlights struct {

	// Renderer receives the Enter, Leave and Follow calls.
	Renderer Renderer

	active []Highlight
	wanted []Highlight
}

// Add appends sel in color c to the list wanted for this step.
func (h *Highlights) Add(sel *selection.Selection, c color.RGBA) {
	h.wanted = append(h.wanted, Highlight{Sel: sel, Color: c})
}

// Active returns the highlights currently shown.
func (h *Highlights) Active() []Highlight {
	return h.active
}

// Finish makes the wanted list active. The longest common prefix of
// the active and wanted lists is kept as is. The rest of the active list
// is left in reverse order, and only then is the rest of the wanted list
// entered, so that an element never has two highlights at once. Finally
// every active highlight follows its geometry.
//
// A kept dummy edge takes the end points of the wanted one, so that the
// renderer can key its visuals by selection pointer.
func (h *Highlights) Finish() {
	keep := 0
	for keep < len(h.active) && keep < len(h.wanted) {
		a, w := h.active[keep], h.wanted[keep]
		if a.Color != w.Color || !a.Sel.Same(w.Sel) {
			break
		}
		if a.Sel.Kind == selection.DummyEdge {
			a.Sel.Ends = w.Sel.Ends
		}
		keep++
	}
	for i := len(h.active) - 1; i >= keep; i-- {
		h.Renderer.Leave(h.active[i].Sel)
	}
	h.active = h.active[:keep]
	for _, w := range h.wanted[keep:] {
		h.Renderer.Enter(w.Sel, w.Color)
		h.active = append(h.active, w)
	}
	h.wanted = h.wanted[:0]
	for _, a := range h.active {
		h.Renderer.Follow(a.Sel)
	}
}

// Clear leaves every active highlight, dropping anything added since the
// last [Highlights.Finish].
func (h *Highlights) Clear() {
	h.wanted = h.wanted[:0]
	h.Finish()
}
