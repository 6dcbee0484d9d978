// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

// Pointer is the state of one tracked pointer.
type Pointer struct {

	// Mode is the editing mode of the pointer.
	Mode Modes

	// Hover is the element under the pointer while it is idle, or nil.
	Hover *selection.Selection

	gesture Gesture
	hl      Highlights
}

// Gesture returns the active gesture of the pointer, or nil.
func (p *Pointer) Gesture() Gesture {
	return p.gesture
}

// Editor routes the events of two pointers to hover highlights and
// gestures. The element hovered by one pointer guides the gesture of the
// other. It is not safe for concurrent use: all events of a frame are
// expected from one goroutine.
type Editor struct {
	Context

	// Pointers are the two pointers, in Move mode by default.
	Pointers [2]Pointer
}

// NewEditor returns a new editor of m.
func NewEditor(m *mesh.Model, params *selection.Params, r Renderer) *Editor {
	e := &Editor{Context: Context{Model: m, Params: params, Renderer: r}}
	for i := range e.Pointers {
		e.Pointers[i].Mode = Move
		e.Pointers[i].hl.Renderer = r
	}
	return e
}

// Hover updates the element under idle pointer i, at pos.
func (e *Editor) Hover(i int, pos math32.Vector3) {
	p := &e.Pointers[i]
	if p.gesture != nil {
		return
	}
	sel := selection.FindClosest(pos, e.Model, e.Params)
	if sel.Same(p.Hover) {
		return
	}
	p.Hover = sel
	if sel != nil {
		p.hl.Add(sel, HoverColor)
	}
	p.hl.Finish()
}

// Begin starts the gesture of pointer i on its hovered element, and
// returns whether there is one. Nothing starts when nothing is hovered,
// or when the mode of the pointer has no gesture for it.
func (e *Editor) Begin(i int, pos math32.Vector3) bool {
	p := &e.Pointers[i]
	if p.gesture != nil || p.Hover == nil || !CanStart(p.Mode, p.Hover.Kind) {
		return false
	}
	sel := p.Hover
	p.Hover = nil
	p.hl.Clear()
	p.gesture = Start(&e.Context, sel, p.Mode, pos)
	return true
}

// Drag steps the gesture of pointer i to pos, guided by what the other
// pointer hovers.
func (e *Editor) Drag(i int, pos math32.Vector3) {
	p := &e.Pointers[i]
	if p.gesture == nil {
		return
	}
	p.gesture.Step(pos, e.Pointers[1-i].Hover)
}

// Release ends the gesture of pointer i, if any.
func (e *Editor) Release(i int) {
	p := &e.Pointers[i]
	if p.gesture == nil {
		return
	}
	p.gesture.End()
	p.gesture = nil
}

// SetMode ends anything pointer i is doing and switches it to mode.
// The hover highlight comes back with the next [Editor.Hover].
func (e *Editor) SetMode(i int, mode Modes) {
	e.Release(i)
	p := &e.Pointers[i]
	p.Hover = nil
	p.hl.Clear()
	p.Mode = mode
	slog.Debug("drag: mode", "pointer", i, "mode", mode)
}

// Press handles a press of pointer i at pos: it starts a gesture if one
// applies, and otherwise returns whether the press was in empty space,
// where the application opens its menu.
func (e *Editor) Press(i int, pos math32.Vector3) (started, empty bool) {
	if e.Begin(i, pos) {
		return true, false
	}
	return false, selection.NothingNear(pos, e.Model, e.Params)
}
