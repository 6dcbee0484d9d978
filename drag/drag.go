// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drag implements the gestures that edit a model: dragging a
// vertex, dragging an edge, and extruding an edge. A gesture snaps the
// pointer onto the edges and faces around the dragged element, and onto
// the element hovered by the other pointer, and keeps the renderer's
// highlights in sync.
package drag

//go:generate core generate

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

// Modes are the editing modes of a pointer. The mode decides which
// gesture a press on a selection starts.
type Modes int32 //enums:enum

const (
	// Create mode extrudes new geometry out of picked edges.
	Create Modes = iota

	// Move mode drags picked vertices and edges.
	Move

	// Guide mode only hovers, so that the pointer serves as an alignment
	// guide for the other pointer.
	Guide
)

// CanStart returns whether a press in mode on a selection of kind k
// starts a gesture.
func CanStart(mode Modes, k selection.Kinds) bool {
	switch mode {
	case Move:
		return k == selection.Vertex || k == selection.Edge
	case Create:
		return k == selection.Edge
	}
	return false
}

// Context is what a gesture edits and reports to.
type Context struct {

	// Model is the edited model.
	Model *mesh.Model

	// Params are the snapping tolerances.
	Params *selection.Params

	// Renderer receives face updates and highlights.
	Renderer Renderer
}

// Gesture is one drag, from press to release.
type Gesture interface {

	// ID returns the unique id of the gesture, for logs.
	ID() uuid.UUID

	// Step moves the dragged element toward the pointer at pos,
	// under the constraints found around it and those of guide,
	// the selection hovered by the other pointer, if not nil.
	Step(pos math32.Vector3, guide *selection.Selection)

	// End finishes the gesture at its last position and removes
	// its highlights.
	End()
}

// Start starts the gesture that mode assigns to sel, with the pointer
// at pos. It panics if [CanStart] is false for mode and the kind of sel.
func Start(ctx *Context, sel *selection.Selection, mode Modes, pos math32.Vector3) Gesture {
	var g Gesture
	switch {
	case mode == Move && sel.Kind == selection.Vertex:
		g = newVertexDrag(ctx, sel.Vertex)
	case mode == Move && sel.Kind == selection.Edge:
		g = newEdgeDrag(ctx, sel, pos)
	case mode == Create && sel.Kind == selection.Edge:
		g = newExtrude(ctx, sel, pos)
	default:
		panic(fmt.Sprintf("drag.Start: no gesture for %v in %v mode", sel.Kind, mode))
	}
	slog.Debug("drag: start", "gesture", g.ID(), "mode", mode, "selection", sel)
	return g
}

// base holds what every gesture has.
type base struct {
	id    uuid.UUID
	ctx   *Context
	color color.RGBA

	// faces are the faces whose shape the gesture changes,
	// found once at start.
	faces []*mesh.Face

	hl Highlights
}

func newBase(ctx *Context, c color.RGBA) base {
	return base{id: uuid.New(), ctx: ctx, color: c, hl: Highlights{Renderer: ctx.Renderer}}
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) params() *selection.Params {
	return b.ctx.Params
}

// refit recomputes the planes of the changed faces and has them redrawn.
func (b *base) refit() {
	for _, f := range b.faces {
		f.RecomputePlane()
		b.ctx.Renderer.UpdateFace(f)
	}
}

// finite reports whether p can be written into the model,
// logging an error if it cannot.
func (b *base) finite(p math32.Vector3) bool {
	for _, c := range [3]float32{p.X, p.Y, p.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			slog.Error("drag: dropping non-finite position", "gesture", b.id, "pos", []float32{p.X, p.Y, p.Z})
			return false
		}
	}
	return true
}

func (b *base) End() {
	b.hl.Clear()
	slog.Debug("drag: end", "gesture", b.id)
}
