// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/drag"
	"github.com/vrsketch/sketch/mesh"
)

// Ops are the kinds of pointer event in a trace.
type Ops int32 //enums:enum

const (
	// Hover moves an idle pointer, updating what it hovers.
	Hover Ops = iota

	// Press presses the pointer button, starting a gesture on the
	// hovered element.
	Press

	// Drag moves a pointer during its gesture.
	Drag

	// Release releases the pointer button, ending its gesture.
	Release

	// SetMode switches the pointer to the event Mode.
	SetMode
)

// Event is one pointer event of a trace.
type Event struct {

	// Pointer is the pointer, 0 or 1.
	Pointer int

	// Op is what happens.
	Op Ops

	// Pos is the position of the pointer in model space.
	Pos [3]float32

	// Mode is the new mode, for [SetMode].
	Mode drag.Modes
}

func (ev *Event) pos() math32.Vector3 {
	return math32.Vec3(ev.Pos[0], ev.Pos[1], ev.Pos[2])
}

// Trace is a recorded editing session: a model and the pointer events
// applied to it.
type Trace struct {

	// Vertices are the vertex positions of the model. With no vertices,
	// the model is the starter model.
	Vertices [][3]float32

	// Faces are the faces of the model, as indexes into Vertices.
	Faces [][]int

	// Events are the pointer events, in order.
	Events []Event
}

// Model builds the model of the trace.
func (tr *Trace) Model() (*mesh.Model, error) {
	if len(tr.Vertices) == 0 {
		return mesh.NewStarter(), nil
	}
	vs := make([]*mesh.Vertex, len(tr.Vertices))
	for i, p := range tr.Vertices {
		vs[i] = mesh.NewVertex(p[0], p[1], p[2])
	}
	m := &mesh.Model{}
	for fi, idxs := range tr.Faces {
		if len(idxs) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, needs at least 3", fi, len(idxs))
		}
		fvs := make([]*mesh.Vertex, len(idxs))
		for i, vi := range idxs {
			if vi < 0 || vi >= len(vs) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range", fi, vi)
			}
			fvs[i] = vs[vi]
		}
		m.AddFace(fvs...)
	}
	return m, nil
}

// Replay applies the events of the trace to ed, in order.
func (tr *Trace) Replay(ed *drag.Editor) error {
	for i := range tr.Events {
		ev := &tr.Events[i]
		if ev.Pointer < 0 || ev.Pointer >= len(ed.Pointers) {
			return fmt.Errorf("event %d: no pointer %d", i, ev.Pointer)
		}
		switch ev.Op {
		case Hover:
			ed.Hover(ev.Pointer, ev.pos())
		case Press:
			started, empty := ed.Press(ev.Pointer, ev.pos())
			slog.Info("press", "event", i, "pointer", ev.Pointer, "started", started, "empty", empty)
		case Drag:
			ed.Drag(ev.Pointer, ev.pos())
		case Release:
			ed.Release(ev.Pointer)
		case SetMode:
			ed.SetMode(ev.Pointer, ev.Mode)
		default:
			return fmt.Errorf("event %d: unknown op %v", i, ev.Op)
		}
	}
	return nil
}
