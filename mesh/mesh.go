// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the editable polygon boundary model:
// vertices shared by reference between planar faces, and the faces'
// cached best-fit planes.
package mesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Vertex is a point of the model. Faces share vertices by pointer, so
// moving a vertex moves it in every face that uses it, and two vertices
// are the same vertex only if they are the same pointer.
type Vertex struct {

	// Pos is the position in model space.
	Pos math32.Vector3
}

// NewVertex returns a new vertex at the given coordinates.
func NewVertex(x, y, z float32) *Vertex {
	return &Vertex{Pos: math32.Vec3(x, y, z)}
}

// Clone returns a new, distinct vertex at the same position.
func (v *Vertex) Clone() *Vertex {
	return &Vertex{Pos: v.Pos}
}

// Model is an unordered collection of faces. Its vertex set is derived
// from the faces; there is no separate vertex list.
type Model struct {
	Faces []*Face
}

// AddFace adds a new face over the given vertices, in order,
// and returns it with its plane computed.
func (m *Model) AddFace(vs ...*Vertex) *Face {
	f := NewFace(vs...)
	m.Faces = append(m.Faces, f)
	return f
}

// Vertices returns every vertex used by a face, once each,
// in order of first use.
func (m *Model) Vertices() []*Vertex {
	var vs []*Vertex
	seen := map[*Vertex]bool{}
	for _, f := range m.Faces {
		for _, v := range f.Vertices {
			if !seen[v] {
				seen[v] = true
				vs = append(vs, v)
			}
		}
	}
	return vs
}

// FacesWith returns the faces that use any of the given vertices.
func (m *Model) FacesWith(vs ...*Vertex) []*Face {
	var fs []*Face
	for _, f := range m.Faces {
		if slices.ContainsFunc(vs, f.Has) {
			fs = append(fs, f)
		}
	}
	return fs
}

// RecomputePlanes refits the plane of every face.
func (m *Model) RecomputePlanes() {
	for _, f := range m.Faces {
		f.RecomputePlane()
	}
}

// ExtrudeEdge duplicates the two vertices of edge i of face f and adds a
// strip face joining the edge to its copy. The strip runs against the
// direction of f along the shared edge, so that the two faces agree on
// orientation. The copies a2, b2 start at the positions of the edge's
// vertices a, b, and form edge [ExtrudedEdge] of the strip.
func (m *Model) ExtrudeEdge(f *Face, i int) (strip *Face, a2, b2 *Vertex) {
	a, b := f.Edge(i)
	a2, b2 = a.Clone(), b.Clone()
	strip = &Face{Vertices: []*Vertex{b, a, a2, b2}}
	// zero area until dragged open: borrow the plane of f
	strip.Plane = f.Plane
	m.Faces = append(m.Faces, strip)
	return
}

// ExtrudedEdge is the index within a strip face made by
// [Model.ExtrudeEdge] of the edge between the two new vertices.
const ExtrudedEdge = 2

// NewStarter returns a small model of three quads around a shared
// corner: a vertical front wall, a top, and a side wall.
// It is the default scene of the editor.
func NewStarter() *Model {
	vs := []*Vertex{
		NewVertex(0, 0.5, 0),
		NewVertex(1, 0.5, 0),
		NewVertex(1, 1, 0),
		NewVertex(0, 1, 0),
		NewVertex(1, 1, 1),
		NewVertex(0, 1, 1),
		NewVertex(1, 0.5, 1),
	}
	m := &Model{}
	m.AddFace(vs[0], vs[1], vs[2], vs[3])
	m.AddFace(vs[3], vs[2], vs[4], vs[5])
	m.AddFace(vs[1], vs[2], vs[4], vs[6])
	return m
}
