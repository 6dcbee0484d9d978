// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selection finds the model element nearest to a pointer and
// describes picked elements: vertices, edges, faces and the dummy edges
// used to show an alignment between two pointers.
package selection

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/flat"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/subspace"
)

// Kinds are the kinds of element a [Selection] can refer to.
type Kinds int32 //enums:enum

const (
	// Vertex selects a single vertex.
	Vertex Kinds = iota

	// Edge selects edge Index of Face, from its vertex Index to the next one.
	Edge

	// Face selects a whole face.
	Face

	// DummyEdge is a segment between two points that is not part of the
	// model, drawn to show an alignment.
	DummyEdge
)

// Selection is one picked element. Which fields are meaningful depends
// on Kind; the others are zero.
type Selection struct {

	// Kind is the kind of element.
	Kind Kinds

	// Vertex is the picked vertex, for [Vertex].
	Vertex *mesh.Vertex

	// Face is the picked face, for [Face], or the face whose edge is
	// picked, for [Edge].
	Face *mesh.Face

	// Index is the edge index within Face, for [Edge].
	Index int

	// Ends are the two end points of a [DummyEdge].
	Ends [2]math32.Vector3
}

// NewVertex returns a selection of vertex v.
func NewVertex(v *mesh.Vertex) *Selection {
	return &Selection{Kind: Vertex, Vertex: v}
}

// NewEdge returns a selection of edge i of face f.
func NewEdge(f *mesh.Face, i int) *Selection {
	return &Selection{Kind: Edge, Face: f, Index: f.Index(i)}
}

// NewFace returns a selection of face f.
func NewFace(f *mesh.Face) *Selection {
	return &Selection{Kind: Face, Face: f}
}

// NewDummyEdge returns a dummy edge from start to end.
func NewDummyEdge(start, end math32.Vector3) *Selection {
	return &Selection{Kind: DummyEdge, Ends: [2]math32.Vector3{start, end}}
}

// Same returns whether s and o select the same element. Vertices and
// faces compare by identity, so a selection made before a drag is still
// the same as one made after it. Any two dummy edges are the same, so
// that a dummy edge that moves keeps its highlight. Two nil selections
// are the same.
func (s *Selection) Same(o *Selection) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case Vertex:
		return s.Vertex == o.Vertex
	case Edge:
		return s.Face == o.Face && s.Index == o.Index
	case Face:
		return s.Face == o.Face
	}
	return true
}

// EdgeVertices returns the two vertices of an [Edge], in face order.
func (s *Selection) EdgeVertices() (v1, v2 *mesh.Vertex) {
	return s.Face.Edge(s.Index)
}

// Segment returns the current end points of an [Edge] or [DummyEdge].
func (s *Selection) Segment() (a, b math32.Vector3) {
	if s.Kind == DummyEdge {
		return s.Ends[0], s.Ends[1]
	}
	v1, v2 := s.EdgeVertices()
	return v1.Pos, v2.Pos
}

// Distance returns the distance from p to the selected element, with the
// same rules as the hit test: an edge is only at a finite distance from
// the points that project strictly inside it, and a face is at the
// absolute distance from its plane.
func (s *Selection) Distance(p math32.Vector3) float32 {
	switch s.Kind {
	case Vertex:
		return s.Vertex.Pos.DistanceTo(p)
	case Face:
		return math32.Abs(s.Face.Plane.Distance(p))
	}
	a, b := s.Segment()
	return SegmentDistance(a, b, p)
}

// SegmentDistance returns the distance from p to the line through a and
// b, if p projects strictly between a and b, and +Inf otherwise.
func SegmentDistance(a, b, p math32.Vector3) float32 {
	d := b.Sub(a)
	r := p.Sub(a)
	dot := r.Dot(d)
	if dot <= 0 || dot >= d.LengthSquared() {
		return math32.Inf(1)
	}
	return subspace.ProjectOnPlane(r, d).Length()
}

// Flat returns the flat through the selected element: the point of a
// vertex, the line of an edge, or the plane of a face.
func (s *Selection) Flat() flat.Flat {
	switch s.Kind {
	case Vertex:
		return flat.New(subspace.NewPoint(), s.Vertex.Pos)
	case Face:
		return flat.New(subspace.NewPlane(s.Face.Plane.Normal), s.Face.Centroid())
	}
	a, b := s.Segment()
	return flat.New(subspace.NewLine(b.Sub(a)), a)
}

// Center returns the position of a vertex, the middle of an edge, or the
// centroid of a face.
func (s *Selection) Center() math32.Vector3 {
	switch s.Kind {
	case Vertex:
		return s.Vertex.Pos
	case Face:
		return s.Face.Centroid()
	}
	a, b := s.Segment()
	return a.Add(b).MulScalar(0.5)
}

// Vertices returns the model vertices of the selected element.
// A dummy edge has none.
func (s *Selection) Vertices() []*mesh.Vertex {
	switch s.Kind {
	case Vertex:
		return []*mesh.Vertex{s.Vertex}
	case Edge:
		v1, v2 := s.EdgeVertices()
		return []*mesh.Vertex{v1, v2}
	case Face:
		return s.Face.Vertices
	}
	return nil
}

// ContainsVertex returns whether v is one of [Selection.Vertices].
func (s *Selection) ContainsVertex(v *mesh.Vertex) bool {
	switch s.Kind {
	case Vertex:
		return s.Vertex == v
	case Edge:
		v1, v2 := s.EdgeVertices()
		return v1 == v || v2 == v
	case Face:
		return s.Face.Has(v)
	}
	return false
}

func (s *Selection) String() string {
	if s == nil {
		return "<nil>"
	}
	c := s.Center()
	switch s.Kind {
	case Edge:
		return fmt.Sprintf("Edge %d@(%g, %g, %g)", s.Index, c.X, c.Y, c.Z)
	case Face:
		return fmt.Sprintf("Face %d@(%g, %g, %g)", s.Face.Len(), c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("%v@(%g, %g, %g)", s.Kind, c.X, c.Y, c.Z)
}
