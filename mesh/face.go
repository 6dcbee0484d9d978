// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"slices"

	"cogentcore.org/core/math32"
)

// Plane is an oriented plane: the points p with Normal·p + Offset == 0.
type Plane struct {

	// Normal is the unit normal. Its sign follows the vertex order of the
	// face it belongs to.
	Normal math32.Vector3

	// Offset is the signed offset along Normal.
	Offset float32
}

// PlaneFromNormalAndPoint returns the plane with the given unit normal
// that passes through p.
func PlaneFromNormalAndPoint(normal, p math32.Vector3) Plane {
	return Plane{Normal: normal, Offset: -normal.Dot(p)}
}

// Distance returns the signed distance from p to the plane,
// positive on the side the normal points to.
func (pl Plane) Distance(p math32.Vector3) float32 {
	return pl.Normal.Dot(p) + pl.Offset
}

// Point returns the point of the plane closest to the origin.
func (pl Plane) Point() math32.Vector3 {
	return pl.Normal.MulScalar(-pl.Offset)
}

// Face is a planar polygon over an ordered cycle of shared vertices.
// Edge i runs from Vertices[i] to Vertices[i+1], wrapping at the end.
type Face struct {

	// Vertices is the boundary in order. The order sets the direction of
	// the plane normal.
	Vertices []*Vertex

	// Plane is the cached best-fit plane. It must be recomputed with
	// [Face.RecomputePlane] whenever a vertex moves.
	Plane Plane
}

// NewFace returns a face over the given vertices with its plane computed.
func NewFace(vs ...*Vertex) *Face {
	f := &Face{Vertices: vs}
	f.RecomputePlane()
	return f
}

// Len returns the number of vertices, which is also the number of edges.
func (f *Face) Len() int {
	return len(f.Vertices)
}

// Index wraps i into the range of vertex indexes.
func (f *Face) Index(i int) int {
	n := len(f.Vertices)
	return ((i % n) + n) % n
}

// Vertex returns vertex i, wrapping around in both directions.
func (f *Face) Vertex(i int) *Vertex {
	return f.Vertices[f.Index(i)]
}

// IndexOf returns the index of v in the face, or -1.
func (f *Face) IndexOf(v *Vertex) int {
	return slices.Index(f.Vertices, v)
}

// Has returns whether the face uses v.
func (f *Face) Has(v *Vertex) bool {
	return f.IndexOf(v) >= 0
}

// Edge returns the two vertices of edge i.
func (f *Face) Edge(i int) (v1, v2 *Vertex) {
	return f.Vertex(i), f.Vertex(i + 1)
}

// Positions returns the positions of the vertices, in order.
func (f *Face) Positions() []math32.Vector3 {
	ps := make([]math32.Vector3, len(f.Vertices))
	for i, v := range f.Vertices {
		ps[i] = v.Pos
	}
	return ps
}

// Centroid returns the average of the vertex positions.
func (f *Face) Centroid() math32.Vector3 {
	var c math32.Vector3
	for _, v := range f.Vertices {
		c = c.Add(v.Pos)
	}
	return c.MulScalar(1 / float32(len(f.Vertices)))
}

// RecomputePlane refits the cached plane to the current vertex positions.
func (f *Face) RecomputePlane() {
	f.Plane = FitPlane(f.Positions(), f.Plane.Normal)
}

// basis returns two orthonormal directions spanning the face plane.
// The first is the world axis, Y or X, least aligned with the normal,
// projected into the plane.
func (f *Face) basis() (u, w math32.Vector3) {
	n := f.Plane.Normal
	if math32.Abs(n.Y) < math32.Max(math32.Abs(n.X), math32.Abs(n.Z)) {
		u = math32.Vec3(0, 1, 0)
	} else {
		u = math32.Vec3(1, 0, 0)
	}
	u = u.Sub(n.MulScalar(u.Dot(n))).Normal()
	w = n.Cross(u)
	return
}

// ProjectOnPlane returns the vertex positions in the 2D coordinates of
// the face plane. This is the input to triangulation and to
// [Face.ContainsPoint].
func (f *Face) ProjectOnPlane() []math32.Vector2 {
	u, w := f.basis()
	uvs := make([]math32.Vector2, len(f.Vertices))
	for i, v := range f.Vertices {
		uvs[i] = math32.Vec2(v.Pos.Dot(u), v.Pos.Dot(w))
	}
	return uvs
}

// ContainsPoint returns whether the projection of p onto the face plane
// lies inside the polygon, by the even-odd rule on a ray along +u.
func (f *Face) ContainsPoint(p math32.Vector3) bool {
	u, w := f.basis()
	uvs := f.ProjectOnPlane()
	pt := math32.Vec2(p.Dot(u), p.Dot(w))
	inside := false
	j := len(uvs) - 1
	for i, a := range uvs {
		b := uvs[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
