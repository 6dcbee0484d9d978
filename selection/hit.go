// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/mesh"
)

// FindClosest returns the element of m hit by point p, or nil.
// Vertices have priority over edges, and edges over faces: a closer edge
// is only considered when no vertex is within reach, however far the
// vertex is.
func FindClosest(p math32.Vector3, m *mesh.Model, params *Params) *Selection {
	if s := ClosestVertex(p, m, params); s != nil {
		return s
	}
	if s := ClosestEdge(p, m, params); s != nil {
		return s
	}
	return ClosestFace(p, m, params)
}

// ClosestVertex returns the vertex of m closest to p within
// [Params.VertexDist], or nil.
func ClosestVertex(p math32.Vector3, m *mesh.Model, params *Params) *Selection {
	sc := NewScan(params.VertexDist, params.Hysteresis)
	var best *mesh.Vertex
	for _, v := range m.Vertices() {
		if sc.Accept(v.Pos.DistanceTo(p)) {
			best = v
		}
	}
	if best == nil {
		return nil
	}
	return NewVertex(best)
}

// ClosestEdge returns the edge of m closest to p within
// [Params.EdgeDist], or nil. Edges shared by two faces are seen once per
// face; the first face wins.
func ClosestEdge(p math32.Vector3, m *mesh.Model, params *Params) *Selection {
	sc := NewScan(params.EdgeDist, params.Hysteresis)
	var best *Selection
	for _, f := range m.Faces {
		for i := range f.Len() {
			v1, v2 := f.Edge(i)
			if sc.Accept(SegmentDistance(v1.Pos, v2.Pos, p)) {
				best = NewEdge(f, i)
			}
		}
	}
	return best
}

// ClosestFace returns the face of m closest to p within
// [Params.FaceDist] whose polygon contains the projection of p, or nil.
func ClosestFace(p math32.Vector3, m *mesh.Model, params *Params) *Selection {
	sc := NewScan(params.FaceDist, params.Hysteresis)
	var best *mesh.Face
	for _, f := range m.Faces {
		d := math32.Abs(f.Plane.Distance(p))
		if d < sc.Radius && f.ContainsPoint(p) && sc.Accept(d) {
			best = f
		}
	}
	if best == nil {
		return nil
	}
	return NewFace(best)
}

// NothingNear returns whether no element of m is hit from any point of
// the 3x3x3 grid of spacing [Params.FaceDist] centered on p.
// It tells a press in empty space from a press aimed at the model.
func NothingNear(p math32.Vector3, m *mesh.Model, params *Params) bool {
	step := params.FaceDist
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				q := p.Add(math32.Vec3(float32(i), float32(j), float32(k)).MulScalar(step))
				if FindClosest(q, m, params) != nil {
					return false
				}
			}
		}
	}
	return true
}

// Scan is a nearest-candidate search with hysteresis. The acceptance
// radius starts at a threshold and shrinks after each accepted candidate
// to its distance times a factor below one, so that a later candidate at
// a nearly equal distance does not replace an earlier one.
type Scan struct {

	// Radius is the current acceptance radius.
	Radius float32

	// Factor is the shrink applied to accepted distances.
	Factor float32
}

// NewScan returns a [Scan] accepting distances below threshold.
func NewScan(threshold, factor float32) *Scan {
	return &Scan{Radius: threshold, Factor: factor}
}

// Accept returns whether a candidate at distance d is the new best,
// and shrinks the radius if so.
func (sc *Scan) Accept(d float32) bool {
	if !(d < sc.Radius) {
		return false
	}
	sc.Radius = d * sc.Factor
	return true
}
