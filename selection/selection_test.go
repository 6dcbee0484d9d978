// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/subspace"
)

const tol = 1e-5

func square() (*mesh.Model, []*mesh.Vertex) {
	vs := []*mesh.Vertex{
		mesh.NewVertex(0, 0, 0),
		mesh.NewVertex(1, 0, 0),
		mesh.NewVertex(1, 1, 0),
		mesh.NewVertex(0, 1, 0),
	}
	m := &mesh.Model{}
	m.AddFace(vs...)
	return m, vs
}

func TestParams(t *testing.T) {
	p := DefaultParams()
	assert.InDelta(t, 0.05, p.VertexDist, tol)
	assert.InDelta(t, 0.044, p.EdgeDist, tol)
	assert.InDelta(t, 0.04, p.FaceDist, tol)
	assert.InDelta(t, 0.99, p.Hysteresis, tol)
	assert.InDelta(t, 0.05, p.LengthStep, tol)

	fn := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(fn, []byte("EdgeDist = 0.1\n"), 0666))
	p, err := OpenParams(fn)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, p.EdgeDist, tol)
	assert.InDelta(t, 0.05, p.VertexDist, tol)

	_, err = OpenParams(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFindClosestFace(t *testing.T) {
	m, _ := square()
	p := math32.Vec3(0.5, 0.5, 0.01)
	s := FindClosest(p, m, DefaultParams())
	require.NotNil(t, s)
	assert.Equal(t, Face, s.Kind)
	assert.Same(t, m.Faces[0], s.Face)
	assert.InDelta(t, 0.01, s.Distance(p), tol)

	assert.Nil(t, FindClosest(math32.Vec3(0.5, 0.5, 0.05), m, DefaultParams()))
	assert.Nil(t, FindClosest(math32.Vec3(1.5, 0.5, 0.01), m, DefaultParams()))
}

func TestFindClosestEdge(t *testing.T) {
	m, vs := square()
	s := FindClosest(math32.Vec3(0.5, 0.02, 0.01), m, DefaultParams())
	require.NotNil(t, s)
	assert.Equal(t, Edge, s.Kind)
	assert.Equal(t, 0, s.Index)
	v1, v2 := s.EdgeVertices()
	assert.Same(t, vs[0], v1)
	assert.Same(t, vs[1], v2)

	// edge 3 runs from the last vertex back to the first
	s = FindClosest(math32.Vec3(0.01, 0.5, 0), m, DefaultParams())
	require.NotNil(t, s)
	assert.Equal(t, 3, s.Index)
}

func TestSegmentDistance(t *testing.T) {
	a, b := math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0)
	assert.InDelta(t, 0.5, SegmentDistance(a, b, math32.Vec3(0.3, 0.3, 0.4)), tol)
	assert.True(t, math32.IsInf(SegmentDistance(a, b, math32.Vec3(1.2, 0.01, 0)), 1))
	assert.True(t, math32.IsInf(SegmentDistance(a, b, math32.Vec3(-0.01, 0.01, 0)), 1))
	assert.True(t, math32.IsInf(SegmentDistance(a, b, a), 1))
}

func TestPriority(t *testing.T) {
	m, vs := square()
	// an edge passing close to vs[0] without touching it
	m.AddFace(mesh.NewVertex(-1, 0.03, 0), mesh.NewVertex(1, 0.03, 0), mesh.NewVertex(0, 2, 1))
	p := math32.Vec3(0.01, 0.01, 0)
	s := FindClosest(p, m, DefaultParams())
	require.NotNil(t, s)
	assert.Equal(t, Vertex, s.Kind)
	assert.Same(t, vs[0], s.Vertex)
	assert.NotNil(t, ClosestEdge(p, m, DefaultParams()))
}

func TestDeterminism(t *testing.T) {
	a := mesh.NewFace(mesh.NewVertex(0.02, 0, 0), mesh.NewVertex(1, 0, 0), mesh.NewVertex(1, 1, 0))
	b := mesh.NewFace(mesh.NewVertex(-0.03, 0, 0), mesh.NewVertex(-1, 0, 0), mesh.NewVertex(-1, -1, 0))
	p := math32.Vector3{}
	s1 := FindClosest(p, &mesh.Model{Faces: []*mesh.Face{a, b}}, DefaultParams())
	s2 := FindClosest(p, &mesh.Model{Faces: []*mesh.Face{b, a}}, DefaultParams())
	assert.True(t, s1.Same(s2))
	assert.Same(t, a.Vertices[0], s1.Vertex)
}

func TestHysteresis(t *testing.T) {
	// the second vertex is closer, but by less than 1%
	a := mesh.NewFace(mesh.NewVertex(0.0200, 0, 0), mesh.NewVertex(1, 0, 0), mesh.NewVertex(1, 1, 0))
	b := mesh.NewFace(mesh.NewVertex(-0.0199, 0, 0), mesh.NewVertex(-1, 0, 0), mesh.NewVertex(-1, -1, 0))
	p := math32.Vector3{}
	s := FindClosest(p, &mesh.Model{Faces: []*mesh.Face{a, b}}, DefaultParams())
	assert.Same(t, a.Vertices[0], s.Vertex)
	s = FindClosest(p, &mesh.Model{Faces: []*mesh.Face{b, a}}, DefaultParams())
	assert.Same(t, b.Vertices[0], s.Vertex)

	sc := NewScan(1, 0.5)
	assert.True(t, sc.Accept(0.8))
	assert.False(t, sc.Accept(0.41))
	assert.True(t, sc.Accept(0.39))
	assert.False(t, sc.Accept(math32.NaN()))
	assert.False(t, sc.Accept(math32.Inf(1)))
}

func TestNothingNear(t *testing.T) {
	m, _ := square()
	params := DefaultParams()
	assert.True(t, NothingNear(math32.Vec3(0.5, 0.5, 0.5), m, params))
	assert.False(t, NothingNear(math32.Vec3(0.5, 0.5, 0.05), m, params))
	assert.False(t, NothingNear(math32.Vec3(1.06, 1.06, 0), m, params))
}

func TestSame(t *testing.T) {
	m, vs := square()
	f := m.Faces[0]
	assert.True(t, NewVertex(vs[0]).Same(NewVertex(vs[0])))
	assert.False(t, NewVertex(vs[0]).Same(NewVertex(mesh.NewVertex(0, 0, 0))))
	assert.True(t, NewEdge(f, 1).Same(NewEdge(f, 5)))
	assert.False(t, NewEdge(f, 1).Same(NewEdge(f, 2)))
	assert.False(t, NewEdge(f, 0).Same(NewFace(f)))
	assert.True(t, NewFace(f).Same(NewFace(f)))
	assert.True(t, NewDummyEdge(vs[0].Pos, vs[1].Pos).Same(NewDummyEdge(vs[2].Pos, vs[3].Pos)))

	var none *Selection
	assert.True(t, none.Same(nil))
	assert.False(t, none.Same(NewFace(f)))
	assert.False(t, NewFace(f).Same(nil))
}

func TestFlats(t *testing.T) {
	m, vs := square()
	f := m.Faces[0]

	fl := NewVertex(vs[2]).Flat()
	assert.Equal(t, subspace.Point, fl.Subspace.Kind)
	assert.Equal(t, vs[2].Pos, fl.Snap(math32.Vec3(5, 5, 5)))

	fl = NewEdge(f, 1).Flat()
	assert.Equal(t, subspace.Line, fl.Subspace.Kind)
	got := fl.Snap(math32.Vec3(3, 0.25, 2))
	assert.InDelta(t, 1, got.X, tol)
	assert.InDelta(t, 0.25, got.Y, tol)
	assert.InDelta(t, 0, got.Z, tol)

	fl = NewFace(f).Flat()
	assert.Equal(t, subspace.Plane, fl.Subspace.Kind)
	assert.InDelta(t, 0.3, fl.Distance(math32.Vec3(7, -2, 0.3)), tol)

	fl = NewDummyEdge(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 2)).Flat()
	assert.Equal(t, subspace.Line, fl.Subspace.Kind)
	assert.InDelta(t, 1, fl.Distance(math32.Vec3(1, 0, 9)), tol)
}

func TestCenterAndVertices(t *testing.T) {
	m, vs := square()
	f := m.Faces[0]

	assert.Equal(t, vs[1].Pos, NewVertex(vs[1]).Center())
	assert.Equal(t, math32.Vec3(1, 0.5, 0), NewEdge(f, 1).Center())
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), NewFace(f).Center())
	assert.Equal(t, math32.Vec3(0, 0, 1.5), NewDummyEdge(math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 2)).Center())

	e := NewEdge(f, 3)
	assert.Equal(t, []*mesh.Vertex{vs[3], vs[0]}, e.Vertices())
	assert.True(t, e.ContainsVertex(vs[0]))
	assert.False(t, e.ContainsVertex(vs[1]))
	assert.True(t, NewFace(f).ContainsVertex(vs[1]))
	assert.True(t, NewVertex(vs[1]).ContainsVertex(vs[1]))
	assert.False(t, NewDummyEdge(vs[0].Pos, vs[1].Pos).ContainsVertex(vs[0]))
	assert.Empty(t, NewDummyEdge(vs[0].Pos, vs[1].Pos).Vertices())
}

func TestSelectionString(t *testing.T) {
	m, vs := square()
	assert.Equal(t, "Vertex@(1, 0, 0)", NewVertex(vs[1]).String())
	assert.Equal(t, "Edge 1@(1, 0.5, 0)", NewEdge(m.Faces[0], 1).String())
	assert.Equal(t, "Face 4@(0.5, 0.5, 0)", NewFace(m.Faces[0]).String())
	var none *Selection
	assert.Equal(t, "<nil>", none.String())
}
