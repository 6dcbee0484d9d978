// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/flat"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
	"github.com/vrsketch/sketch/subspace"
)

// incidentEdge is an edge touching the dragged vertex, seen at start.
type incidentEdge struct {
	sel *selection.Selection

	// far is the other vertex of the edge.
	far *mesh.Vertex

	// dir runs from far to the dragged vertex.
	dir math32.Vector3
}

// facePlane is a face touching the dragged element, with its normal
// at start.
type facePlane struct {
	face   *mesh.Face
	normal math32.Vector3
}

// vertexDrag moves one vertex.
type vertexDrag struct {
	base
	vertex *mesh.Vertex
	origin math32.Vector3
	edges  []incidentEdge
	planes []facePlane
}

func newVertexDrag(ctx *Context, v *mesh.Vertex) *vertexDrag {
	g := &vertexDrag{base: newBase(ctx, MoveColor), vertex: v, origin: v.Pos}
	for _, f := range ctx.Model.Faces {
		i := f.IndexOf(v)
		if i < 0 {
			continue
		}
		prev, next := f.Vertex(i-1), f.Vertex(i+1)
		g.edges = append(g.edges,
			incidentEdge{sel: selection.NewEdge(f, i-1), far: prev, dir: g.origin.Sub(prev.Pos)},
			incidentEdge{sel: selection.NewEdge(f, i), far: next, dir: g.origin.Sub(next.Pos)})
		g.planes = append(g.planes, facePlane{face: f, normal: f.Plane.Normal})
		g.faces = append(g.faces, f)
	}
	return g
}

func (g *vertexDrag) Step(pos math32.Vector3, guide *selection.Selection) {
	fl, snapped := g.constrain(pos)
	if guide != nil && !guide.ContainsVertex(g.vertex) {
		fl = g.applyGuide(fl, snapped, pos, guide)
	}
	if p := fl.Snap(pos); g.finite(p) {
		g.vertex.Pos = p
	}
	g.refit()
	g.hl.Add(selection.NewVertex(g.vertex), g.color)
	g.hl.Finish()
}

// constrain returns the flat the vertex may move in, from the geometry
// around its start position, and the incident edge it is snapped to,
// if any.
func (g *vertexDrag) constrain(pos math32.Vector3) (flat.Flat, *incidentEdge) {
	p := g.params()
	rpos := pos.Sub(g.origin)
	if rpos.Length() < p.VertexDist {
		for _, e := range g.edges {
			g.hl.Add(e.sel, Darker(g.color))
		}
		return flat.New(subspace.NewPoint(), g.origin), nil
	}

	sc := selection.NewScan(p.EdgeDist, p.Hysteresis)
	var best *incidentEdge
	for i := range g.edges {
		e := &g.edges[i]
		if sc.Accept(rpos.Sub(subspace.ProjectOnVector(rpos, e.dir)).Length()) {
			best = e
		}
	}
	if best != nil {
		g.hl.Add(best.sel, g.color)
		return flat.New(subspace.NewLine(best.dir), g.origin), best
	}

	sub := subspace.NewFull()
	for _, fp := range g.planes {
		if math32.Abs(rpos.Dot(fp.normal)) < p.FaceDist {
			g.hl.Add(selection.NewFace(fp.face), g.color)
			sub = sub.IntersectPlane(fp.normal)
		}
	}
	return flat.New(sub, g.origin), nil
}

// applyGuide restricts fl by the element hovered by the other pointer.
// A guide at the far end of the snapped edge clamps the length of that
// edge to whole steps instead.
func (g *vertexDrag) applyGuide(fl flat.Flat, snapped *incidentEdge, pos math32.Vector3, guide *selection.Selection) flat.Flat {
	p := g.params()
	candidate := fl.Snap(pos)
	if snapped != nil && guide.Kind == selection.Vertex && guide.Vertex == snapped.far {
		far := snapped.far.Pos
		u := snapped.dir.Normal()
		n := math32.Max(1, math32.Round(candidate.Sub(far).Dot(u)/p.LengthStep))
		to := far.Add(u.MulScalar(n * p.LengthStep))
		g.hl.Add(selection.NewDummyEdge(far, to), g.color)
		return flat.New(subspace.NewPoint(), to)
	}
	gf := guide.Flat()
	if gf.Distance(candidate) >= p.VertexDist {
		return fl
	}
	fl = fl.Intersect(gf)
	g.hl.Add(selection.NewDummyEdge(guide.Center(), fl.Snap(pos)), g.color)
	return fl
}
