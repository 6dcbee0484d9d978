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

// sideEdge is an edge that leaves an end of the dragged edge,
// with its end points at start.
type sideEdge struct {
	sel       *selection.Selection
	near, far math32.Vector3
}

// edgeDrag moves two vertices rigidly. It drags an existing edge,
// and the new edge of an extrusion.
type edgeDrag struct {
	base

	// sel is the highlighted edge.
	sel *selection.Selection

	// v1, v2 are the moved vertices.
	v1, v2 *mesh.Vertex

	// origin is the start position of v1, and dir runs from it
	// to the start position of v2.
	origin, dir math32.Vector3

	// grab is where the pointer grabbed the edge, as a fraction of dir.
	grab float32

	// planes are the faces that contain the whole edge.
	planes []facePlane

	// sides are the other edges at either end.
	sides []sideEdge
}

func newEdgeDrag(ctx *Context, sel *selection.Selection, pos math32.Vector3) *edgeDrag {
	v1, v2 := sel.EdgeVertices()
	g := &edgeDrag{base: newBase(ctx, MoveColor), sel: sel, v1: v1, v2: v2}
	g.setup(pos, v1, v2, nil)
	return g
}

// newExtrude adds a strip face along the picked edge and drags the new
// edge of the strip. The faces around the picked edge keep constraining
// the new edge, which starts on top of it.
func newExtrude(ctx *Context, sel *selection.Selection, pos math32.Vector3) *edgeDrag {
	a, b := sel.EdgeVertices()
	strip, a2, b2 := ctx.Model.ExtrudeEdge(sel.Face, sel.Index)
	g := &edgeDrag{base: newBase(ctx, ExtrudeColor), sel: selection.NewEdge(strip, mesh.ExtrudedEdge), v1: a2, v2: b2}
	g.setup(pos, a, b, strip)
	g.faces = []*mesh.Face{strip}
	ctx.Renderer.UpdateFace(strip)
	return g
}

// setup records the geometry around the edge a, b, at the start
// position of the dragged edge, ignoring face skip.
func (g *edgeDrag) setup(pos math32.Vector3, a, b *mesh.Vertex, skip *mesh.Face) {
	g.origin = a.Pos
	g.dir = b.Pos.Sub(a.Pos)
	g.grab = pos.Sub(g.origin).Dot(g.dir) / g.dir.LengthSquared()
	for _, f := range g.ctx.Model.Faces {
		if f == skip {
			continue
		}
		ia, ib := f.IndexOf(a), f.IndexOf(b)
		if ia < 0 && ib < 0 {
			continue
		}
		g.faces = append(g.faces, f)
		if ia >= 0 && ib >= 0 {
			g.planes = append(g.planes, facePlane{face: f, normal: f.Plane.Normal})
		}
		if ia >= 0 {
			g.addSides(f, ia, ib)
		}
		if ib >= 0 {
			g.addSides(f, ib, ia)
		}
	}
}

// addSides adds the edges of f at its vertex i, except the one to
// vertex exclude.
func (g *edgeDrag) addSides(f *mesh.Face, i, exclude int) {
	if o := f.Index(i - 1); o != exclude {
		g.sides = append(g.sides, sideEdge{sel: selection.NewEdge(f, o), near: f.Vertex(i).Pos, far: f.Vertex(o).Pos})
	}
	if o := f.Index(i + 1); o != exclude {
		g.sides = append(g.sides, sideEdge{sel: selection.NewEdge(f, i), near: f.Vertex(i).Pos, far: f.Vertex(o).Pos})
	}
}

func (g *edgeDrag) Step(pos math32.Vector3, guide *selection.Selection) {
	// track v1, keeping the grabbed point under the pointer
	pos = pos.Sub(g.dir.MulScalar(g.grab))
	fl := g.constrain(pos)
	if guide != nil && !guide.ContainsVertex(g.v1) && !guide.ContainsVertex(g.v2) {
		fl = g.applyGuide(fl, pos, guide)
	}
	if pos = fl.Snap(pos); g.finite(pos) {
		g.v1.Pos = pos
		g.v2.Pos = pos.Add(g.dir)
	}
	g.refit()
	g.hl.Finish()
}

// constrain returns the flat v1 may move in.
func (g *edgeDrag) constrain(pos math32.Vector3) flat.Flat {
	p := g.params()
	if pos.DistanceTo(g.origin) < p.VertexDist {
		g.hl.Add(g.sel, Darker(g.color))
		for _, fp := range g.planes {
			g.hl.Add(selection.NewFace(fp.face), g.color)
		}
		return flat.New(subspace.NewPoint(), g.origin)
	}
	g.hl.Add(g.sel, g.color)

	rpos := pos.Sub(g.origin)
	sub := subspace.NewFull()
	for _, fp := range g.planes {
		if math32.Abs(rpos.Dot(fp.normal)) < p.FaceDist {
			g.hl.Add(selection.NewFace(fp.face), g.color)
			sub = sub.IntersectPlane(fp.normal)
		}
	}

	sc := selection.NewScan(p.EdgeDist, p.Hysteresis)
	var best *sideEdge
	for i := range g.sides {
		s := &g.sides[i]
		// where the end at s.near would be
		end := pos.Add(s.near.Sub(g.origin))
		if sc.Accept(subspace.ProjectOnPlane(end.Sub(s.near), s.far.Sub(s.near)).Length()) {
			best = s
		}
	}
	if best != nil {
		g.hl.Add(best.sel, g.color)
		sub = sub.IntersectVector(best.far.Sub(best.near))
	}
	return flat.New(sub, g.origin)
}

// applyGuide restricts fl by the element hovered by the other pointer,
// aligning whichever end of the edge is within reach of it.
func (g *edgeDrag) applyGuide(fl flat.Flat, pos math32.Vector3, guide *selection.Selection) flat.Flat {
	p := g.params()
	candidate := fl.Snap(pos)
	gf := guide.Flat()
	offset := math32.Vector3{}
	if gf.Distance(candidate) >= p.VertexDist {
		// try v2: move the guide back by the edge, to act on v1
		offset = g.dir
		gf = gf.Translate(g.dir.MulScalar(-1))
		if gf.Distance(candidate) >= p.VertexDist {
			return fl
		}
	}
	fl = fl.Intersect(gf)
	g.hl.Add(selection.NewDummyEdge(guide.Center(), fl.Snap(pos).Add(offset)), g.color)
	return fl
}
