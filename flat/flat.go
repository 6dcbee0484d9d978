// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flat provides affine flats: a [subspace.Subspace] positioned
// in space by an anchor point. A flat is a located point, line, plane,
// or all of space, and is what a drag constraint snaps positions onto.
package flat

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/vrsketch/sketch/subspace"
)

// Flat is an affine subspace: all points Anchor + v for v in Subspace.
// The zero value is the single point at the origin.
type Flat struct {

	// Subspace holds the directions of the flat.
	Subspace subspace.Subspace

	// Anchor is any point of the flat.
	Anchor math32.Vector3

	// void marks the sentinel returned by [Void].
	void bool
}

// New returns the flat through anchor spanned by sub.
func New(sub subspace.Subspace, anchor math32.Vector3) Flat {
	return Flat{Subspace: sub, Anchor: anchor}
}

// Void returns a sentinel flat that is infinitely far from every point.
// It stands for the absence of a constraint from a second pointer.
func Void() Flat {
	return Flat{void: true}
}

// IsVoid returns whether f is the [Void] sentinel.
func (f Flat) IsVoid() bool {
	return f.void
}

// Distance returns the distance from p to the flat: the length of the
// component of p - Anchor orthogonal to the subspace.
func (f Flat) Distance(p math32.Vector3) float32 {
	if f.void {
		return math32.Inf(1)
	}
	r := p.Sub(f.Anchor)
	return r.Sub(f.Subspace.Project(r)).Length()
}

// Snap returns the point of the flat closest to p.
// Snapping onto the [Void] flat leaves p unchanged.
func (f Flat) Snap(p math32.Vector3) math32.Vector3 {
	if f.void {
		return p
	}
	return f.Anchor.Add(f.Subspace.Project(p.Sub(f.Anchor)))
}

// Translate returns the flat moved by d.
func (f Flat) Translate(d math32.Vector3) Flat {
	if f.void {
		return f
	}
	f.Anchor = f.Anchor.Add(d)
	return f
}

// Intersect returns the intersection of two flats that are known to be
// close to each other. The subspace is the intersection of both subspaces.
// The anchor is a common point when one exists: a point flat wins outright
// (other first), a line meeting a plane and two crossing planes are solved
// exactly, and two skew lines meet at the midpoint of their closest
// approach. In parallel cases one anchor is moved onto the other flat.
// Intersecting with [Void] returns the other flat unchanged.
func (f Flat) Intersect(other Flat) Flat {
	switch {
	case other.void:
		return f
	case f.void:
		return other
	}
	sub := f.Subspace.Intersect(other.Subspace)
	return Flat{Subspace: sub, Anchor: commonPoint(f, other, sub)}
}

func (f Flat) String() string {
	if f.void {
		return "Void"
	}
	return fmt.Sprintf("%v@(%g, %g, %g)", f.Subspace, f.Anchor.X, f.Anchor.Y, f.Anchor.Z)
}

// commonPoint returns a point of both a and b, given that their
// subspaces intersect to sub.
func commonPoint(a, b Flat, sub subspace.Subspace) math32.Vector3 {
	sa, sb := a.Subspace, b.Subspace
	switch {
	case sb.Kind == subspace.Point:
		return b.Anchor
	case sa.Kind == subspace.Point:
		return a.Anchor
	case sa.Kind == subspace.Full:
		return b.Anchor
	case sb.Kind == subspace.Full:
		return a.Anchor
	}
	switch {
	case sa.Kind == subspace.Line && sb.Kind == subspace.Line:
		if sub.Kind == subspace.Line {
			return a.Snap(b.Anchor)
		}
		return closestApproach(a.Anchor, sa.Dir, b.Anchor, sb.Dir)
	case sa.Kind == subspace.Line:
		return lineMeetsPlane(a, b, sub)
	case sb.Kind == subspace.Line:
		return lineMeetsPlane(b, a, sub)
	}
	return planesMeet(a, b, sub)
}

// lineMeetsPlane returns a point of both the line flat l and the plane
// flat p, or the line's anchor moved onto the plane if they are parallel.
func lineMeetsPlane(l, p Flat, sub subspace.Subspace) math32.Vector3 {
	if sub.Kind == subspace.Line {
		return p.Snap(l.Anchor)
	}
	n, d := p.Subspace.Dir, l.Subspace.Dir
	if subspace.Orthogonal(n, d) {
		return p.Snap(l.Anchor)
	}
	t := n.Dot(p.Anchor.Sub(l.Anchor)) / n.Dot(d)
	return l.Anchor.Add(d.MulScalar(t))
}

// planesMeet returns a point on both plane flats, the one closest to
// the origin when they cross, or a's anchor moved onto b if they are
// parallel.
func planesMeet(a, b Flat, sub subspace.Subspace) math32.Vector3 {
	if sub.Kind == subspace.Plane {
		return b.Snap(a.Anchor)
	}
	n1, n2 := a.Subspace.Dir, b.Subspace.Dir
	if subspace.Parallel(n1, n2) {
		return b.Snap(a.Anchor)
	}
	h1 := n1.Dot(a.Anchor)
	h2 := n2.Dot(b.Anchor)
	n11, n22, n12 := n1.Dot(n1), n2.Dot(n2), n1.Dot(n2)
	det := n11*n22 - n12*n12
	c1 := (h1*n22 - h2*n12) / det
	c2 := (h2*n11 - h1*n12) / det
	return n1.MulScalar(c1).Add(n2.MulScalar(c2))
}

// closestApproach returns the midpoint of the shortest segment joining
// the lines p1 + s*d1 and p2 + t*d2. For parallel lines it is the
// midpoint between p1 and the second line.
func closestApproach(p1, d1, p2, d2 math32.Vector3) math32.Vector3 {
	r := p1.Sub(p2)
	if subspace.Parallel(d1, d2) {
		q2 := p2.Add(subspace.ProjectOnVector(r, d2))
		return p1.Add(q2).MulScalar(0.5)
	}
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	d := d1.Dot(r)
	e := d2.Dot(r)
	den := a*c - b*b
	s := (b*e - c*d) / den
	t := (a*e - b*d) / den
	q1 := p1.Add(d1.MulScalar(s))
	q2 := p2.Add(d2.MulScalar(t))
	return q1.Add(q2).MulScalar(0.5)
}
