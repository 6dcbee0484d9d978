// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subspace provides the linear subspaces of 3D space that pass
// through the origin: a point, a line, a plane, or all of space.
//
// Each kind is stored as its minimal defining vector (the axis of a line,
// the normal of a plane), so projection, orthogonal complement, join and
// intersection all reduce to a few dot and cross products. Intersection is
// not primitive: it is expressed through the complement of a join, which
// lets simultaneous movement constraints ("stay on this edge and in that
// face") compose as repeated intersections.
package subspace

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of [Subspace], in order of dimension.
type Kinds int32 //enums:enum

const (
	// Point is the zero-dimensional subspace holding only the origin.
	Point Kinds = iota

	// Line is the one-dimensional subspace along [Subspace.Dir].
	Line

	// Plane is the two-dimensional subspace orthogonal to [Subspace.Dir].
	Plane

	// Full is all of 3D space.
	Full
)

// Subspace is a linear subspace of 3D space through the origin.
// The zero value is a [Point].
type Subspace struct {

	// Kind is the dimension of the subspace.
	Kind Kinds

	// Dir is the axis of a [Line] or the normal of a [Plane].
	// It is not required to be normalized, and is unused for
	// [Point] and [Full].
	Dir math32.Vector3
}

// NewPoint returns the zero-dimensional subspace.
func NewPoint() Subspace {
	return Subspace{Kind: Point}
}

// NewLine returns the line along the given axis.
func NewLine(axis math32.Vector3) Subspace {
	return Subspace{Kind: Line, Dir: axis}
}

// NewPlane returns the plane orthogonal to the given normal.
func NewPlane(normal math32.Vector3) Subspace {
	return Subspace{Kind: Plane, Dir: normal}
}

// NewFull returns all of 3D space.
func NewFull() Subspace {
	return Subspace{Kind: Full}
}

// Dim returns the dimension of the subspace, 0 through 3.
func (s Subspace) Dim() int {
	return int(s.Kind)
}

// Project returns the orthogonal projection of the free vector v
// onto the subspace.
func (s Subspace) Project(v math32.Vector3) math32.Vector3 {
	switch s.Kind {
	case Point:
		return math32.Vector3{}
	case Line:
		return ProjectOnVector(v, s.Dir)
	case Plane:
		return v.Sub(ProjectOnVector(v, s.Dir))
	}
	return v
}

// Normal returns the orthogonal complement of the subspace:
// a point and all of space swap, and so do a line and a plane.
func (s Subspace) Normal() Subspace {
	switch s.Kind {
	case Point:
		return NewFull()
	case Line:
		return NewPlane(s.Dir)
	case Plane:
		return NewLine(s.Dir)
	}
	return NewPoint()
}

// JoinVector returns the smallest subspace containing both s
// and the direction v.
func (s Subspace) JoinVector(v math32.Vector3) Subspace {
	switch s.Kind {
	case Point:
		if v == (math32.Vector3{}) {
			return s
		}
		return NewLine(v)
	case Line:
		if Parallel(s.Dir, v) {
			return s
		}
		return NewPlane(s.Dir.Cross(v))
	case Plane:
		if Orthogonal(s.Dir, v) {
			return s
		}
		return NewFull()
	}
	return s
}

// IntersectPlane returns the intersection of s with the plane
// orthogonal to the given normal.
func (s Subspace) IntersectPlane(normal math32.Vector3) Subspace {
	return s.Normal().JoinVector(normal).Normal()
}

// IntersectVector returns the line along the projection of v onto s,
// or a [Point] if v is orthogonal to s. It restricts motion within s
// to the single direction of s closest to v.
func (s Subspace) IntersectVector(v math32.Vector3) Subspace {
	p := s.Project(v)
	if p.LengthSquared() <= Epsilon*v.LengthSquared() {
		return NewPoint()
	}
	return NewLine(p)
}

// Intersect returns the intersection of s and other.
// A line is treated as the intersection of the planes containing it,
// so every case reduces to [Subspace.IntersectPlane] or to a
// parallel test on the defining vectors.
func (s Subspace) Intersect(other Subspace) Subspace {
	switch other.Kind {
	case Point:
		return NewPoint()
	case Plane:
		return s.IntersectPlane(other.Dir)
	case Full:
		return s
	}
	switch s.Kind {
	case Line:
		if Parallel(s.Dir, other.Dir) {
			return s
		}
		return NewPoint()
	case Plane:
		if Orthogonal(s.Dir, other.Dir) {
			return other
		}
		return NewPoint()
	case Full:
		return other
	}
	return s
}

// Contains returns whether the direction v lies in the subspace,
// which is the case when joining v does not grow it.
func (s Subspace) Contains(v math32.Vector3) bool {
	return s.JoinVector(v).Kind == s.Kind
}

func (s Subspace) String() string {
	switch s.Kind {
	case Line, Plane:
		return fmt.Sprintf("%v(%g, %g, %g)", s.Kind, s.Dir.X, s.Dir.Y, s.Dir.Z)
	}
	return s.Kind.String()
}

// Epsilon is the largest squared sine of the angle between two
// directions that are still [Parallel], and the largest squared cosine
// between two that are still [Orthogonal].
const Epsilon = 1e-10

// Parallel returns whether a and b lie on a common line through the
// origin. The zero vector is parallel to everything.
func Parallel(a, b math32.Vector3) bool {
	return a.Cross(b).LengthSquared() <= Epsilon*a.LengthSquared()*b.LengthSquared()
}

// Orthogonal returns whether a and b are at right angles.
// The zero vector is orthogonal to everything.
func Orthogonal(a, b math32.Vector3) bool {
	d := a.Dot(b)
	return d*d <= Epsilon*a.LengthSquared()*b.LengthSquared()
}

// ProjectOnVector returns the component of v along dir,
// or the zero vector if dir is zero.
func ProjectOnVector(v, dir math32.Vector3) math32.Vector3 {
	l2 := dir.LengthSquared()
	if l2 == 0 {
		return math32.Vector3{}
	}
	return dir.MulScalar(v.Dot(dir) / l2)
}

// ProjectOnPlane returns v with its component along normal removed.
func ProjectOnPlane(v, normal math32.Vector3) math32.Vector3 {
	return v.Sub(ProjectOnVector(v, normal))
}
