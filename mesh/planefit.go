// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"gonum.org/v1/gonum/mat"
)

// FitPlane returns the least-squares plane through the given points:
// it passes through their centroid, and its normal is the eigenvector of
// the smallest eigenvalue of their covariance matrix (the direction of
// least spread). Vertices dragged independently are rarely exactly
// coplanar, so this is what the rest of the editor treats as the plane
// of a face.
//
// The normal is oriented along the winding of the points (the right-hand
// rule), or into the hemisphere of prev when the winding is degenerate.
// Tied eigenvalues, as for collinear points, resolve to the lowest index
// of the ascending eigenvalues, so the choice is deterministic but
// otherwise arbitrary.
func FitPlane(points []math32.Vector3, prev math32.Vector3) Plane {
	var center math32.Vector3
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.MulScalar(1 / float32(len(points)))

	cov := mat.NewSymDense(3, nil)
	for _, p := range points {
		d := p.Sub(center)
		r := [3]float64{float64(d.X), float64(d.Y), float64(d.Z)}
		for j := range 3 {
			for i := j; i < 3; i++ {
				cov.SetSym(j, i, cov.At(j, i)+r[i]*r[j])
			}
		}
	}

	normal, ok := smallestEigenvector(cov)
	if !ok {
		slog.Error("mesh.FitPlane: eigen decomposition failed", "points", len(points))
		normal = prev
	}
	ref := windingNormal(points)
	if ref == (math32.Vector3{}) {
		ref = prev
	}
	if normal.Dot(ref) < 0 {
		normal = normal.MulScalar(-1)
	}
	return PlaneFromNormalAndPoint(normal, center)
}

// smallestEigenvector returns the unit eigenvector of the symmetric
// matrix a with the smallest eigenvalue.
func smallestEigenvector(a *mat.SymDense) (math32.Vector3, bool) {
	var eig mat.EigenSym
	if !eig.Factorize(a, true) {
		return math32.Vector3{}, false
	}
	vals := eig.Values(nil)
	pick := 0
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[pick] {
			pick = i
		}
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	v := math32.Vec3(float32(vecs.At(0, pick)), float32(vecs.At(1, pick)), float32(vecs.At(2, pick)))
	return v.Normal(), true
}

// windingNormal returns the Newell normal of the polygon through the
// points: its length is twice the area of the polygon projected on the
// plane, and it points to the side from which the points run
// counter-clockwise.
func windingNormal(points []math32.Vector3) math32.Vector3 {
	var n math32.Vector3
	for i, a := range points {
		b := points[(i+1)%len(points)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n
}
