// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selection

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
)

// Params are the snapping tolerances shared by hit testing and dragging,
// in model units.
type Params struct {

	// VertexDist is the distance under which a point hits a vertex.
	// Drags also use it as the radius of the snap back to the start
	// position, and as the reach of the other pointer's guide.
	VertexDist float32 `default:"0.05"`

	// EdgeDist is the distance under which a point hits an edge, and under
	// which a drag snaps onto the direction of an edge.
	EdgeDist float32 `default:"0.044"`

	// FaceDist is the distance under which a point hits a face, and under
	// which a drag snaps into the plane of a face.
	FaceDist float32 `default:"0.04"`

	// Hysteresis is the factor applied to the acceptance radius after each
	// accepted candidate of a scan, so that a later candidate must be
	// clearly closer to replace it.
	Hysteresis float32 `default:"0.99"`

	// LengthStep is the increment to which the length of an edge is
	// rounded when it is clamped by a guide vertex at its far end.
	LengthStep float32 `default:"0.05"`
}

// Defaults sets the default values from the struct tags.
func (p *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(p))
}

// DefaultParams returns new [Params] with the default values.
func DefaultParams() *Params {
	p := &Params{}
	p.Defaults()
	return p
}

// OpenParams returns the default [Params] overridden by the given
// TOML files, in order.
func OpenParams(files ...string) (*Params, error) {
	p := DefaultParams()
	if len(files) == 0 {
		return p, nil
	}
	return p, tomlx.OpenFiles(p, files...)
}
