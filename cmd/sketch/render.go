// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

// logRenderer is a [drag.Renderer] that logs what it would draw.
type logRenderer struct {
	log *slog.Logger
}

func (r *logRenderer) Enter(sel *selection.Selection, c color.RGBA) {
	r.log.Info("highlight", "selection", sel, "color", colors.AsHex(c))
}

func (r *logRenderer) Follow(sel *selection.Selection) {
	r.log.Debug("follow", "selection", sel)
}

func (r *logRenderer) Leave(sel *selection.Selection) {
	r.log.Info("unhighlight", "selection", sel)
}

func (r *logRenderer) UpdateFace(f *mesh.Face) {
	c := f.Centroid()
	r.log.Debug("face", "vertices", f.Len(), "centroid", []float32{c.X, c.Y, c.Z}, "normal", []float32{f.Plane.Normal.X, f.Plane.Normal.Y, f.Plane.Normal.Z})
}
