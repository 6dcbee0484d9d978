// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

// Renderer is the display side of the editor. Gestures tell it which
// faces changed shape and which elements to highlight; it never calls
// back into the editor.
type Renderer interface {

	// Enter starts highlighting sel in color c.
	Enter(sel *selection.Selection, c color.RGBA)

	// Follow moves the highlight of sel to the current geometry of sel.
	Follow(sel *selection.Selection)

	// Leave stops highlighting sel.
	Leave(sel *selection.Selection)

	// UpdateFace rebuilds the displayed geometry of f after its vertices
	// or its plane changed.
	UpdateFace(f *mesh.Face)
}

var (
	// MoveColor highlights the elements involved in a move.
	MoveColor = color.RGBA{255, 96, 255, 255}

	// ExtrudeColor highlights the elements involved in an extrusion.
	ExtrudeColor = color.RGBA{96, 255, 96, 255}

	// HoverColor highlights the element under an idle pointer.
	HoverColor = colors.Yellow
)

// Darker returns c darkened, as used for the elements that hold a
// dragged element at its start position.
func Darker(c color.RGBA) color.RGBA {
	return colors.BlendRGB(70, c, colors.Black)
}
