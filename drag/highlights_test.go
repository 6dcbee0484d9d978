// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drag

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

type event struct {
	op    string
	sel   *selection.Selection
	color color.RGBA
}

// recorder is a [Renderer] that records what it is told.
type recorder struct {
	events  []event
	updates map[*mesh.Face]int
}

func newRecorder() *recorder {
	return &recorder{updates: map[*mesh.Face]int{}}
}

func (r *recorder) Enter(sel *selection.Selection, c color.RGBA) {
	r.events = append(r.events, event{"enter", sel, c})
}

func (r *recorder) Follow(sel *selection.Selection) {
	r.events = append(r.events, event{op: "follow", sel: sel})
}

func (r *recorder) Leave(sel *selection.Selection) {
	r.events = append(r.events, event{op: "leave", sel: sel})
}

func (r *recorder) UpdateFace(f *mesh.Face) {
	r.updates[f]++
}

func (r *recorder) ops() []string {
	ops := make([]string, len(r.events))
	for i, e := range r.events {
		ops[i] = e.op
	}
	return ops
}

// entered returns the selections entered, in order.
func (r *recorder) entered() []*selection.Selection {
	var sels []*selection.Selection
	for _, e := range r.events {
		if e.op == "enter" {
			sels = append(sels, e.sel)
		}
	}
	return sels
}

func (r *recorder) reset() {
	r.events = nil
}

func TestHighlightsDiff(t *testing.T) {
	m, vs := square()
	f := m.Faces[0]
	r := newRecorder()
	h := &Highlights{Renderer: r}

	a, b, c := selection.NewVertex(vs[0]), selection.NewVertex(vs[1]), selection.NewEdge(f, 0)
	h.Add(a, MoveColor)
	h.Add(b, MoveColor)
	h.Add(c, MoveColor)
	h.Finish()
	assert.Equal(t, []string{"enter", "enter", "enter", "follow", "follow", "follow"}, r.ops())
	assert.Len(t, h.Active(), 3)

	r.reset()
	c2, d := selection.NewEdge(f, 0), selection.NewFace(f)
	h.Add(selection.NewVertex(vs[0]), MoveColor)
	h.Add(c2, Darker(MoveColor))
	h.Add(d, MoveColor)
	h.Finish()
	assert.Equal(t, []string{"leave", "leave", "enter", "enter", "follow", "follow", "follow"}, r.ops())
	want := []*selection.Selection{c, b, c2, d, a, c2, d}
	for i, e := range r.events {
		assert.Same(t, want[i], e.sel, "event %d", i)
	}
	assert.Equal(t, Darker(MoveColor), r.events[2].color)

	r.reset()
	h.Add(selection.NewVertex(vs[0]), MoveColor)
	h.Add(selection.NewEdge(f, 0), Darker(MoveColor))
	h.Add(selection.NewFace(f), MoveColor)
	h.Finish()
	assert.Equal(t, []string{"follow", "follow", "follow"}, r.ops())

	r.reset()
	h.Clear()
	assert.Equal(t, []string{"leave", "leave", "leave"}, r.ops())
	assert.Same(t, d, r.events[0].sel)
	assert.Same(t, a, r.events[2].sel)
	assert.Empty(t, h.Active())
}

func TestHighlightsDummyFollows(t *testing.T) {
	r := newRecorder()
	h := &Highlights{Renderer: r}
	d1 := selection.NewDummyEdge(math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0))
	h.Add(d1, MoveColor)
	h.Finish()

	r.reset()
	h.Add(selection.NewDummyEdge(math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0)), MoveColor)
	h.Finish()
	require.Equal(t, []string{"follow"}, r.ops())
	assert.Same(t, d1, r.events[0].sel)
	assert.Equal(t, math32.Vec3(2, 0, 0), d1.Ends[1])
}

func TestHighlightsColorChange(t *testing.T) {
	m, vs := square()
	r := newRecorder()
	h := &Highlights{Renderer: r}
	h.Add(selection.NewVertex(vs[0]), MoveColor)
	h.Add(selection.NewFace(m.Faces[0]), MoveColor)
	h.Finish()

	r.reset()
	h.Add(selection.NewVertex(vs[0]), ExtrudeColor)
	h.Add(selection.NewFace(m.Faces[0]), MoveColor)
	h.Finish()
	assert.Equal(t, []string{"leave", "leave", "enter", "enter", "follow", "follow"}, r.ops())
}

func TestDarker(t *testing.T) {
	d := Darker(MoveColor)
	assert.Less(t, d.R, MoveColor.R)
	assert.Less(t, d.G, MoveColor.G)
	assert.Greater(t, d.R, uint8(150))
	assert.Equal(t, uint8(255), d.A)
}
