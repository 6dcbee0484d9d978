// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sketch replays a recorded trace of pointer events on a model
// without a display, logging the highlights and the final vertex
// positions.
package main

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/vrsketch/sketch/drag"
	"github.com/vrsketch/sketch/mesh"
	"github.com/vrsketch/sketch/selection"
)

// Config is the configuration information for the sketch cli.
type Config struct {

	// Trace is the TOML trace file to replay.
	Trace string `posarg:"0"`

	// Params are TOML files overriding the default snapping tolerances,
	// applied in order.
	Params []string `flag:"p,params"`

	// VeryVerbose also logs face updates, highlight moves and gestures.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Verbose logs highlights and presses.
	Verbose bool `flag:"v,verbose"`

	// Quiet only logs errors.
	Quiet bool `flag:"q,quiet"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("sketch", "Replays a trace of pointer events on a model and prints the result.")
	cli.Run(opts, &Config{}, Replay)
}

// Replay replays the trace file and prints the final vertex positions.
func Replay(c *Config) error { //cli:cmd -root
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel}))
	slog.SetDefault(log)

	params, err := selection.OpenParams(c.Params...)
	if err != nil {
		return errors.Log(err)
	}
	tr := &Trace{}
	if err := tomlx.Open(tr, c.Trace); err != nil {
		return errors.Log(err)
	}
	m, err := replay(tr, params, &logRenderer{log: log})
	if err != nil {
		return err
	}
	for i, v := range m.Vertices() {
		fmt.Printf("%d\t%g\t%g\t%g\n", i, v.Pos.X, v.Pos.Y, v.Pos.Z)
	}
	return nil
}

// replay builds the model of tr and replays its events on it.
func replay(tr *Trace, params *selection.Params, r drag.Renderer) (*mesh.Model, error) {
	m, err := tr.Model()
	if err != nil {
		return nil, err
	}
	ed := drag.NewEditor(m, params, r)
	if err := tr.Replay(ed); err != nil {
		return nil, err
	}
	for i := range ed.Pointers {
		ed.Release(i)
	}
	return m, nil
}
