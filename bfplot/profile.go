/*
 * profile.go, part of bfactor
 *
 * Copyright 2026 the goChem developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

// Package bfplot plots per-residue b-factor profiles.
package bfplot

import (
	"fmt"
	"math"

	"github.com/rmera/bfactor"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Width and Height of the plots produced.
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicProfilePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "B-factor"
	p.Add(plotter.NewGrid())
	return p
}

// chainXYs splits the table in one set of points per chain, in
// the order of t.Keys(). NaN and infinite values can't be drawn, so
// they are left out, and so is any chain left with no points.
func chainXYs(t bfactor.Table) ([]byte, map[byte]plotter.XYs) {
	chains := make([]byte, 0, 2)
	data := make(map[byte]plotter.XYs)
	for _, k := range t.Keys() {
		v, _ := t.Get(k.Chain, k.SeqID)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if _, ok := data[k.Chain]; !ok {
			chains = append(chains, k.Chain)
		}
		data[k.Chain] = append(data[k.Chain], plotter.XY{X: float64(k.SeqID), Y: v})
	}
	return chains, data
}

// Profile plots the values in t against the residue number, one line
// per chain, and saves the plot in filename. The format is taken from
// the file's extension (png, svg, pdf, eps, jpg, tif).
func Profile(t bfactor.Table, title, filename string) error {
	if t.Len() == 0 {
		return fmt.Errorf("bfplot.Profile: empty table, nothing to plot")
	}
	p := basicProfilePlot(title)
	chains, data := chainXYs(t)
	if len(chains) == 0 {
		return fmt.Errorf("bfplot.Profile: no finite values to plot")
	}
	for i, c := range chains {
		l, s, err := plotter.NewLinePoints(data[c])
		if err != nil {
			return fmt.Errorf("bfplot.Profile: chain %c: %w", c, err)
		}
		l.Color = plotutil.Color(i)
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(l, s)
		p.Legend.Add(fmt.Sprintf("chain %c", c), l, s)
	}
	if err := p.Save(Width, Height, filename); err != nil {
		return fmt.Errorf("bfplot.Profile: %w", err)
	}
	return nil
}
