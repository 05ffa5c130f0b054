/*
 * report.go, part of bfactor.
 *
 * Copyright 2026 the goChem developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package bfactor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes what a Rewriter did to a file.
type Report struct {
	Lines     int
	Atoms     int //ATOM records
	Hetatms   int
	Matched   int   //ATOM records that got a value from the table
	Defaulted int   //ATOM records that got the default value
	Unused    []Key //table entries no ATOM record asked for
	Values    []float64
}

// Stats holds summary statistics of the values written.
type Stats struct {
	N                   int
	Min, Max, Mean, Std float64
}

// Stats returns the statistics for all the values written to the
// b-factor column, default ones included.
func (r *Report) Stats() (Stats, error) {
	if r == nil || len(r.Values) == 0 {
		return Stats{}, fmt.Errorf("no b-factors were written")
	}
	var s Stats
	s.N = len(r.Values)
	s.Min = floats.Min(r.Values)
	s.Max = floats.Max(r.Values)
	if s.N > 1 {
		s.Mean, s.Std = stat.MeanStdDev(r.Values, nil)
	} else {
		s.Mean = r.Values[0]
	}
	return s, nil
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d lines, %d ATOM records (%d from table, %d default), %d HETATM records", r.Lines, r.Atoms, r.Matched, r.Defaulted, r.Hetatms)
	if s, err := r.Stats(); err == nil {
		fmt.Fprintf(&b, "\nb-factors: min %.2f max %.2f mean %.2f std %.2f", s.Min, s.Max, s.Mean, s.Std)
	}
	if len(r.Unused) > 0 {
		u := make([]string, 0, len(r.Unused))
		for _, k := range r.Unused {
			u = append(u, fmt.Sprintf("%c%d", k.Chain, k.SeqID))
		}
		fmt.Fprintf(&b, "\n%d table entries not found in the structure: %s", len(u), strings.Join(u, " "))
	}
	return b.String()
}
