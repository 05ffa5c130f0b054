/*
 * record.go, part of bfactor.
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
	"strconv"
	"strings"
)

// 0-based column limits in a PDB ATOM/HETATM record.
const (
	chainCol    = 21
	seqStart    = 22
	seqEnd      = 26
	bfacStart   = 60
	bfacEnd     = 66
	bfacWidth   = bfacEnd - bfacStart
	minAtomLine = bfacStart //we need at least the occupancy to be there.
)

// Line is a line of a PDB file. It is either an *AtomLine or an OtherLine.
type Line interface {
	// Text returns the line, including its terminator, if any.
	Text() string
}

// OtherLine is any line that is not an ATOM or HETATM record. It is
// written back as is.
type OtherLine string

func (o OtherLine) Text() string { return string(o) }

// AtomLine is an ATOM or HETATM record.
type AtomLine struct {
	Het   bool
	Chain byte
	SeqID int
	//NoSeq is true when the residue number columns don't hold an integer
	//(blank, hybrid-36...). SeqID is then 0. Always false for HETATM
	//records, whose residue number is never read.
	NoSeq bool
	body  string //the record without the terminator
	term  string //"\n", "\r\n" or ""
}

func (a *AtomLine) Text() string { return a.body + a.term }

// Key returns the residue the atom belongs to.
func (a *AtomLine) Key() Key { return Key{a.Chain, a.SeqID} }

// recordName returns the record type, i.e. the first 6 columns, trimmed.
func recordName(line string) string {
	if len(line) > 6 {
		line = line[:6]
	}
	return strings.TrimSpace(line)
}

// splitTerminator separates the line ending (if any) from the line.
func splitTerminator(line string) (string, string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}

// ParseLine classifies a line of a PDB file, which may include its terminator.
// The only error is a FormatError, with no file or line information, for
// ATOM/HETATM records too short to hold the occupancy.
func ParseLine(line string) (Line, error) {
	body, term := splitTerminator(line)
	name := recordName(body)
	if name != "ATOM" && name != "HETATM" {
		return OtherLine(line), nil
	}
	if len(body) < minAtomLine {
		return nil, newError(FormatError, fmt.Sprintf("%s: %s record has %d columns, at least %d needed", ShortRecord, name, len(body), minAtomLine), "", 0, nil, "ParseLine")
	}
	a := &AtomLine{
		Het:   name == "HETATM",
		Chain: body[chainCol],
		body:  body,
		term:  term,
	}
	if a.Het {
		return a, nil
	}
	seq, err := strconv.Atoi(strings.TrimSpace(body[seqStart:seqEnd]))
	if err != nil {
		a.NoSeq = true
		return a, nil
	}
	a.SeqID = seq
	return a, nil
}

// FormatBfactor returns v formatted for the b-factor column: 2 decimals,
// right-justified in 6 characters. It fails if v doesn't fit.
func FormatBfactor(v float64) (string, error) {
	s := fmt.Sprintf("%6.2f", v)
	if len(s) > bfacWidth {
		return "", newError(FormatError, fmt.Sprintf("%s: %s", Overflow, strings.TrimSpace(s)), "", 0, nil, "FormatBfactor")
	}
	return s, nil
}

// WithBfactor returns the record, with its terminator, with v in the b-factor
// column. Every other column is left untouched. Records shorter than the
// b-factor column are padded with spaces.
func (a *AtomLine) WithBfactor(v float64) (string, error) {
	field, err := FormatBfactor(v)
	if err != nil {
		return "", errDecorate(err, "WithBfactor")
	}
	body := a.body
	if len(body) < bfacEnd {
		body += strings.Repeat(" ", bfacEnd-len(body))
	}
	return body[:bfacStart] + field + body[bfacEnd:] + a.term, nil
}
