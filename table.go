/*
 * table.go, part of bfactor.
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
	"bufio"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
)

// Key identifies a residue by its chain and residue (sequence) number.
type Key struct {
	Chain byte
	SeqID int
}

// Table maps residues to the b-factor values to be inserted for them.
// The zero value is not usable, use NewTable.
type Table struct {
	m map[Key]float64
}

// NewTable returns an empty table.
func NewTable() Table {
	return Table{m: make(map[Key]float64)}
}

// Get returns the value for the residue seq of chain, and whether there was one.
func (t Table) Get(chain byte, seq int) (float64, bool) {
	v, ok := t.m[Key{chain, seq}]
	return v, ok
}

// Set sets the value for the given residue. It returns true if
// a previous value was replaced.
func (t Table) Set(chain byte, seq int, v float64) bool {
	_, replaced := t.m[Key{chain, seq}]
	t.m[Key{chain, seq}] = v
	return replaced
}

func (t Table) Len() int {
	return len(t.m)
}

// Keys returns all the keys in the table, sorted by chain and then by residue number.
func (t Table) Keys() []Key {
	keys := make([]Key, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Chain != keys[j].Chain {
			return keys[i].Chain < keys[j].Chain
		}
		return keys[i].SeqID < keys[j].SeqID
	})
	return keys
}

// ReadTable reads the b-factor file name, which can be gzip or zstd compressed.
// See ParseTable for the format.
func ReadTable(name string) (Table, error) {
	f, err := OpenReader(name)
	if err != nil {
		return Table{}, errDecorate(err, "ReadTable")
	}
	defer f.Close()
	t, err := ParseTable(f, name)
	if err != nil {
		return Table{}, errDecorate(err, "ReadTable")
	}
	return t, nil
}

// ParseTable reads a table from r. Each non-blank line must contain
// the chain identifier (one character), the residue number and the b-factor,
// separated by white space. name is only used for error messages.
// If a residue appears more than once, the last value is kept.
func ParseTable(r io.Reader, name string) (Table, error) {
	t := NewTable()
	s := bufio.NewScanner(r)
	contlines := 0
	for s.Scan() {
		contlines++ //count all the lines even if empty.
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return Table{}, newError(ParseError, WrongFields, name, contlines, nil, "ParseTable")
		}
		if len(fields[0]) != 1 {
			return Table{}, newError(ParseError, BadChain+": '"+fields[0]+"'", name, contlines, nil, "ParseTable")
		}
		seq, err := strconv.Atoi(fields[1])
		if err != nil {
			return Table{}, newError(ParseError, BadSeqID+": '"+fields[1]+"'", name, contlines, err, "ParseTable")
		}
		bfac, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Table{}, newError(ParseError, BadBfactor+": '"+fields[2]+"'", name, contlines, err, "ParseTable")
		}
		if t.Set(fields[0][0], seq, bfac) {
			log.Printf("%s, line %d: residue %s %d given more than once, will use %.2f", name, contlines, fields[0], seq, bfac)
		}
	}
	if err := s.Err(); err != nil {
		return Table{}, newError(IOError, ReadFailed, name, contlines+1, err, "ParseTable")
	}
	return t, nil
}
