/*
 * rewrite.go, part of bfactor.
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
	"errors"
	"io"
	"os"
	"path/filepath"
)

// Rewriter inserts the values of a Table in the b-factor column of
// PDB files. ATOM records of residues not in the table, and all HETATM
// records, get Default.
type Rewriter struct {
	Table   Table
	Default float64
}

// NewRewriter returns a Rewriter for the table t and the default value def.
func NewRewriter(t Table, def float64) *Rewriter {
	return &Rewriter{Table: t, Default: def}
}

// value returns the b-factor for the record a, and whether it came from the table.
func (R *Rewriter) value(a *AtomLine) (float64, bool) {
	if a.Het || a.NoSeq {
		return R.Default, false
	}
	if v, ok := R.Table.Get(a.Chain, a.SeqID); ok {
		return v, true
	}
	return R.Default, false
}

// Rewrite reads a PDB file from r and writes it to w, with the b-factor
// column replaced in every ATOM and HETATM record. All other lines are copied
// unchanged. name is used only to report errors.
func (R *Rewriter) Rewrite(r io.Reader, w io.Writer, name string) (*Report, error) {
	rep := new(Report)
	used := make(map[Key]bool)
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	for {
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, newError(IOError, ReadFailed, name, rep.Lines+1, err, "Rewrite")
		}
		if len(line) == 0 {
			break
		}
		rep.Lines++
		if err2 := R.rewriteLine(line, out, rep, used); err2 != nil {
			return nil, lineError(err2, name, rep.Lines)
		}
		if err == io.EOF {
			break
		}
	}
	if err := out.Flush(); err != nil {
		return nil, newError(IOError, WriteFailed, name, 0, err, "Rewrite")
	}
	for _, k := range R.Table.Keys() {
		if !used[k] {
			rep.Unused = append(rep.Unused, k)
		}
	}
	return rep, nil
}

func (R *Rewriter) rewriteLine(line string, out *bufio.Writer, rep *Report, used map[Key]bool) error {
	l, err := ParseLine(line)
	if err != nil {
		return err
	}
	a, ok := l.(*AtomLine)
	if !ok {
		_, err = out.WriteString(l.Text())
		return err
	}
	v, matched := R.value(a)
	switch {
	case a.Het:
		rep.Hetatms++
	case matched:
		rep.Atoms++
		rep.Matched++
		used[a.Key()] = true
	default:
		rep.Atoms++
		rep.Defaulted++
	}
	s, err := a.WithBfactor(v)
	if err != nil {
		return err
	}
	rep.Values = append(rep.Values, v)
	_, err = out.WriteString(s)
	return err
}

// lineError adds the file name and line number to errors coming from
// a single line. Write errors become IOErrors.
func lineError(err error, name string, line int) error {
	var e *Error
	if !errors.As(err, &e) {
		return newError(IOError, WriteFailed, name, line, err, "Rewrite")
	}
	e.filename = name
	e.line = line
	e.Decorate("Rewrite")
	return e
}

// RewriteFile rewrites the PDB file in into out. Either file can be gzip
// or zstd compressed, as told by their suffixes. The output is first written
// to a temporary file in the same directory, which is renamed to out only
// if everything went well, so out is never left half-written.
// RewriteFile refuses to write over in.
func (R *Rewriter) RewriteFile(in, out string) (rep *Report, err error) {
	if sameFile(in, out) {
		return nil, newError(IOError, SameInOut, out, 0, nil, "RewriteFile")
	}
	src, err := OpenReader(in)
	if err != nil {
		return nil, errDecorate(err, "RewriteFile")
	}
	defer src.Close()
	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*")
	if err != nil {
		return nil, newError(IOError, UnableToCreate, out, 0, err, "RewriteFile")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	zw, err := CreateWriter(tmp, out)
	if err != nil {
		return nil, errDecorate(err, "RewriteFile")
	}
	rep, err = R.Rewrite(src, zw, in)
	if err != nil {
		return nil, errDecorate(err, "RewriteFile")
	}
	if err = zw.Close(); err != nil {
		return nil, newError(IOError, WriteFailed, out, 0, err, "RewriteFile")
	}
	if err = tmp.Chmod(0644); err != nil {
		return nil, newError(IOError, WriteFailed, out, 0, err, "RewriteFile")
	}
	if err = tmp.Close(); err != nil {
		return nil, newError(IOError, WriteFailed, out, 0, err, "RewriteFile")
	}
	if err = os.Rename(tmp.Name(), out); err != nil {
		return nil, newError(IOError, WriteFailed, out, 0, err, "RewriteFile")
	}
	return rep, nil
}

// sameFile returns true if a and b name the same file, either as the same
// cleaned path or, if both exist, as the same file on disk.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
