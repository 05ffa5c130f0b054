/*
 * errors.go, part of bfactor.
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

import "fmt"

// Decorator is implemented by all errors in this package. The Decorate method allows to add
// and retrieve the trail of calling functions without changing the error's type.
type Decorator interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it just returns the current trail.
}

// Kind tells what went wrong.
type Kind int

const (
	IOError     Kind = iota //missing, unreadable or unwritable file
	ParseError              //malformed value table line
	FormatError             //malformed or short PDB record
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case FormatError:
		return "format error"
	default:
		return "I/O error"
	}
}

// Error is the error type returned by the functions of this package. It fulfills Decorator.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based, 0 if it doesn't apply
	kind     Kind
	deco     []string
	cause    error
}

func (err Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("%s in %s, line %d: %s", err.kind, err.filename, err.line, err.message)
	}
	if err.filename != "" {
		return fmt.Sprintf("%s in %s: %s", err.kind, err.filename, err.message)
	}
	return fmt.Sprintf("%s: %s", err.kind, err.message)
}

// Decorate adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Unwrap returns the underlying error, if any.
func (err Error) Unwrap() error { return err.cause }

// FileName returns the file associated with the error.
func (err Error) FileName() string { return err.filename }

// Line returns the offending line number, or 0.
func (err Error) Line() int { return err.line }

// Kind returns the kind of the error.
func (err Error) Kind() Kind { return err.kind }

const (
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	ReadFailed     = "Error reading file"
	WriteFailed    = "Error writing file"
	WrongFields    = "Expected 3 fields: chain, residue number and b-factor"
	BadChain       = "Chain identifier must be a single character"
	BadSeqID       = "Residue number is not an integer"
	BadBfactor     = "B-factor is not a number"
	ShortRecord    = "Record too short"
	Overflow       = "Value does not fit in the b-factor column"
	SameInOut      = "Output file is the input file"
)

func newError(kind Kind, message, filename string, line int, cause error, caller string) *Error {
	return &Error{message: message, filename: filename, line: line, kind: kind, deco: []string{caller}, cause: cause}
}

// errDecorate decorates err with the caller's name if it is a Decorator,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Decorator); ok {
		err2.Decorate(caller)
	}
	return err
}
