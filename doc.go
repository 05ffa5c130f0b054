/*
 * doc.go, part of bfactor.
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

/*
Package bfactor inserts per-residue values in the b-factor column of PDB files.

The values are read from a plain text file with one residue per line:

	A 10 0.10
	A 11 -2.5
	B  5 33.3

that is, the chain identifier, the residue number and the value, separated by
white space. A Rewriter then copies a PDB file, replacing columns 61-66 of every
ATOM record with the value for its residue, or with a default value if the residue
is not in the table. HETATM records always get the default value. Nothing else
in the file is touched.

Files whose names end in .gz or .zst are transparently decompressed when read,
and compressed when written.

Errors returned by the package are of type *Error, which tells the kind of
failure (IOError, ParseError, FormatError), the file and, if it applies, the line.
*/
package bfactor
