/*
 * compress.go, part of bfactor.
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
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is the compression scheme used for a file, decided from its name.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

// CompressionFor returns the compression implied by the suffix of name:
// .gz is gzip, .zst and .zstd are z-standard, anything else is plain text.
func CompressionFor(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	}
	return Plain
}

// *zstd.Decoder's Close doesn't return an error, so it is not an io.ReadCloser.
type zstdRC struct {
	*zstd.Decoder
}

func (z zstdRC) Close() error {
	z.Decoder.Close()
	return nil
}

// fileRC closes both the decompressor and the underlying file.
type fileRC struct {
	io.Reader
	closers []io.Closer
}

func (f fileRC) Close() error {
	var err error
	for _, c := range f.closers {
		if e := c.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// OpenReader opens the file name for reading, decompressing it if its
// suffix says so. The caller must close the returned reader.
func OpenReader(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newError(IOError, UnableToOpen, name, 0, err, "OpenReader")
	}
	intermediate := bufio.NewReader(f)
	var dec io.ReadCloser
	switch CompressionFor(name) {
	case Gzip:
		dec, err = gzip.NewReader(intermediate)
	case Zstd:
		var d *zstd.Decoder
		d, err = zstd.NewReader(intermediate)
		if err == nil {
			dec = zstdRC{d}
		}
	default:
		return fileRC{intermediate, []io.Closer{f}}, nil
	}
	if err != nil {
		f.Close()
		return nil, newError(IOError, ReadFailed, name, 0, err, "OpenReader")
	}
	return fileRC{dec, []io.Closer{dec, f}}, nil
}

// nopWC is a plain-text "compressor".
type nopWC struct {
	io.Writer
}

func (nopWC) Close() error { return nil }

// CreateWriter wraps w in the compressor implied by name. Closing the returned
// writer flushes the compressor but doesn't close w.
func CreateWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch CompressionFor(name) {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		e, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, newError(IOError, UnableToCreate, name, 0, err, "CreateWriter")
		}
		return e, nil
	}
	return nopWC{w}, nil
}
