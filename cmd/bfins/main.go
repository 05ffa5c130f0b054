/*
 * main.go, part of bfactor.
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

// Command bfins writes a copy of a PDB file with per-residue values
// inserted in the b-factor column.
//
// Usage:
//
//	bfins -p in.pdb -b values.txt -o out.pdb -d 0.0
//
// The values file has one residue per line: chain, residue number and value.
// On any error bfins exits with a non-zero status and writes no output PDB.
// If the output PDB can't be written, a plot requested with --plot may
// already be there.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rmera/bfactor"
	"github.com/rmera/bfactor/bfplot"
)

type options struct {
	pdb, bfac, out, plot string
	def                  float64
	quiet                bool
}

// parseArgs parses args (without the program name). Both the short and long
// names of each flag are accepted.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	o := new(options)
	fs := flag.NewFlagSet("bfins", flag.ContinueOnError)
	fs.SetOutput(stderr)
	for _, n := range []string{"p", "pdb"} {
		fs.StringVar(&o.pdb, n, "", "PDB file to which the b-factors are added. It is not altered.")
	}
	for _, n := range []string{"b", "bfactor"} {
		fs.StringVar(&o.bfac, n, "", "File with the b-factors, one '<chain> <residue number> <b-factor>' per line.")
	}
	for _, n := range []string{"o", "output"} {
		fs.StringVar(&o.out, n, "", "Output PDB file.")
	}
	for _, n := range []string{"d", "default"} {
		fs.Float64Var(&o.def, n, 0, "Default b-factor for residues not in the b-factor file, and for HETATM records.")
	}
	for _, n := range []string{"q", "quiet"} {
		fs.BoolVar(&o.quiet, n, false, "Don't print the summary.")
	}
	fs.StringVar(&o.plot, "plot", "", "If given, plot the b-factor profile to this file (png, svg or pdf).")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bfins -p <pdb> -b <bfactors> -o <output> -d <default> [--plot <file>] [-q]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, req := range [][2]string{{"p", "pdb"}, {"b", "bfactor"}, {"o", "output"}, {"d", "default"}} {
		if !set[req[0]] && !set[req[1]] {
			fs.Usage()
			return nil, fmt.Errorf("flag -%s/--%s is required", req[0], req[1])
		}
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if _, err := bfactor.FormatBfactor(o.def); err != nil {
		return nil, fmt.Errorf("invalid default b-factor %g: %w", o.def, err)
	}
	return o, nil
}

func run(o *options) error {
	t, err := bfactor.ReadTable(o.bfac)
	if err != nil {
		return err
	}
	// plot before writing the PDB, so a failed plot leaves no output.
	if o.plot != "" {
		if err := bfplot.Profile(t, o.pdb, o.plot); err != nil {
			return err
		}
	}
	R := bfactor.NewRewriter(t, o.def)
	rep, err := R.RewriteFile(o.pdb, o.out)
	if err != nil {
		return err
	}
	if !o.quiet {
		log.Printf("Wrote %s\n%s", o.out, rep)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	o, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Printf("bfins: %s", err)
		os.Exit(2)
	}
	if err := run(o); err != nil {
		log.Fatalf("bfins: %s", err)
	}
}
