package bfactor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleRewriter(Te *testing.T) *Rewriter {
	t, err := ReadTable("test/sample.bfac")
	if err != nil {
		Te.Fatal(err)
	}
	return NewRewriter(t, 1.0)
}

func TestRewrite(Te *testing.T) {
	R := sampleRewriter(Te)
	in, err := os.ReadFile("test/sample.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	var out bytes.Buffer
	rep, err := R.Rewrite(bytes.NewReader(in), &out, "test/sample.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	inl := strings.SplitAfter(string(in), "\n")
	outl := strings.SplitAfter(out.String(), "\n")
	if len(inl) != len(outl) {
		Te.Fatalf("line count changed from %d to %d", len(inl), len(outl))
	}
	for i := range inl {
		rec := recordName(inl[i])
		if rec != "ATOM" && rec != "HETATM" {
			if inl[i] != outl[i] {
				Te.Errorf("line %d changed: %q -> %q", i+1, inl[i], outl[i])
			}
			continue
		}
		if inl[i][:60] != outl[i][:60] || inl[i][66:] != outl[i][66:] {
			Te.Errorf("line %d: columns other than the b-factor changed: %q -> %q", i+1, inl[i], outl[i])
		}
		l, _ := ParseLine(inl[i])
		a := l.(*AtomLine)
		want := "  1.00"
		if v, ok := R.Table.Get(a.Chain, a.SeqID); ok && !a.Het {
			want, _ = FormatBfactor(v)
		}
		if got := outl[i][60:66]; got != want {
			Te.Errorf("line %d: expected b-factor %q, got %q", i+1, want, got)
		}
	}
	if rep.Lines != 11 || rep.Atoms != 6 || rep.Hetatms != 1 || rep.Matched != 6 || rep.Defaulted != 0 {
		Te.Errorf("wrong report %+v", rep)
	}
	if len(rep.Unused) != 1 || rep.Unused[0] != (Key{'C', 1}) {
		Te.Errorf("expected C1 to be unused, got %v", rep.Unused)
	}
}

// The example from the documentation: the same residue gets the table
// value in an ATOM record and the default in a HETATM record.
func TestRewriteHetatm(Te *testing.T) {
	t := NewTable()
	t.Set('A', 10, 0.10)
	R := NewRewriter(t, 1.0)
	het := "HETATM" + atomLine[6:]
	var out bytes.Buffer
	rep, err := R.Rewrite(strings.NewReader(atomLine+"\n"+het+"\nATOM      2  N   ALA A  12      11.104  13.207   2.100  1.00  0.00           N"), &out, "mem")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if len(lines) != 3 {
		Te.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0][60:66] != "  0.10" || lines[1][60:66] != "  1.00" || lines[2][60:66] != "  1.00" {
		Te.Errorf("wrong b-factors:\n%s", out.String())
	}
	if rep.Matched != 1 || rep.Defaulted != 1 || rep.Hetatms != 1 {
		Te.Errorf("wrong report %+v", rep)
	}
}

func TestRewriteShortRecord(Te *testing.T) {
	R := NewRewriter(NewTable(), 0)
	var out bytes.Buffer
	_, err := R.Rewrite(strings.NewReader("HEADER\n"+atomLine+"\nATOM      2  N   ALA A  10\n"), &out, "short.pdb")
	var e *Error
	if !errors.As(err, &e) || e.Kind() != FormatError || e.Line() != 3 || e.FileName() != "short.pdb" {
		Te.Fatalf("expected a FormatError on line 3 of short.pdb, got %v", err)
	}
}

func TestRewriteFile(Te *testing.T) {
	R := sampleRewriter(Te)
	dir := Te.TempDir()
	plain := filepath.Join(dir, "out.pdb")
	if _, err := R.RewriteFile("test/sample.pdb", plain); err != nil {
		Te.Fatal(err)
	}
	want, _ := os.ReadFile(plain)
	for _, name := range []string{"out.pdb.gz", "out.pdb.zst"} {
		name = filepath.Join(dir, name)
		if _, err := R.RewriteFile("test/sample.pdb", name); err != nil {
			Te.Fatal(err)
		}
		// Reading the compressed file back should give the same as the plain one,
		// and rewriting it again should be idempotent.
		r, err := OpenReader(name)
		if err != nil {
			Te.Fatal(err)
		}
		var got bytes.Buffer
		if _, err := R.Rewrite(r, &got, name); err != nil {
			Te.Fatal(err)
		}
		r.Close()
		if !bytes.Equal(got.Bytes(), want) {
			Te.Errorf("%s: contents differ from plain output", name)
		}
	}
}

func TestRewriteFileNoPartialOutput(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "bad.pdb")
	if err := os.WriteFile(in, []byte(atomLine+"\nATOM      2  N   ALA A  10\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(dir, "out.pdb")
	if _, err := NewRewriter(NewTable(), 0).RewriteFile(in, out); err == nil {
		Te.Fatal("expected an error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 1 {
		Te.Errorf("only the input file should remain, found %d entries", len(entries))
	}
	if _, err := NewRewriter(NewTable(), 0).RewriteFile(filepath.Join(dir, "missing.pdb"), out); err == nil {
		Te.Error("expected an error for a missing input")
	}
}

func TestRewriteOddResidueNumbers(Te *testing.T) {
	t := NewTable()
	t.Set('A', 0, 9.0)
	t.Set('W', 0, 9.0)
	R := NewRewriter(t, 1.5)
	blank := atomLine[:22] + "    " + atomLine[26:]
	water := "HETATM" + atomLine[6:17] + "HOH WA000" + atomLine[26:]
	var out bytes.Buffer
	rep, err := R.Rewrite(strings.NewReader(blank+"\n"+water+"\n"), &out, "odd.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if lines[0] != blank[:60]+"  1.50"+blank[66:] || lines[1] != water[:60]+"  1.50"+water[66:] {
		Te.Errorf("expected the default for both records:\n%s", out.String())
	}
	if rep.Atoms != 1 || rep.Defaulted != 1 || rep.Matched != 0 || rep.Hetatms != 1 {
		Te.Errorf("wrong report %+v", rep)
	}
}

func TestRewriteFileSameFile(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "in.pdb")
	orig := []byte(atomLine + "\n")
	if err := os.WriteFile(in, orig, 0644); err != nil {
		Te.Fatal(err)
	}
	R := NewRewriter(NewTable(), 5)
	for _, out := range []string{in, filepath.Join(dir, ".", "in.pdb")} {
		_, err := R.RewriteFile(in, out)
		var e *Error
		if !errors.As(err, &e) || e.Kind() != IOError {
			Te.Errorf("%s: expected an IOError, got %v", out, err)
		}
	}
	link := filepath.Join(dir, "link.pdb")
	if err := os.Symlink(in, link); err == nil {
		if _, err := R.RewriteFile(link, in); err == nil {
			Te.Error("expected an error when the input is a link to the output")
		}
	}
	if b, _ := os.ReadFile(in); !bytes.Equal(b, orig) {
		Te.Errorf("input was modified: %q", b)
	}
}
