package rasterio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTextLoaderParsesWhitespaceAndCommaSeparated(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(fp, []byte("1,2,3\n4 5 6\n7\t8\t9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, geo, err := TextLoader{Path: fp}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if geo != nil {
		t.Error("plain-text loader must not produce a GeoRef")
	}
	w, h := r.Dims()
	if w != 3 || h != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", w, h)
	}
	if got := r.Elev(2, 2); got != 9 {
		t.Errorf("Elev(2,2) = %d, want 9", got)
	}
}

func TestTextLoaderSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(fp, []byte("1 2\n\n3 4\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, _, err := TextLoader{Path: fp}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w, h := r.Dims()
	if w != 2 || h != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", w, h)
	}
}

func TestTextLoaderRejectsRaggedRows(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(fp, []byte("1 2 3\n4 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := (TextLoader{Path: fp}).Load(); err == nil {
		t.Fatal("expected an error for a ragged grid")
	}
}

func TestTextLoaderRejectsTooFewRows(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(fp, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := (TextLoader{Path: fp}).Load(); err == nil {
		t.Fatal("expected an error for a single-row grid")
	}
}

func TestTextLoaderRejectsNonNumeric(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(fp, []byte("1 2\nx 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := (TextLoader{Path: fp}).Load(); err == nil {
		t.Fatal("expected an error for a non-numeric elevation value")
	}
}

func TestTextWriterRoundTripsThroughLoader(t *testing.T) {
	dir := t.TempDir()
	elevFP := filepath.Join(dir, "elev.txt")
	if err := os.WriteFile(elevFP, []byte("9 9 9\n9 1 9\n9 9 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, _, err := TextLoader{Path: elevFP}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r.SetDir(1, 1, 32)
	r.SetAcc(0, 0, 1)

	dirFP := filepath.Join(dir, "dir.txt")
	accFP := filepath.Join(dir, "acc.txt")
	if err := (TextWriter{DirPath: dirFP, AccPath: accFP}).Write(r, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	dirOut, _, err := TextLoader{Path: dirFP}.Load()
	if err != nil {
		t.Fatalf("reading back dir grid: %v", err)
	}
	if got := dirOut.Elev(1, 1); got != 32 {
		t.Errorf("written dir value = %d, want 32", got)
	}

	accOut, _, err := TextLoader{Path: accFP}.Load()
	if err != nil {
		t.Fatalf("reading back acc grid: %v", err)
	}
	if got := accOut.Elev(0, 0); got != 1 {
		t.Errorf("written acc value = %d, want 1", got)
	}
}
