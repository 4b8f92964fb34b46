package raster

import "testing"

func TestNewRejectsTooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for 1x5 raster")
		}
	}()
	New(1, 5)
}

func TestAccessorsOutOfBoundsPanics(t *testing.T) {
	r := New(3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds access")
		}
	}()
	r.Elev(3, 0)
}

func TestDirOffsetRoundTrip(t *testing.T) {
	for _, d := range Neighbors {
		dx, dy := d.Offset()
		got := DirTo(5, 5, 5+dx, 5+dy)
		if got != d {
			t.Errorf("DirTo(offset of %v) = %v, want %v", d, got, d)
		}
	}
}

func TestDirToPanicsOnNonNeighbor(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-neighbor cells")
		}
	}()
	DirTo(0, 0, 5, 5)
}

func TestIsBoundary(t *testing.T) {
	r := New(4, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 0, true},
		{0, 2, true},
		{3, 2, true},
		{1, 0, true},
		{0, 1, true},
		{1, 1, false},
		{2, 1, false},
	}
	for _, c := range cases {
		if got := r.IsBoundary(c.x, c.y); got != c.want {
			t.Errorf("IsBoundary(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestResetClearsSolverState(t *testing.T) {
	r := New(3, 3)
	r.SetDir(1, 1, DirNW)
	r.AddAcc(1, 1, 4)
	r.MarkQueued(1, 1)
	r.MarkVisited(1, 1)
	r.AppendSeq(1, 1)

	r.Reset()

	if r.Dir(1, 1) != DirNone {
		t.Errorf("Dir after Reset = %v, want DirNone", r.Dir(1, 1))
	}
	if r.Acc(1, 1) != 0 {
		t.Errorf("Acc after Reset = %d, want 0", r.Acc(1, 1))
	}
	if r.IsQueued(1, 1) || r.IsVisited(1, 1) {
		t.Error("queued/visited flags survived Reset")
	}
	if len(r.Seq()) != 0 {
		t.Errorf("Seq after Reset has %d entries, want 0", len(r.Seq()))
	}
	if r.Elev(1, 1) != 0 {
		t.Error("Reset must not touch elevation")
	}
}

func TestResetAccLeavesDirAndSeqIntact(t *testing.T) {
	r := New(3, 3)
	r.SetDir(1, 1, DirS)
	r.AddAcc(1, 1, 7)
	r.AppendSeq(1, 1)

	r.ResetAcc()

	if r.Acc(1, 1) != 0 {
		t.Errorf("Acc after ResetAcc = %d, want 0", r.Acc(1, 1))
	}
	if r.Dir(1, 1) != DirS {
		t.Error("ResetAcc must not touch dir")
	}
	if len(r.Seq()) != 1 {
		t.Error("ResetAcc must not touch the processing sequence")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := New(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r.SetElev(x, y, x+y*3)
			r.SetDir(x, y, DirE)
			r.SetAcc(x, y, uint32(x*y))
		}
	}

	s := r.Snapshot()
	r2 := FromSnapshot(s)

	w, h := r2.Dims()
	if w != 3 || h != 2 {
		t.Fatalf("FromSnapshot dims = %dx%d, want 3x2", w, h)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if r2.Elev(x, y) != r.Elev(x, y) || r2.Dir(x, y) != r.Dir(x, y) || r2.Acc(x, y) != r.Acc(x, y) {
				t.Fatalf("cell (%d,%d) mismatch after round trip", x, y)
			}
		}
	}

	s.Elev[0] = 999
	if r.Elev(0, 0) == 999 {
		t.Error("Snapshot must copy layers, not alias them")
	}
}

func TestUnitContributingArea(t *testing.T) {
	r := New(3, 3)
	r.SetAcc(1, 1, 3)
	if got, want := r.UnitContributingArea(1, 1, 25), 100.0; got != want {
		t.Errorf("UnitContributingArea = %v, want %v", got, want)
	}
}
