package p384

import "testing"

// markerTable builds 16 points with distinct recognizable limb
// patterns so a wrong selection cannot collide with the right one.
func markerTable() [16]Point {
	var table [16]Point
	for i := range table {
		for j := 0; j < numLimbs; j++ {
			table[i].X.limbs[j] = uint64(i+1)<<8 | uint64(j)
			table[i].Y.limbs[j] = uint64(i+1)<<16 | uint64(j)
			table[i].Z.limbs[j] = uint64(i+1)<<24 | uint64(j)
		}
	}
	return table
}

func TestSelectW5(t *testing.T) {
	table := markerTable()

	for index := uint64(1); index <= 16; index++ {
		var p Point
		p.SelectW5(&table, index)
		want := table[index-1]
		if !p.X.Equal(&want.X) || !p.Y.Equal(&want.Y) || !p.Z.Equal(&want.Z) {
			t.Errorf("SelectW5(%d) did not return table entry %d", index, index-1)
		}
	}
}

func TestSelectW5Identity(t *testing.T) {
	table := markerTable()

	// Index 0 means "no selection": the all-zero triple, which encodes
	// the point at infinity.
	p := Point{X: table[0].X, Y: table[0].Y, Z: table[0].Z}
	p.SelectW5(&table, 0)
	if !p.X.IsZero() || !p.Y.IsZero() || !p.Z.IsZero() {
		t.Error("SelectW5(0) should produce the all-zero point")
	}

	// An out-of-range index matches no entry either.
	p.SelectW5(&table, 17)
	if !p.X.IsZero() || !p.Y.IsZero() || !p.Z.IsZero() {
		t.Error("SelectW5(17) should produce the all-zero point")
	}
}

func TestSelectW5Overwrites(t *testing.T) {
	table := markerTable()

	// The receiver's previous contents must not bleed into the result.
	var p Point
	for j := 0; j < numLimbs; j++ {
		p.X.limbs[j] = ^uint64(0)
		p.Y.limbs[j] = ^uint64(0)
		p.Z.limbs[j] = ^uint64(0)
	}
	p.SelectW5(&table, 7)
	want := table[6]
	if !p.X.Equal(&want.X) || !p.Y.Equal(&want.Y) || !p.Z.Equal(&want.Z) {
		t.Error("SelectW5 must fully overwrite the receiver")
	}
}
