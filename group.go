package p384

// Point is a P-384 point in Jacobian projective coordinates,
// representing the affine point (X/Z^2, Y/Z^3), or the point at
// infinity when Z is zero. This layer treats the coordinates as opaque
// triples; it does not check that they satisfy the curve equation.
type Point struct {
	X, Y, Z Elem
}

// SelectW5 sets r to table[index-1] for a secret index in 1..16, or to
// the all-zero triple (the identity encoding) for index 0. All sixteen
// entries are read and combined through masks on every call, so
// neither control flow nor the memory access pattern depends on index.
//
// The 16-entry table layout and the 1-based index convention are
// shared with the width-5 windowed scalar multiplication that builds
// the tables.
func (r *Point) SelectW5(table *[16]Point, index uint64) {
	var x, y, z [numLimbs]uint64
	for i := range table {
		mask := eqMask(index, uint64(i)+1)
		for j := 0; j < numLimbs; j++ {
			x[j] |= table[i].X.limbs[j] & mask
			y[j] |= table[i].Y.limbs[j] & mask
			z[j] |= table[i].Z.limbs[j] & mask
		}
	}
	r.X.limbs, r.Y.limbs, r.Z.limbs = x, y, z
}
