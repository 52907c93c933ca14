// Package p384 implements constant-time modular arithmetic over the
// field prime and group order of the NIST P-384 curve: reduced
// addition, subtraction and halving, Montgomery-domain multiplication
// and squaring, fixed-chain modular inversion in both moduli, and the
// constant-time table lookup used by windowed scalar multiplication.
//
// Field elements and scalars are six saturated uint64 limbs, least
// significant limb first. No operation branches or indexes memory on
// secret values; all comparisons, carries and selections are resolved
// with bit masks.
package p384

// Field and order constants for P-384 (FIPS 186-4 / SEC 2).
var (
	// q is the field prime, 2^384 - 2^128 - 2^96 + 2^32 - 1.
	q = [numLimbs]uint64{
		0x00000000ffffffff, 0xffffffff00000000, 0xfffffffffffffffe,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	}

	// qPlus1Half is (q + 1) / 2, added back when halving an odd field
	// element.
	qPlus1Half = [numLimbs]uint64{
		0x0000000080000000, 0x7fffffff80000000, 0xffffffffffffffff,
		0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff,
	}

	// qRR is 2^768 mod q, the Montgomery domain conversion constant.
	qRR = [numLimbs]uint64{
		0xfffffffe00000001, 0x0000000200000000, 0xfffffffe00000000,
		0x0000000200000000, 0x0000000000000001, 0x0000000000000000,
	}

	// n is the order of the base point.
	n = [numLimbs]uint64{
		0xecec196accc52973, 0x581a0db248b0a77a, 0xc7634d81f4372ddf,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	}

	// nRR is 2^768 mod n.
	nRR = [numLimbs]uint64{
		0x2d319b2419b409a9, 0xff3d81e5df1aa419, 0xbc3e483afcb82947,
		0xd40d49174aab1cc5, 0x3fb05b7a28266895, 0x0c84ee012b39bf21,
	}
)

const (
	// qN0 is -q^-1 mod 2^64.
	qN0 = 0x0000000100000001
	// nN0 is -n^-1 mod 2^64.
	nN0 = 0x6ed46089e88fdc45
)

// Short-Weierstrass curve parameters and base point affine
// coordinates, all in the Montgomery domain.
var (
	// curveA is a = -3.
	curveA = Elem{limbs: [numLimbs]uint64{
		0x00000003fffffffc, 0xfffffffc00000000, 0xfffffffffffffffb,
		0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	}}

	// curveB is the b coefficient.
	curveB = Elem{limbs: [numLimbs]uint64{
		0x081188719d412dcc, 0xf729add87a4c32ec, 0x77f2209b1920022e,
		0xe3374bee94938ae2, 0xb62b21f41f022094, 0xcd08114b604fbff9,
	}}

	// genX and genY are the base point coordinates.
	genX = Elem{limbs: [numLimbs]uint64{
		0x3dd0756649c0b528, 0x20e378e2a0d6ce38, 0x879c3afc541b4d6e,
		0x6454868459a30eff, 0x812ff723614ede2b, 0x4d3aadc2299e1513,
	}}

	genY = Elem{limbs: [numLimbs]uint64{
		0x23043dad4b03a4fe, 0xa1bfa8bf7bb4a9ac, 0x8bade7562e83b050,
		0xc6c3521968f4ffd9, 0xdd8002263969a840, 0x2b78abc25a15c5e9,
	}}
)
