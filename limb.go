package p384

import "math/bits"

// numLimbs saturated 64-bit limbs cover exactly 384 bits. Values are
// stored least significant limb first.
const numLimbs = 6

// nonzeroMask returns all ones if x is nonzero and all zeros otherwise.
func nonzeroMask(x uint64) uint64 {
	return -((x | -x) >> 63)
}

// zeroMask returns all ones if x is zero and all zeros otherwise.
func zeroMask(x uint64) uint64 {
	return ^nonzeroMask(x)
}

// eqMask returns all ones if x == y and all zeros otherwise.
func eqMask(x, y uint64) uint64 {
	return zeroMask(x ^ y)
}

// limbsZeroMask returns all ones if every limb of a is zero.
func limbsZeroMask(a *[numLimbs]uint64) uint64 {
	var acc uint64
	for i := 0; i < numLimbs; i++ {
		acc |= a[i]
	}
	return zeroMask(acc)
}

// limbsAdd computes r = a + b and returns the carry out of the top
// limb. r may alias a or b.
func limbsAdd(r, a, b *[numLimbs]uint64) (carry uint64) {
	for i := 0; i < numLimbs; i++ {
		r[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// limbsSub computes r = a - b and returns the borrow out of the top
// limb. r may alias a or b.
func limbsSub(r, a, b *[numLimbs]uint64) (borrow uint64) {
	for i := 0; i < numLimbs; i++ {
		r[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// cmovLimbs copies a into r where mask is all ones and leaves r
// unchanged where mask is all zeros. mask must be all ones or all
// zeros.
func cmovLimbs(r, a *[numLimbs]uint64, mask uint64) {
	for i := 0; i < numLimbs; i++ {
		r[i] ^= mask & (r[i] ^ a[i])
	}
}

// montMul computes r = a * b / 2^384 mod m using word-by-word
// Montgomery reduction. n0 is -m^-1 mod 2^64. Inputs must be reduced
// mod m; the result is reduced mod m. r may alias a or b.
func montMul(r, a, b, m *[numLimbs]uint64, n0 uint64) {
	// t accumulates the running (numLimbs+2)-word intermediate; it
	// stays below 2*m after every iteration.
	var t [numLimbs + 2]uint64
	for i := 0; i < numLimbs; i++ {
		// t += a * b[i]
		var c uint64
		for j := 0; j < numLimbs; j++ {
			hi, lo := bits.Mul64(a[j], b[i])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, t[j], 0)
			lo, c2 = bits.Add64(lo, c, 0)
			t[j] = lo
			c = hi + c1 + c2
		}
		var c1 uint64
		t[numLimbs], c1 = bits.Add64(t[numLimbs], c, 0)
		t[numLimbs+1] = c1

		// t += m * (t[0] * n0 mod 2^64), making t divisible by 2^64,
		// then shift t down one limb.
		k := t[0] * n0
		hi, lo := bits.Mul64(k, m[0])
		var c2 uint64
		_, c2 = bits.Add64(lo, t[0], 0)
		c = hi + c2
		for j := 1; j < numLimbs; j++ {
			var c3, c4 uint64
			hi, lo = bits.Mul64(k, m[j])
			lo, c3 = bits.Add64(lo, t[j], 0)
			lo, c4 = bits.Add64(lo, c, 0)
			t[j-1] = lo
			c = hi + c3 + c4
		}
		t[numLimbs-1], c1 = bits.Add64(t[numLimbs], c, 0)
		t[numLimbs] = t[numLimbs+1] + c1
	}

	// One conditional subtraction brings t into [0, m): reduce when t
	// overflowed into the extra limb or subtracting m does not borrow.
	var d [numLimbs]uint64
	var borrow uint64
	for i := 0; i < numLimbs; i++ {
		d[i], borrow = bits.Sub64(t[i], m[i], borrow)
	}
	reduce := nonzeroMask(t[numLimbs]) | zeroMask(borrow)
	for i := 0; i < numLimbs; i++ {
		r[i] = (d[i] & reduce) | (t[i] &^ reduce)
	}
}
