package p384

import "errors"

// Scalar represents an integer modulo the group order n in plain
// (non-Montgomery) representation. Scalars and field elements share a
// limb layout but are distinct types: the moduli differ, so mixing
// them is a category error the compiler rejects.
type Scalar struct {
	limbs [numLimbs]uint64
}

// ScalarMont is a scalar in the Montgomery domain, value * 2^384
// mod n.
type ScalarMont struct {
	limbs [numLimbs]uint64
}

// SetBytes sets r from a 48-byte big-endian encoding, rejecting values
// that are not below n. Encodings cross a public boundary, so the
// range check is allowed to be variable-time.
func (r *Scalar) SetBytes(b []byte) error {
	if len(b) != 48 {
		return errors.New("scalar byte array must be 48 bytes")
	}

	var l [numLimbs]uint64
	for i := 0; i < numLimbs; i++ {
		l[i] = uint64(b[47-8*i]) | uint64(b[46-8*i])<<8 | uint64(b[45-8*i])<<16 | uint64(b[44-8*i])<<24 |
			uint64(b[43-8*i])<<32 | uint64(b[42-8*i])<<40 | uint64(b[41-8*i])<<48 | uint64(b[40-8*i])<<56
	}

	var d [numLimbs]uint64
	if limbsSub(&d, &l, &n) == 0 {
		return errors.New("scalar overflows the group order")
	}

	r.limbs = l
	return nil
}

// Bytes returns the 48-byte big-endian encoding of r.
func (r *Scalar) Bytes() []byte {
	b := make([]byte, 48)
	for i := 0; i < numLimbs; i++ {
		l := r.limbs[i]
		b[47-8*i] = byte(l)
		b[46-8*i] = byte(l >> 8)
		b[45-8*i] = byte(l >> 16)
		b[44-8*i] = byte(l >> 24)
		b[43-8*i] = byte(l >> 32)
		b[42-8*i] = byte(l >> 40)
		b[41-8*i] = byte(l >> 48)
		b[40-8*i] = byte(l >> 56)
	}
	return b
}

// Mul computes r = a * b / 2^384 mod n.
func (r *ScalarMont) Mul(a, b *ScalarMont) {
	montMul(&r.limbs, &a.limbs, &b.limbs, &n, nN0)
}

// Sqr computes r = a^2 / 2^384 mod n.
func (r *ScalarMont) Sqr(a *ScalarMont) {
	r.Mul(a, a)
}

// SqrMul squares a `squarings` times and then multiplies the result by
// b once. squarings must be at least 1.
func (r *ScalarMont) SqrMul(a *ScalarMont, squarings int, b *ScalarMont) {
	if squarings < 1 {
		panic("p384: squaring count must be at least 1")
	}
	var tmp ScalarMont
	tmp.Sqr(a)
	for i := 1; i < squarings; i++ {
		tmp.Sqr(&tmp)
	}
	r.Mul(&tmp, b)
}

// SetScalar converts a into the Montgomery domain: r = a * 2^384
// mod n.
func (r *ScalarMont) SetScalar(a *Scalar) {
	montMul(&r.limbs, &a.limbs, &nRR, &n, nN0)
}

// Equal reports whether r and a hold the same value, comparing every
// limb regardless of where the first difference occurs.
func (r *ScalarMont) Equal(a *ScalarMont) bool {
	var acc uint64
	for i := 0; i < numLimbs; i++ {
		acc |= r.limbs[i] ^ a.limbs[i]
	}
	return acc == 0
}

// Digit table indices for the scalar inversion chain. Each digit is a
// small odd (or length-two) power of the base: d[b1] = a^1,
// d[b10] = a^2, d[b11] = a^3, d[b101] = a^5, d[b111] = a^7,
// d[b1111] = a^15.
const (
	b1 = iota
	b10
	b11
	b101
	b111
	b1111
	invDigitCount
)

// scalarInvWindows drives the tail of the inversion chain: each entry
// squares the accumulator `squarings` times and then multiplies by the
// named digit. The counts are written as the zero run before a window
// plus the window width, tracking the binary expansion of n - 2:
//
//	1100011101100011010011011000000111110100001101110010110111011111
//	0101100000011010000011011011001001001000101100001010011101111010
//	1110110011101100000110010110101011001100110001010010100101110001
var scalarInvWindows = [...]struct {
	squarings uint8
	digit     uint8
}{
	{2, b11},
	{3 + 3, b111},
	{1 + 2, b11},
	{3 + 2, b11},
	{1 + 1, b1},
	{2 + 2, b11},
	{1 + 2, b11},
	{6 + 4, b1111},
	{3, b101},
	{4 + 2, b11},
	{1 + 3, b111},
	{2 + 3, b101},
	{1, b1},
	{1 + 3, b111},
	{1 + 4, b1111},
	{3, b101},
	{1 + 2, b11},
	{6 + 2, b11},
	{1 + 1, b1},
	{5 + 2, b11},
	{1 + 2, b11},
	{1 + 2, b11},
	{2 + 1, b1},
	{2 + 1, b1},
	{2 + 1, b1},
	{3 + 1, b1},
	{1 + 2, b11},
	{4 + 1, b1},
	{1 + 1, b1},
	{2 + 3, b111},
	{1 + 4, b1111},
	{1 + 1, b1},
	{1 + 3, b111},
	{1 + 2, b11},
	{2 + 3, b111},
	{1 + 2, b11},
	{5 + 2, b11},
	{2 + 1, b1},
	{1 + 2, b11},
	{1 + 3, b101},
	{1 + 2, b11},
	{2 + 2, b11},
	{2 + 2, b11},
	{3 + 3, b101},
	{2 + 3, b101},
	{2 + 1, b1},
	{1 + 3, b111},
	{3 + 1, b1},
}

// Inv computes r = a^-1 mod n for a plain-domain a, leaving the result
// in the Montgomery domain, by raising a to n - 2 (Fermat's little
// theorem). The exponent is
//
//	0xffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf\
//	  581a0db248b0a77aecec196accc52971
//
// The digit table, the leading all-ones accumulator and the window
// table are all fixed at compile time, so control flow never depends
// on a.
func (r *ScalarMont) Inv(a *Scalar) {
	var d [invDigitCount]ScalarMont
	d[b1].SetScalar(a)
	d[b10].Sqr(&d[b1])
	d[b11].Mul(&d[b10], &d[b1])
	d[b101].SqrMul(&d[b10], 1, &d[b1])
	d[b111].Mul(&d[b101], &d[b10])
	d[b1111].SqrMul(&d[b111], 1, &d[b1])

	var ff, ffff, ffffffff ScalarMont
	ff.SqrMul(&d[b1111], 4, &d[b1111])
	ffff.SqrMul(&ff, 8, &ff)
	ffffffff.SqrMul(&ffff, 16, &ffff)

	// The leading 192 bits of the exponent are all ones.
	var acc ScalarMont
	acc.SqrMul(&ffffffff, 32, &ffffffff)
	acc.SqrMul(&acc, 32, &ffffffff)
	acc.SqrMul(&acc, 96, &acc)

	for i := range scalarInvWindows {
		acc.SqrMul(&acc, int(scalarInvWindows[i].squarings), &d[scalarInvWindows[i].digit])
	}

	*r = acc
}
