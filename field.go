package p384

import "errors"

// Elem represents a field element modulo the P-384 field prime q. A
// well-formed Elem is always fully reduced. Multiplicative routines
// expect and produce values in the Montgomery domain; additive
// routines work in either domain. For every operation the receiver is
// the output and may alias any input.
type Elem struct {
	limbs [numLimbs]uint64
}

// elemOne is the plain (non-Montgomery) value 1, used to convert out
// of the Montgomery domain.
var elemOne = Elem{limbs: [numLimbs]uint64{1}}

// Add computes r = a + b mod q.
func (r *Elem) Add(a, b *Elem) {
	carry := limbsAdd(&r.limbs, &a.limbs, &b.limbs)

	// The raw sum needs reducing when it overflowed 2^384 or, without
	// overflowing, is still >= q. The two conditions are independent
	// and are OR'd as masks; the reduced value is kept via conditional
	// copy, never a branch.
	var adjusted Elem
	borrow := limbsSub(&adjusted.limbs, &r.limbs, &q)
	r.cmov(&adjusted, nonzeroMask(carry)|zeroMask(borrow))
}

// Sub computes r = a - b mod q.
func (r *Elem) Sub(a, b *Elem) {
	borrow := limbsSub(&r.limbs, &a.limbs, &b.limbs)

	var adjusted Elem
	limbsAdd(&adjusted.limbs, &r.limbs, &q)
	r.cmov(&adjusted, nonzeroMask(borrow))
}

// Half computes r = a / 2 mod q.
func (r *Elem) Half(a *Elem) {
	isOdd := nonzeroMask(a.limbs[0] & 1)

	// r = a >> 1
	for i := 0; i < numLimbs-1; i++ {
		r.limbs[i] = (a.limbs[i] >> 1) | (a.limbs[i+1] << 63)
	}
	r.limbs[numLimbs-1] = a.limbs[numLimbs-1] >> 1

	// When a is odd the shift dropped the low bit; adding (q + 1) / 2
	// recovers it, since (a >> 1) + (q + 1)/2 == (a + q)/2 mod q. With
	// a <= q - 2 the sum is bounded by q - 1, so it needs neither a
	// reduction nor an extra top bit.
	var adjusted Elem
	if carry := limbsAdd(&adjusted.limbs, &r.limbs, &qPlus1Half); carry != 0 {
		panic("p384: carry out of field halving add-back")
	}
	r.cmov(&adjusted, isOdd)
}

// Double computes r = 2 * a mod q.
func (r *Elem) Double(a *Elem) {
	r.Add(a, a)
}

// Triple computes r = 3 * a mod q.
// TODO: fold the double and the add into a single shift-and-add pass.
func (r *Elem) Triple(a *Elem) {
	var doubled Elem
	doubled.Add(a, a)
	r.Add(&doubled, a)
}

// Negate computes r = -a mod q. The negation of zero is zero, not q.
func (r *Elem) Negate(a *Elem) {
	isZero := limbsZeroMask(&a.limbs)
	if borrow := limbsSub(&r.limbs, &q, &a.limbs); borrow != 0 {
		panic("p384: field negation input out of range")
	}
	for i := 0; i < numLimbs; i++ {
		r.limbs[i] &^= isZero
	}
}

// cmov copies a into r when mask is all ones and leaves r unchanged
// when mask is all zeros.
func (r *Elem) cmov(a *Elem, mask uint64) {
	cmovLimbs(&r.limbs, &a.limbs, mask)
}

// ToMont converts a into the Montgomery domain: r = a * 2^384 mod q.
func (r *Elem) ToMont(a *Elem) {
	montMul(&r.limbs, &a.limbs, &qRR, &q, qN0)
}

// FromMont converts a out of the Montgomery domain: r = a / 2^384
// mod q.
func (r *Elem) FromMont(a *Elem) {
	montMul(&r.limbs, &a.limbs, &elemOne.limbs, &q, qN0)
}

// Equal reports whether r and a hold the same value, comparing every
// limb regardless of where the first difference occurs.
func (r *Elem) Equal(a *Elem) bool {
	var acc uint64
	for i := 0; i < numLimbs; i++ {
		acc |= r.limbs[i] ^ a.limbs[i]
	}
	return acc == 0
}

// IsZero reports whether r is zero.
func (r *Elem) IsZero() bool {
	var acc uint64
	for i := 0; i < numLimbs; i++ {
		acc |= r.limbs[i]
	}
	return acc == 0
}

// SetBytes sets r from a 48-byte big-endian encoding, rejecting values
// that are not below q. Encodings cross a public boundary, so the
// range check is allowed to be variable-time.
func (r *Elem) SetBytes(b []byte) error {
	if len(b) != 48 {
		return errors.New("field element byte array must be 48 bytes")
	}

	var l [numLimbs]uint64
	for i := 0; i < numLimbs; i++ {
		l[i] = uint64(b[47-8*i]) | uint64(b[46-8*i])<<8 | uint64(b[45-8*i])<<16 | uint64(b[44-8*i])<<24 |
			uint64(b[43-8*i])<<32 | uint64(b[42-8*i])<<40 | uint64(b[41-8*i])<<48 | uint64(b[40-8*i])<<56
	}

	var d [numLimbs]uint64
	if limbsSub(&d, &l, &q) == 0 {
		return errors.New("field element overflows the field prime")
	}

	r.limbs = l
	return nil
}

// Bytes returns the 48-byte big-endian encoding of r.
func (r *Elem) Bytes() []byte {
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
