package p384

// MulMont computes r = a * b / 2^384 mod q for Montgomery-domain a
// and b.
func (r *Elem) MulMont(a, b *Elem) {
	montMul(&r.limbs, &a.limbs, &b.limbs, &q, qN0)
}

// SqrMont computes r = a^2 / 2^384 mod q.
// TODO: add a dedicated squaring kernel; the generic multiply recomputes
// the symmetric cross terms.
func (r *Elem) SqrMont(a *Elem) {
	r.MulMont(a, a)
}

// SqrMulMont squares a `squarings` times and then multiplies the
// result by b once. squarings must be at least 1.
func (r *Elem) SqrMulMont(a *Elem, squarings int, b *Elem) {
	if squarings < 1 {
		panic("p384: squaring count must be at least 1")
	}
	var tmp Elem
	tmp.SqrMont(a)
	for i := 1; i < squarings; i++ {
		tmp.SqrMont(&tmp)
	}
	r.MulMont(&tmp, b)
}

// Inv computes r = a^-1 mod q for a Montgomery-domain a, leaving the
// result in the Montgomery domain, by raising a to q - 2 (Fermat's
// little theorem). The exponent is
//
//	0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe\
//	  ffffffff0000000000000000fffffffd
//
// The chain is fixed at compile time, so control flow never depends on
// a. Zero propagates through every multiply, so Inv(0) == 0 without a
// special case.
func (r *Elem) Inv(a *Elem) {
	// xk holds a^(2^k - 1), a run of k ones in the exponent.
	x1 := *a
	var x2, x4, x8, x16, x24, x28, x56, x112 Elem
	x2.SqrMulMont(&x1, 1, &x1)
	x4.SqrMulMont(&x2, 2, &x2)
	x8.SqrMulMont(&x4, 4, &x4)
	x16.SqrMulMont(&x8, 8, &x8)
	x24.SqrMulMont(&x16, 8, &x8)
	x28.SqrMulMont(&x24, 4, &x4)
	x56.SqrMulMont(&x28, 28, &x28)
	x112.SqrMulMont(&x56, 56, &x56)

	var acc Elem

	// ffffffffffffffffffffffffffffffffffffffffffffffffffffffff
	acc.SqrMulMont(&x112, 112, &x112)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff
	acc.SqrMulMont(&acc, 28, &x28)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff[11]
	acc.SqrMulMont(&acc, 2, &x2)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff[111]
	acc.SqrMulMont(&acc, 1, &x1)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe\
	// fffffff
	acc.SqrMulMont(&acc, 1+28, &x28)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe\
	// ffffffff
	acc.SqrMulMont(&acc, 4, &x4)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe\
	// ffffffff0000000000000000fffffff
	acc.SqrMulMont(&acc, 64+28, &x28)

	// fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe\
	// ffffffff0000000000000000fffffffd
	acc.SqrMulMont(&acc, 2, &x2)
	r.SqrMulMont(&acc, 1+1, &x1)
}
