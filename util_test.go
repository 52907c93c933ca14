package p384

import (
	"encoding/binary"
	"math/big"
	"math/rand"
)

// Shared big.Int oracle plumbing for the arithmetic tests. Tests
// compare limb results against math/big; the package code itself never
// touches big.Int.

var (
	bigQ = bigFromLimbs(&q)
	bigN = bigFromLimbs(&n)
	bigR = new(big.Int).Lsh(big.NewInt(1), 384)

	bigRInvQ = new(big.Int).ModInverse(bigR, bigQ)
	bigRInvN = new(big.Int).ModInverse(bigR, bigN)

	// Montgomery representations of 1 in each domain.
	bigMontOneQ = new(big.Int).Mod(bigR, bigQ)
	bigMontOneN = new(big.Int).Mod(bigR, bigN)
)

func bigFromLimbs(l *[numLimbs]uint64) *big.Int {
	v := new(big.Int)
	for i := numLimbs - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(l[i]))
	}
	return v
}

func limbsFromBig(v *big.Int) (l [numLimbs]uint64) {
	var b [48]byte
	v.FillBytes(b[:])
	for i := 0; i < numLimbs; i++ {
		l[i] = binary.BigEndian.Uint64(b[40-8*i : 48-8*i])
	}
	return l
}

func elemFromBig(v *big.Int) Elem {
	return Elem{limbs: limbsFromBig(v)}
}

func bigFromElem(e *Elem) *big.Int {
	return bigFromLimbs(&e.limbs)
}

func scalarFromBig(v *big.Int) Scalar {
	return Scalar{limbs: limbsFromBig(v)}
}

func scalarMontFromBig(v *big.Int) ScalarMont {
	return ScalarMont{limbs: limbsFromBig(v)}
}

func bigFromScalarMont(s *ScalarMont) *big.Int {
	return bigFromLimbs(&s.limbs)
}

// randBelow returns a uniformly distributed value in [0, m).
func randBelow(rnd *rand.Rand, m *big.Int) *big.Int {
	return new(big.Int).Rand(rnd, m)
}

// montQ maps a plain value to its Montgomery representation mod q
// using only big.Int, independent of the code under test.
func montQ(v *big.Int) *big.Int {
	r := new(big.Int).Mul(v, bigR)
	return r.Mod(r, bigQ)
}

func montN(v *big.Int) *big.Int {
	r := new(big.Int).Mul(v, bigR)
	return r.Mod(r, bigN)
}
