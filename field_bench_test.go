package p384

import (
	"math/big"
	"math/rand"
	"testing"
)

func benchElem(seed int64) Elem {
	rnd := rand.New(rand.NewSource(seed))
	return elemFromBig(randBelow(rnd, bigQ))
}

func BenchmarkElemAdd(b *testing.B) {
	x := benchElem(1)
	y := benchElem(2)
	var r Elem
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(&x, &y)
	}
}

func BenchmarkElemHalf(b *testing.B) {
	x := benchElem(3)
	var r Elem
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Half(&x)
	}
}

func BenchmarkElemMulMont(b *testing.B) {
	x := benchElem(4)
	y := benchElem(5)
	var r Elem
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.MulMont(&x, &y)
	}
}

func BenchmarkElemInv(b *testing.B) {
	x := benchElem(6)
	var r Elem
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Inv(&x)
	}
}

func BenchmarkScalarInv(b *testing.B) {
	rnd := rand.New(rand.NewSource(7))
	s := scalarFromBig(randBelow(rnd, bigN))
	var r ScalarMont
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Inv(&s)
	}
}

func BenchmarkSelectW5(b *testing.B) {
	table := markerTable()
	var p Point
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.SelectW5(&table, uint64(i&15)+1)
	}
}

var benchSink *big.Int

func BenchmarkElemBytes(b *testing.B) {
	x := benchElem(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = new(big.Int).SetBytes(x.Bytes())
	}
}
