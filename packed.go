package towerfield

import (
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
	"lukechampine.com/uint128"
)

// Packed is a word W holding Lanes() elements of the field F. Lane i occupies bits
// [i*F.Bits(), (i+1)*F.Bits()) of the word.
type Packed[W word.Word[W], F tower.Field[F]] struct {
	w W
}

// FromWord reinterprets w as packed elements of F.
func FromWord[F tower.Field[F], W word.Word[W]](w W) Packed[W, F] {
	return Packed[W, F]{w}
}

// Broadcast returns the packed value with v in every lane.
func Broadcast[W word.Word[W], F tower.Field[F]](v F) Packed[W, F] {
	n := v.Bits()
	if n == 128 {
		return Packed[W, F]{word.Broadcast128[W](v.Uint128())}
	}

	q := v.Uint128().Lo
	for ; n < 64; n <<= 1 {
		q |= q << n
	}
	return Packed[W, F]{word.Broadcast64[W](q)}
}

// Broadcast returns the packed value with v in every lane. It ignores its receiver, so a zero
// value of a named packed type can construct values of that type.
func (Packed[W, F]) Broadcast(v F) Packed[W, F] {
	return Broadcast[W](v)
}

// FromScalars returns the packed value with lanes taken from vs. Missing lanes are zero; extra
// values cause a panic.
func FromScalars[W word.Word[W], F tower.Field[F]](vs ...F) Packed[W, F] {
	var p Packed[W, F]
	for i, v := range vs {
		p = p.Set(i, v)
	}
	return p
}

// Word returns the underlying word.
func (p Packed[W, F]) Word() W {
	return p.w
}

// Width returns the size of the underlying word in bits.
func (Packed[W, F]) Width() int {
	var w W
	return w.Bits()
}

// Lanes returns the number of elements in the packed value.
func (Packed[W, F]) Lanes() int {
	var (
		w W
		f F
	)
	return w.Bits() / f.Bits()
}

// Get returns the element in lane i.
func (p Packed[W, F]) Get(i int) F {
	var f F
	n := p.checkLane(i)
	return f.FromUint128(p.w.Shr(uint(i * n)).Low128())
}

// Set returns a copy of p with lane i replaced by v.
func (p Packed[W, F]) Set(i int, v F) Packed[W, F] {
	n := p.checkLane(i)
	shift := uint(i * n)
	mask := word.FromLow128[W](laneMask(n)).Shl(shift)
	lane := word.FromLow128[W](v.Uint128().And(laneMask(n))).Shl(shift)
	return Packed[W, F]{p.w.AndNot(mask).Or(lane)}
}

// Scalars returns the elements of every lane.
func (p Packed[W, F]) Scalars() []F {
	out := make([]F, p.Lanes())
	for i := range out {
		out[i] = p.Get(i)
	}
	return out
}

// Add returns the lane-wise sum of p and q.
func (p Packed[W, F]) Add(q Packed[W, F]) Packed[W, F] {
	return Packed[W, F]{p.w.Xor(q.w)}
}

// Equal reports whether every lane of p equals the corresponding lane of q.
func (p Packed[W, F]) Equal(q Packed[W, F]) bool {
	return p.w.Equal(q.w)
}

// ConstantTimeEqual returns 1 if p and q are equal and 0 otherwise, in time independent of
// their values.
func (p Packed[W, F]) ConstantTimeEqual(q Packed[W, F]) int {
	return p.w.ConstantTimeEqual(q.w)
}

func (p Packed[W, F]) String() string {
	return p.w.String()
}

func (p Packed[W, F]) checkLane(i int) int {
	var f F
	if i < 0 || i >= p.Lanes() {
		panic("towerfield: lane index out of range")
	}
	return f.Bits()
}

func laneMask(n int) uint128.Uint128 {
	if n >= 128 {
		return uint128.Max
	}
	return uint128.From64(1).Lsh(uint(n)).Sub64(1)
}
