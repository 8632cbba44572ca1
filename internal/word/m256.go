package word

import (
	"github.com/codahale/towerfield/internal/mem"
	hex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// M256 is a 256-bit word made of two 128-bit limbs, the width of one AVX2 register.
type M256 struct {
	lo, hi M128
}

var (
	// M256Zero is the all-zero 256-bit word.
	M256Zero = M256{}
	// M256One is the word built from the 128-bit limbs (0, 1).
	M256One = NewM256(uint128.Zero, uint128.From64(1))

	m256EvenMasks = func() (m [8]M256) {
		for i, l := range m128EvenMasks {
			m[i] = M256{l, l}
		}
		m[7] = M256{lo: M128{uint128.Max}}
		return m
	}()
)

// NewM256 returns the word with the given low and high 128-bit limbs.
func NewM256(lo, hi uint128.Uint128) M256 {
	return M256{M128{lo}, M128{hi}}
}

// M256FromHalves returns the word with the given low and high halves.
func M256FromHalves(lo, hi M128) M256 {
	return M256{lo, hi}
}

// Limbs returns the low and high 128-bit limbs of x.
func (x M256) Limbs() [2]uint128.Uint128 {
	return [2]uint128.Uint128{x.lo.v, x.hi.v}
}

// Halves returns the low and high 128-bit halves of x.
func (x M256) Halves() (lo, hi M128) {
	return x.lo, x.hi
}

func (x M256) And(y M256) M256 {
	return M256{x.lo.And(y.lo), x.hi.And(y.hi)}
}

func (x M256) Or(y M256) M256 {
	return M256{x.lo.Or(y.lo), x.hi.Or(y.hi)}
}

func (x M256) Xor(y M256) M256 {
	return M256{x.lo.Xor(y.lo), x.hi.Xor(y.hi)}
}

func (x M256) AndNot(y M256) M256 {
	return M256{x.lo.AndNot(y.lo), x.hi.AndNot(y.hi)}
}

func (x M256) Not() M256 {
	return M256{x.lo.Not(), x.hi.Not()}
}

// Shl shifts x left by n bits. Shifts of 256 or more return zero.
func (x M256) Shl(n uint) M256 {
	lo, hi := shlLimbs(x.lo, x.hi, n, 128)
	return M256{lo, hi}
}

// Shr shifts x right by n bits. Shifts of 256 or more return zero.
func (x M256) Shr(n uint) M256 {
	lo, hi := shrLimbs(x.lo, x.hi, n, 128)
	return M256{lo, hi}
}

func (x M256) Equal(y M256) bool {
	return x == y
}

// ConstantTimeEqual returns 1 if x == y and 0 otherwise. Its running time does not depend on
// the values of x and y.
func (x M256) ConstantTimeEqual(y M256) int {
	return ctIsZero(x.diff(y))
}

func (x M256) diff(y M256) uint64 {
	return x.lo.diff(y.lo) | x.hi.diff(y.hi)
}

func (x M256) IsZero() bool {
	return x.lo.IsZero() && x.hi.IsZero()
}

func (M256) Bits() int {
	return 256
}

func (M256) Size() int {
	return 32
}

// PutBytes stores x in b in little-endian order.
func (x M256) PutBytes(b []byte) {
	_ = b[31]
	x.lo.PutBytes(b[:16])
	x.hi.PutBytes(b[16:32])
}

func (x M256) AppendBytes(b []byte) []byte {
	head, tail := mem.SliceForAppend(b, 32)
	x.PutBytes(tail)
	return head
}

func (M256) SetBytes(b []byte) M256 {
	_ = b[31]
	return M256{M128Zero.SetBytes(b[:16]), M128Zero.SetBytes(b[16:32])}
}

func (x M256) Low128() uint128.Uint128 {
	return x.lo.v
}

func (M256) FromLow128(v uint128.Uint128) M256 {
	return M256{lo: M128{v}}
}

func (M256) FillWithBit(b uint8) M256 {
	l := M128Zero.FillWithBit(b)
	return M256{l, l}
}

func (M256) EvenMask(level int) M256 {
	return m256EvenMasks[level]
}

func (M256) OddMask(level int) M256 {
	return m256EvenMasks[level].Not()
}

func (M256) Broadcast64(q uint64) M256 {
	l := NewM128(q, q)
	return M256{l, l}
}

func (M256) Broadcast128(v uint128.Uint128) M256 {
	return M256{M128{v}, M128{v}}
}

func (x M256) ByteShiftLeftLanes(n uint) M256 {
	return M256{x.lo.ByteShiftLeftLanes(n), x.hi.ByteShiftLeftLanes(n)}
}

func (x M256) ByteShiftRightLanes(n uint) M256 {
	return M256{x.lo.ByteShiftRightLanes(n), x.hi.ByteShiftRightLanes(n)}
}

func (x M256) GF2P8Affine(a M256) M256 {
	return M256{x.lo.GF2P8Affine(a.lo), x.hi.GF2P8Affine(a.hi)}
}

func (x M256) GF2P8AffineInv(a M256) M256 {
	return M256{x.lo.GF2P8AffineInv(a.lo), x.hi.GF2P8AffineInv(a.hi)}
}

func (x M256) GF2P8Mul(y M256) M256 {
	return M256{x.lo.GF2P8Mul(y.lo), x.hi.GF2P8Mul(y.hi)}
}

func (x M256) String() string {
	return hex.EncodeToString(x.AppendBytes(nil))
}
