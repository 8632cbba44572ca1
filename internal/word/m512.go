package word

import (
	"github.com/codahale/towerfield/internal/mem"
	hex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// M512 is a 512-bit word made of two 256-bit limbs, the width of one AVX-512 register.
type M512 struct {
	lo, hi M256
}

var (
	// M512Zero is the all-zero 512-bit word.
	M512Zero = M512{}
	// M512One is the word built from the 128-bit limbs (0, 0, 0, 1).
	M512One = NewM512([4]uint128.Uint128{3: uint128.From64(1)})

	m512EvenMasks = func() (m [9]M512) {
		for i, l := range m256EvenMasks {
			m[i] = M512{l, l}
		}
		m[8] = M512{lo: M256Zero.FillWithBit(1)}
		return m
	}()
)

// NewM512 returns the word with the given 128-bit limbs, least significant first.
func NewM512(limbs [4]uint128.Uint128) M512 {
	return M512{NewM256(limbs[0], limbs[1]), NewM256(limbs[2], limbs[3])}
}

// M512FromHalves returns the word with the given low and high halves.
func M512FromHalves(lo, hi M256) M512 {
	return M512{lo, hi}
}

// Limbs returns the 128-bit limbs of x, least significant first.
func (x M512) Limbs() [4]uint128.Uint128 {
	return [4]uint128.Uint128{x.lo.lo.v, x.lo.hi.v, x.hi.lo.v, x.hi.hi.v}
}

// Halves returns the low and high 256-bit halves of x.
func (x M512) Halves() (lo, hi M256) {
	return x.lo, x.hi
}

func (x M512) And(y M512) M512 {
	return M512{x.lo.And(y.lo), x.hi.And(y.hi)}
}

func (x M512) Or(y M512) M512 {
	return M512{x.lo.Or(y.lo), x.hi.Or(y.hi)}
}

func (x M512) Xor(y M512) M512 {
	return M512{x.lo.Xor(y.lo), x.hi.Xor(y.hi)}
}

func (x M512) AndNot(y M512) M512 {
	return M512{x.lo.AndNot(y.lo), x.hi.AndNot(y.hi)}
}

func (x M512) Not() M512 {
	return M512{x.lo.Not(), x.hi.Not()}
}

// Shl shifts x left by n bits. Shifts of 512 or more return zero.
func (x M512) Shl(n uint) M512 {
	lo, hi := shlLimbs(x.lo, x.hi, n, 256)
	return M512{lo, hi}
}

// Shr shifts x right by n bits. Shifts of 512 or more return zero.
func (x M512) Shr(n uint) M512 {
	lo, hi := shrLimbs(x.lo, x.hi, n, 256)
	return M512{lo, hi}
}

func (x M512) Equal(y M512) bool {
	return x == y
}

// ConstantTimeEqual returns 1 if x == y and 0 otherwise. Its running time does not depend on
// the values of x and y.
func (x M512) ConstantTimeEqual(y M512) int {
	return ctIsZero(x.lo.diff(y.lo) | x.hi.diff(y.hi))
}

func (x M512) IsZero() bool {
	return x.lo.IsZero() && x.hi.IsZero()
}

func (M512) Bits() int {
	return 512
}

func (M512) Size() int {
	return 64
}

// PutBytes stores x in b in little-endian order.
func (x M512) PutBytes(b []byte) {
	_ = b[63]
	x.lo.PutBytes(b[:32])
	x.hi.PutBytes(b[32:64])
}

func (x M512) AppendBytes(b []byte) []byte {
	head, tail := mem.SliceForAppend(b, 64)
	x.PutBytes(tail)
	return head
}

func (M512) SetBytes(b []byte) M512 {
	_ = b[63]
	return M512{M256Zero.SetBytes(b[:32]), M256Zero.SetBytes(b[32:64])}
}

func (x M512) Low128() uint128.Uint128 {
	return x.lo.Low128()
}

func (M512) FromLow128(v uint128.Uint128) M512 {
	return M512{lo: M256Zero.FromLow128(v)}
}

func (M512) FillWithBit(b uint8) M512 {
	l := M256Zero.FillWithBit(b)
	return M512{l, l}
}

func (M512) EvenMask(level int) M512 {
	return m512EvenMasks[level]
}

func (M512) OddMask(level int) M512 {
	return m512EvenMasks[level].Not()
}

func (M512) Broadcast64(q uint64) M512 {
	l := M256Zero.Broadcast64(q)
	return M512{l, l}
}

func (M512) Broadcast128(v uint128.Uint128) M512 {
	l := M256Zero.Broadcast128(v)
	return M512{l, l}
}

func (x M512) ByteShiftLeftLanes(n uint) M512 {
	return M512{x.lo.ByteShiftLeftLanes(n), x.hi.ByteShiftLeftLanes(n)}
}

func (x M512) ByteShiftRightLanes(n uint) M512 {
	return M512{x.lo.ByteShiftRightLanes(n), x.hi.ByteShiftRightLanes(n)}
}

func (x M512) GF2P8Affine(a M512) M512 {
	return M512{x.lo.GF2P8Affine(a.lo), x.hi.GF2P8Affine(a.hi)}
}

func (x M512) GF2P8AffineInv(a M512) M512 {
	return M512{x.lo.GF2P8AffineInv(a.lo), x.hi.GF2P8AffineInv(a.hi)}
}

func (x M512) GF2P8Mul(y M512) M512 {
	return M512{x.lo.GF2P8Mul(y.lo), x.hi.GF2P8Mul(y.hi)}
}

func (x M512) String() string {
	return hex.EncodeToString(x.AppendBytes(nil))
}
