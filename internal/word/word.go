// Package word provides fixed-width machine words (128, 256 and 512 bits) with the bitwise
// algebra and per-lane instructions the packed field arithmetic is built on.
//
// Each type behaves like a SIMD register: wider words are split into two half-width limbs,
// and lane instructions (byte shifts, GFNI affine transforms and multiplies) operate on each
// 128-bit lane independently, exactly as their x86 counterparts do. The GFNI instructions
// have no Go intrinsics, so they are implemented in portable Go with the instruction's
// documented semantics.
package word

import (
	"io"

	"lukechampine.com/uint128"
)

// Word is the set of operations shared by M128, M256 and M512.
//
// Methods which construct a value (FillWithBit, SetBytes, EvenMask, Broadcast64, ...) ignore
// their receiver; use the generic helpers in this package to call them on a zero value.
type Word[W any] interface {
	comparable

	And(y W) W
	Or(y W) W
	Xor(y W) W
	AndNot(y W) W
	Not() W
	Shl(n uint) W
	Shr(n uint) W

	Equal(y W) bool
	ConstantTimeEqual(y W) int
	IsZero() bool

	Bits() int
	Size() int
	PutBytes(b []byte)
	AppendBytes(b []byte) []byte
	SetBytes(b []byte) W
	Low128() uint128.Uint128
	FromLow128(v uint128.Uint128) W

	FillWithBit(b uint8) W
	EvenMask(level int) W
	OddMask(level int) W

	Broadcast64(q uint64) W
	Broadcast128(v uint128.Uint128) W
	ByteShiftLeftLanes(n uint) W
	ByteShiftRightLanes(n uint) W
	GF2P8Affine(a W) W
	GF2P8AffineInv(a W) W
	GF2P8Mul(y W) W

	String() string
}

// FillWithBit returns the all-zero word for b == 0 and the all-one word for b == 1. Other
// values of b are not supported.
func FillWithBit[W Word[W]](b uint8) W {
	var w W
	return w.FillWithBit(b)
}

// FromBytes returns the word whose little-endian representation is b. It panics if b is
// shorter than the word.
func FromBytes[W Word[W]](b []byte) W {
	var w W
	return w.SetBytes(b)
}

// FromLow128 returns the word whose low 128 bits are v and whose other bits are zero.
func FromLow128[W Word[W]](v uint128.Uint128) W {
	var w W
	return w.FromLow128(v)
}

// Broadcast64 returns the word with q in every 64-bit lane.
func Broadcast64[W Word[W]](q uint64) W {
	var w W
	return w.Broadcast64(q)
}

// Broadcast128 returns the word with v in every 128-bit lane.
func Broadcast128[W Word[W]](v uint128.Uint128) W {
	var w W
	return w.Broadcast128(v)
}

// EvenMask returns the mask selecting the even-indexed blocks of 2^level bits.
func EvenMask[W Word[W]](level int) W {
	var w W
	return w.EvenMask(level)
}

// OddMask returns the mask selecting the odd-indexed blocks of 2^level bits.
func OddMask[W Word[W]](level int) W {
	var w W
	return w.OddMask(level)
}

// Blend returns the word made of the even-indexed blocks of 2^level bits of even and the
// odd-indexed blocks of odd.
func Blend[W Word[W]](odd, even W, level int) W {
	m := EvenMask[W](level)
	return even.And(m).Or(odd.AndNot(m))
}

// Random returns a word drawn uniformly from r.
func Random[W Word[W]](r io.Reader) (W, error) {
	var w W
	b := make([]byte, w.Size())
	if _, err := io.ReadFull(r, b); err != nil {
		return w, err
	}
	return w.SetBytes(b), nil
}

// ctIsZero returns 1 if d is zero and 0 otherwise, without branching on d.
func ctIsZero(d uint64) int {
	return int(1 ^ ((d | -d) >> 63))
}

// shlLimbs shifts the two-limb value (lo, hi) left by n bits, where half is the width of one
// limb. Shifts of half or more move lo into hi.
func shlLimbs[W Word[W]](lo, hi W, n, half uint) (W, W) {
	var zero W
	switch {
	case n >= 2*half:
		return zero, zero
	case n == 0:
		return lo, hi
	case n >= half:
		return zero, lo.Shl(n - half)
	default:
		return lo.Shl(n), hi.Shl(n).Or(lo.Shr(half - n))
	}
}

// shrLimbs shifts the two-limb value (lo, hi) right by n bits, where half is the width of
// one limb. Shifts of half or more move hi into lo.
func shrLimbs[W Word[W]](lo, hi W, n, half uint) (W, W) {
	var zero W
	switch {
	case n >= 2*half:
		return zero, zero
	case n == 0:
		return lo, hi
	case n >= half:
		return hi.Shr(n - half), zero
	default:
		return lo.Shr(n).Or(hi.Shl(half - n)), hi.Shr(n)
	}
}
