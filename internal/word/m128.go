package word

import (
	"github.com/codahale/towerfield/internal/mem"
	hex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// M128 is a 128-bit word, the width of one SSE register and of one lane of the wider words.
type M128 struct {
	v uint128.Uint128
}

var (
	// M128Zero is the all-zero 128-bit word.
	M128Zero = M128{}
	// M128One is the 128-bit word with only the lowest bit set.
	M128One = M128{uint128.From64(1)}

	m128EvenMasks = func() (m [7]M128) {
		patterns := [6]uint64{
			0x5555555555555555,
			0x3333333333333333,
			0x0f0f0f0f0f0f0f0f,
			0x00ff00ff00ff00ff,
			0x0000ffff0000ffff,
			0x00000000ffffffff,
		}
		for i, p := range patterns {
			m[i] = NewM128(p, p)
		}
		m[6] = NewM128(^uint64(0), 0)
		return m
	}()
)

// NewM128 returns the word with the given low and high 64 bits.
func NewM128(lo, hi uint64) M128 {
	return M128{uint128.New(lo, hi)}
}

// M128FromUint128 returns the word holding v.
func M128FromUint128(v uint128.Uint128) M128 {
	return M128{v}
}

// Uint128 returns the word as a 128-bit integer.
func (x M128) Uint128() uint128.Uint128 {
	return x.v
}

func (x M128) And(y M128) M128 {
	return M128{x.v.And(y.v)}
}

func (x M128) Or(y M128) M128 {
	return M128{x.v.Or(y.v)}
}

func (x M128) Xor(y M128) M128 {
	return M128{x.v.Xor(y.v)}
}

// AndNot returns x & ^y.
func (x M128) AndNot(y M128) M128 {
	return NewM128(x.v.Lo&^y.v.Lo, x.v.Hi&^y.v.Hi)
}

func (x M128) Not() M128 {
	return NewM128(^x.v.Lo, ^x.v.Hi)
}

// Shl shifts x left by n bits. Shifts of 128 or more return zero.
func (x M128) Shl(n uint) M128 {
	if n >= 128 {
		return M128{}
	}
	return M128{x.v.Lsh(n)}
}

// Shr shifts x right by n bits. Shifts of 128 or more return zero.
func (x M128) Shr(n uint) M128 {
	if n >= 128 {
		return M128{}
	}
	return M128{x.v.Rsh(n)}
}

func (x M128) Equal(y M128) bool {
	return x.v.Equals(y.v)
}

// ConstantTimeEqual returns 1 if x == y and 0 otherwise. Its running time does not depend on
// the values of x and y.
func (x M128) ConstantTimeEqual(y M128) int {
	return ctIsZero(x.diff(y))
}

func (x M128) diff(y M128) uint64 {
	return (x.v.Lo ^ y.v.Lo) | (x.v.Hi ^ y.v.Hi)
}

func (x M128) IsZero() bool {
	return x.v.IsZero()
}

func (M128) Bits() int {
	return 128
}

func (M128) Size() int {
	return 16
}

// PutBytes stores x in b in little-endian order.
func (x M128) PutBytes(b []byte) {
	x.v.PutBytes(b[:16])
}

func (x M128) AppendBytes(b []byte) []byte {
	head, tail := mem.SliceForAppend(b, 16)
	x.PutBytes(tail)
	return head
}

func (M128) SetBytes(b []byte) M128 {
	return M128{uint128.FromBytes(b[:16])}
}

func (x M128) Low128() uint128.Uint128 {
	return x.v
}

func (M128) FromLow128(v uint128.Uint128) M128 {
	return M128{v}
}

func (M128) FillWithBit(b uint8) M128 {
	q := -uint64(b)
	return NewM128(q, q)
}

func (M128) EvenMask(level int) M128 {
	return m128EvenMasks[level]
}

func (M128) OddMask(level int) M128 {
	return m128EvenMasks[level].Not()
}

func (M128) Broadcast64(q uint64) M128 {
	return NewM128(q, q)
}

func (M128) Broadcast128(v uint128.Uint128) M128 {
	return M128{v}
}

// ByteShiftLeftLanes shifts x left by n bytes (PSLLDQ). Shifts of 16 or more return zero.
func (x M128) ByteShiftLeftLanes(n uint) M128 {
	return x.Shl(8 * n)
}

// ByteShiftRightLanes shifts x right by n bytes (PSRLDQ). Shifts of 16 or more return zero.
func (x M128) ByteShiftRightLanes(n uint) M128 {
	return x.Shr(8 * n)
}

// GF2P8Affine applies the 8x8 bit matrix in each 64-bit lane of a to every byte of the
// corresponding lane of x (GF2P8AFFINEQB with a zero constant).
func (x M128) GF2P8Affine(a M128) M128 {
	return NewM128(affineQword(a.v.Lo, x.v.Lo), affineQword(a.v.Hi, x.v.Hi))
}

// GF2P8AffineInv inverts every byte of x in GF(2^8) and then applies the matrices of a, as
// GF2P8Affine does (GF2P8AFFINEINVQB with a zero constant). Zero bytes invert to zero.
func (x M128) GF2P8AffineInv(a M128) M128 {
	return NewM128(affineInvQword(a.v.Lo, x.v.Lo), affineInvQword(a.v.Hi, x.v.Hi))
}

// GF2P8Mul multiplies the bytes of x and y pairwise in GF(2^8) reduced by
// x^8 + x^4 + x^3 + x + 1 (GF2P8MULB).
func (x M128) GF2P8Mul(y M128) M128 {
	return NewM128(mulQword(x.v.Lo, y.v.Lo), mulQword(x.v.Hi, y.v.Hi))
}

func (x M128) String() string {
	return hex.EncodeToString(x.AppendBytes(nil))
}
