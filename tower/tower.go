// Package tower implements the scalar binary tower fields GF(2^(2^k)) the packed arithmetic
// operates on.
//
// The canonical tower is built by repeated quadratic extension: GF(2^2) = GF(2)[X0]/(X0^2 + X0
// + 1) and GF(2^(2^(k+1))) = GF(2^(2^k))[Xk]/(Xk^2 + X(k-1)Xk + 1). An element of a level is
// stored as a0 + a1*Xk with a0 in the low half of its bits and a1 in the high half.
//
// The AES tower starts from GF(2^8) = GF(2)[x]/(x^8 + x^4 + x^3 + x + 1), the basis the GFNI
// instructions compute in, and extends it the same way: its first generator satisfies
// X^2 = AESAlpha8b*X + 1. Changing the basis of every byte of a canonical tower element gives
// the corresponding AES tower element.
package tower

import "lukechampine.com/uint128"

// Field is the set of operations shared by the scalar field types.
//
// Bits, AESBasis and FromUint128 ignore their receiver.
type Field[F any] interface {
	comparable

	// Bits returns the bit width of the field.
	Bits() int
	// AESBasis reports whether elements are expressed in the AES-native basis.
	AESBasis() bool

	Add(y F) F
	Mul(y F) F
	Square() F
	// InvertOrZero returns the multiplicative inverse, or zero for zero.
	InvertOrZero() F
	// MulAlpha multiplies by the generator of the field over its subfield.
	MulAlpha() F
	IsZero() bool

	// Uint128 returns the bits of the element.
	Uint128() uint128.Uint128
	// FromUint128 returns the element with the low Bits() bits of v.
	FromUint128(v uint128.Uint128) F
}

// FromUint128 returns the element of F with the low bits of v.
func FromUint128[F Field[F]](v uint128.Uint128) F {
	var f F
	return f.FromUint128(v)
}

// FromUint64 returns the element of F with the low bits of v.
func FromUint64[F Field[F]](v uint64) F {
	return FromUint128[F](uint128.From64(v))
}

// One returns the multiplicative identity of F.
func One[F Field[F]]() F {
	return FromUint64[F](1)
}

// Bits returns the bit width of F.
func Bits[F Field[F]]() int {
	var f F
	return f.Bits()
}

// Basis returns the element of F with only bit i set.
func Basis[F Field[F]](i int) F {
	return FromUint128[F](uint128.From64(1).Lsh(uint(i)))
}

// basis selects the base of the recursion. The canonical tower descends to GF(2), the AES tower
// stops at AESTowerField8b.
type basis bool

const (
	canonical basis = false
	aes       basis = true
)

// mul multiplies a and b in the tower level of width n bits (n <= 64) by Karatsuba over the
// quadratic extension.
func mul(k basis, a, b uint64, n uint) uint64 {
	switch {
	case n == 1:
		return a & b
	case n == 8 && k == aes:
		return uint64(AESTowerField8b(a).Mul(AESTowerField8b(b)))
	}

	h := n / 2
	m := uint64(1)<<h - 1
	a0, a1 := a&m, a>>h
	b0, b1 := b&m, b>>h

	z0 := mul(k, a0, b0, h)
	z2 := mul(k, a1, b1, h)
	z1 := mul(k, a0^a1, b0^b1, h) ^ z0 ^ z2

	return z0 ^ z2 | (z1^mulAlpha(k, z2, h))<<h
}

// mulAlpha multiplies x by the top generator of the tower level of width n bits.
func mulAlpha(k basis, x uint64, n uint) uint64 {
	switch {
	case n == 1:
		return x
	case n == 8 && k == aes:
		return uint64(AESTowerField8b(x).MulAlpha())
	}

	h := n / 2
	m := uint64(1)<<h - 1
	a0, a1 := x&m, x>>h

	return a1 | (a0^mulAlpha(k, a1, h))<<h
}

// inv inverts x in the tower level of width n bits through the norm of the quadratic
// extension. Zero inverts to zero.
func inv(k basis, x uint64, n uint) uint64 {
	switch {
	case n == 1:
		return x
	case n == 8 && k == aes:
		return uint64(AESTowerField8b(x).InvertOrZero())
	}

	h := n / 2
	m := uint64(1)<<h - 1
	a0, a1 := x&m, x>>h

	c := a0 ^ mulAlpha(k, a1, h)
	d := inv(k, mul(k, a0, c, h)^mul(k, a1, a1, h), h)

	return mul(k, c, d, h) | mul(k, a1, d, h)<<h
}

func mul128(k basis, a, b uint128.Uint128) uint128.Uint128 {
	z0 := mul(k, a.Lo, b.Lo, 64)
	z2 := mul(k, a.Hi, b.Hi, 64)
	z1 := mul(k, a.Lo^a.Hi, b.Lo^b.Hi, 64) ^ z0 ^ z2

	return uint128.New(z0^z2, z1^mulAlpha(k, z2, 64))
}

func mulAlpha128(k basis, x uint128.Uint128) uint128.Uint128 {
	return uint128.New(x.Hi, x.Lo^mulAlpha(k, x.Hi, 64))
}

func inv128(k basis, x uint128.Uint128) uint128.Uint128 {
	c := x.Lo ^ mulAlpha(k, x.Hi, 64)
	d := inv(k, mul(k, x.Lo, c, 64)^mul(k, x.Hi, x.Hi, 64), 64)

	return uint128.New(mul(k, c, d, 64), mul(k, x.Hi, d, 64))
}
