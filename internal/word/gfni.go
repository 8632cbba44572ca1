package word

import "math/bits"

// AffineByte computes one byte of GF2P8AFFINEQB: bit i of the result is the parity of byte
// 7-i of the matrix a ANDed with x.
func AffineByte(a uint64, x byte) byte {
	var r byte
	for i := range 8 {
		row := byte(a >> (8 * (7 - i)))
		r |= byte(bits.OnesCount8(row&x)&1) << i
	}
	return r
}

// MulByte multiplies a and b in GF(2^8) reduced by x^8 + x^4 + x^3 + x + 1. It does not
// branch on its inputs.
func MulByte(a, b byte) byte {
	var p byte
	for range 8 {
		p ^= a & -(b & 1)
		hi := a >> 7
		a = a<<1 ^ 0x1b&-hi
		b >>= 1
	}
	return p
}

// InvByte returns the multiplicative inverse of x in GF(2^8), or zero if x is zero.
func InvByte(x byte) byte {
	// x^254 = x^2 * x^4 * ... * x^128
	t := MulByte(x, x)
	r := t
	for range 6 {
		t = MulByte(t, t)
		r = MulByte(r, t)
	}
	return r
}

func affineQword(a, x uint64) uint64 {
	var r uint64
	for j := range 8 {
		r |= uint64(AffineByte(a, byte(x>>(8*j)))) << (8 * j)
	}
	return r
}

func affineInvQword(a, x uint64) uint64 {
	var r uint64
	for j := range 8 {
		r |= uint64(AffineByte(a, InvByte(byte(x>>(8*j))))) << (8 * j)
	}
	return r
}

func mulQword(x, y uint64) uint64 {
	var r uint64
	for j := range 8 {
		r |= uint64(MulByte(byte(x>>(8*j)), byte(y>>(8*j)))) << (8 * j)
	}
	return r
}
