package tower

import (
	"fmt"

	"lukechampine.com/uint128"
)

type (
	// AESTowerField16b is GF(2^16) as a quadratic extension of AESTowerField8b.
	AESTowerField16b uint16
	// AESTowerField32b is GF(2^32) as a quadratic extension of AESTowerField16b.
	AESTowerField32b uint32
	// AESTowerField64b is GF(2^64) as a quadratic extension of AESTowerField32b.
	AESTowerField64b uint64
	// AESTowerField128b is GF(2^128) as a quadratic extension of AESTowerField64b.
	AESTowerField128b uint128.Uint128
)

func (AESTowerField16b) Bits() int {
	return 16
}

func (AESTowerField16b) AESBasis() bool {
	return true
}

func (x AESTowerField16b) Add(y AESTowerField16b) AESTowerField16b {
	return x ^ y
}

func (x AESTowerField16b) IsZero() bool {
	return x == 0
}

func (x AESTowerField16b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (AESTowerField16b) FromUint128(v uint128.Uint128) AESTowerField16b {
	return AESTowerField16b(v.Lo)
}

func (x AESTowerField16b) Mul(y AESTowerField16b) AESTowerField16b {
	return AESTowerField16b(mul(aes, uint64(x), uint64(y), 16))
}

func (x AESTowerField16b) Square() AESTowerField16b {
	return x.Mul(x)
}

func (x AESTowerField16b) InvertOrZero() AESTowerField16b {
	return AESTowerField16b(inv(aes, uint64(x), 16))
}

func (x AESTowerField16b) MulAlpha() AESTowerField16b {
	return AESTowerField16b(mulAlpha(aes, uint64(x), 16))
}

func (x AESTowerField16b) String() string {
	return fmt.Sprintf("%#04x", uint16(x))
}

func (AESTowerField32b) Bits() int {
	return 32
}

func (AESTowerField32b) AESBasis() bool {
	return true
}

func (x AESTowerField32b) Add(y AESTowerField32b) AESTowerField32b {
	return x ^ y
}

func (x AESTowerField32b) IsZero() bool {
	return x == 0
}

func (x AESTowerField32b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (AESTowerField32b) FromUint128(v uint128.Uint128) AESTowerField32b {
	return AESTowerField32b(v.Lo)
}

func (x AESTowerField32b) Mul(y AESTowerField32b) AESTowerField32b {
	return AESTowerField32b(mul(aes, uint64(x), uint64(y), 32))
}

func (x AESTowerField32b) Square() AESTowerField32b {
	return x.Mul(x)
}

func (x AESTowerField32b) InvertOrZero() AESTowerField32b {
	return AESTowerField32b(inv(aes, uint64(x), 32))
}

func (x AESTowerField32b) MulAlpha() AESTowerField32b {
	return AESTowerField32b(mulAlpha(aes, uint64(x), 32))
}

func (x AESTowerField32b) String() string {
	return fmt.Sprintf("%#08x", uint32(x))
}

func (AESTowerField64b) Bits() int {
	return 64
}

func (AESTowerField64b) AESBasis() bool {
	return true
}

func (x AESTowerField64b) Add(y AESTowerField64b) AESTowerField64b {
	return x ^ y
}

func (x AESTowerField64b) IsZero() bool {
	return x == 0
}

func (x AESTowerField64b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (AESTowerField64b) FromUint128(v uint128.Uint128) AESTowerField64b {
	return AESTowerField64b(v.Lo)
}

func (x AESTowerField64b) Mul(y AESTowerField64b) AESTowerField64b {
	return AESTowerField64b(mul(aes, uint64(x), uint64(y), 64))
}

func (x AESTowerField64b) Square() AESTowerField64b {
	return x.Mul(x)
}

func (x AESTowerField64b) InvertOrZero() AESTowerField64b {
	return AESTowerField64b(inv(aes, uint64(x), 64))
}

func (x AESTowerField64b) MulAlpha() AESTowerField64b {
	return AESTowerField64b(mulAlpha(aes, uint64(x), 64))
}

func (x AESTowerField64b) String() string {
	return fmt.Sprintf("%#016x", uint64(x))
}

func (AESTowerField128b) Bits() int {
	return 128
}

func (AESTowerField128b) AESBasis() bool {
	return true
}

func (x AESTowerField128b) Add(y AESTowerField128b) AESTowerField128b {
	return AESTowerField128b(x.Uint128().Xor(y.Uint128()))
}

func (x AESTowerField128b) IsZero() bool {
	return x.Uint128().IsZero()
}

func (x AESTowerField128b) Uint128() uint128.Uint128 {
	return uint128.Uint128(x)
}

func (AESTowerField128b) FromUint128(v uint128.Uint128) AESTowerField128b {
	return AESTowerField128b(v)
}

func (x AESTowerField128b) Mul(y AESTowerField128b) AESTowerField128b {
	return AESTowerField128b(mul128(aes, x.Uint128(), y.Uint128()))
}

func (x AESTowerField128b) Square() AESTowerField128b {
	return x.Mul(x)
}

func (x AESTowerField128b) InvertOrZero() AESTowerField128b {
	return AESTowerField128b(inv128(aes, x.Uint128()))
}

func (x AESTowerField128b) MulAlpha() AESTowerField128b {
	return AESTowerField128b(mulAlpha128(aes, x.Uint128()))
}

func (x AESTowerField128b) String() string {
	return fmt.Sprintf("%#016x%016x", x.Hi, x.Lo)
}
