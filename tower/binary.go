package tower

import (
	"fmt"

	"lukechampine.com/uint128"
)

type (
	// BinaryField8b is GF(2^8) in the canonical tower basis.
	BinaryField8b uint8
	// BinaryField16b is GF(2^16) in the canonical tower basis.
	BinaryField16b uint16
	// BinaryField32b is GF(2^32) in the canonical tower basis.
	BinaryField32b uint32
	// BinaryField64b is GF(2^64) in the canonical tower basis.
	BinaryField64b uint64
	// BinaryField128b is GF(2^128) in the canonical tower basis.
	BinaryField128b uint128.Uint128
)

func (BinaryField8b) Bits() int {
	return 8
}

func (BinaryField8b) AESBasis() bool {
	return false
}

func (x BinaryField8b) Add(y BinaryField8b) BinaryField8b {
	return x ^ y
}

func (x BinaryField8b) IsZero() bool {
	return x == 0
}

func (x BinaryField8b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (BinaryField8b) FromUint128(v uint128.Uint128) BinaryField8b {
	return BinaryField8b(v.Lo)
}

func (x BinaryField8b) Mul(y BinaryField8b) BinaryField8b {
	return BinaryField8b(mul(canonical, uint64(x), uint64(y), 8))
}

func (x BinaryField8b) Square() BinaryField8b {
	return x.Mul(x)
}

func (x BinaryField8b) InvertOrZero() BinaryField8b {
	return BinaryField8b(inv(canonical, uint64(x), 8))
}

func (x BinaryField8b) MulAlpha() BinaryField8b {
	return BinaryField8b(mulAlpha(canonical, uint64(x), 8))
}

func (x BinaryField8b) String() string {
	return fmt.Sprintf("%#02x", uint8(x))
}

func (BinaryField16b) Bits() int {
	return 16
}

func (BinaryField16b) AESBasis() bool {
	return false
}

func (x BinaryField16b) Add(y BinaryField16b) BinaryField16b {
	return x ^ y
}

func (x BinaryField16b) IsZero() bool {
	return x == 0
}

func (x BinaryField16b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (BinaryField16b) FromUint128(v uint128.Uint128) BinaryField16b {
	return BinaryField16b(v.Lo)
}

func (x BinaryField16b) Mul(y BinaryField16b) BinaryField16b {
	return BinaryField16b(mul(canonical, uint64(x), uint64(y), 16))
}

func (x BinaryField16b) Square() BinaryField16b {
	return x.Mul(x)
}

func (x BinaryField16b) InvertOrZero() BinaryField16b {
	return BinaryField16b(inv(canonical, uint64(x), 16))
}

func (x BinaryField16b) MulAlpha() BinaryField16b {
	return BinaryField16b(mulAlpha(canonical, uint64(x), 16))
}

func (x BinaryField16b) String() string {
	return fmt.Sprintf("%#04x", uint16(x))
}

func (BinaryField32b) Bits() int {
	return 32
}

func (BinaryField32b) AESBasis() bool {
	return false
}

func (x BinaryField32b) Add(y BinaryField32b) BinaryField32b {
	return x ^ y
}

func (x BinaryField32b) IsZero() bool {
	return x == 0
}

func (x BinaryField32b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (BinaryField32b) FromUint128(v uint128.Uint128) BinaryField32b {
	return BinaryField32b(v.Lo)
}

func (x BinaryField32b) Mul(y BinaryField32b) BinaryField32b {
	return BinaryField32b(mul(canonical, uint64(x), uint64(y), 32))
}

func (x BinaryField32b) Square() BinaryField32b {
	return x.Mul(x)
}

func (x BinaryField32b) InvertOrZero() BinaryField32b {
	return BinaryField32b(inv(canonical, uint64(x), 32))
}

func (x BinaryField32b) MulAlpha() BinaryField32b {
	return BinaryField32b(mulAlpha(canonical, uint64(x), 32))
}

func (x BinaryField32b) String() string {
	return fmt.Sprintf("%#08x", uint32(x))
}

func (BinaryField64b) Bits() int {
	return 64
}

func (BinaryField64b) AESBasis() bool {
	return false
}

func (x BinaryField64b) Add(y BinaryField64b) BinaryField64b {
	return x ^ y
}

func (x BinaryField64b) IsZero() bool {
	return x == 0
}

func (x BinaryField64b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (BinaryField64b) FromUint128(v uint128.Uint128) BinaryField64b {
	return BinaryField64b(v.Lo)
}

func (x BinaryField64b) Mul(y BinaryField64b) BinaryField64b {
	return BinaryField64b(mul(canonical, uint64(x), uint64(y), 64))
}

func (x BinaryField64b) Square() BinaryField64b {
	return x.Mul(x)
}

func (x BinaryField64b) InvertOrZero() BinaryField64b {
	return BinaryField64b(inv(canonical, uint64(x), 64))
}

func (x BinaryField64b) MulAlpha() BinaryField64b {
	return BinaryField64b(mulAlpha(canonical, uint64(x), 64))
}

func (x BinaryField64b) String() string {
	return fmt.Sprintf("%#016x", uint64(x))
}

func (BinaryField128b) Bits() int {
	return 128
}

func (BinaryField128b) AESBasis() bool {
	return false
}

func (x BinaryField128b) Add(y BinaryField128b) BinaryField128b {
	return BinaryField128b(x.Uint128().Xor(y.Uint128()))
}

func (x BinaryField128b) IsZero() bool {
	return x.Uint128().IsZero()
}

func (x BinaryField128b) Uint128() uint128.Uint128 {
	return uint128.Uint128(x)
}

func (BinaryField128b) FromUint128(v uint128.Uint128) BinaryField128b {
	return BinaryField128b(v)
}

func (x BinaryField128b) Mul(y BinaryField128b) BinaryField128b {
	return BinaryField128b(mul128(canonical, x.Uint128(), y.Uint128()))
}

func (x BinaryField128b) Square() BinaryField128b {
	return x.Mul(x)
}

func (x BinaryField128b) InvertOrZero() BinaryField128b {
	return BinaryField128b(inv128(canonical, x.Uint128()))
}

func (x BinaryField128b) MulAlpha() BinaryField128b {
	return BinaryField128b(mulAlpha128(canonical, x.Uint128()))
}

func (x BinaryField128b) String() string {
	return fmt.Sprintf("%#016x%016x", x.Hi, x.Lo)
}
