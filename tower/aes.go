package tower

import (
	"fmt"

	"lukechampine.com/uint128"
)

// AESTowerField8b is GF(2^8) in the AES-native basis, reduced by x^8 + x^4 + x^3 + x + 1.
type AESTowerField8b uint8

// AESAlpha8b is the image in the AES basis of the tower generator X2 (0x10 in
// BinaryField8b). Multiplying by it is MulAlpha.
const AESAlpha8b AESTowerField8b = 0xd3

// exp and log tables over the generator 0x03.
var aesExp, aesLog = func() (exp, log [256]byte) {
	x := byte(1)
	for i := range 255 {
		exp[i] = x
		log[x] = byte(i)
		x ^= xtime(x)
	}
	exp[255] = exp[0]
	return exp, log
}()

// xtime multiplies a by x.
func xtime(a byte) byte {
	if a&0x80 == 0 {
		return a << 1
	}
	return a<<1 ^ 0x1b
}

func (AESTowerField8b) Bits() int {
	return 8
}

func (AESTowerField8b) AESBasis() bool {
	return true
}

func (x AESTowerField8b) Add(y AESTowerField8b) AESTowerField8b {
	return x ^ y
}

func (x AESTowerField8b) IsZero() bool {
	return x == 0
}

func (x AESTowerField8b) Uint128() uint128.Uint128 {
	return uint128.From64(uint64(x))
}

func (AESTowerField8b) FromUint128(v uint128.Uint128) AESTowerField8b {
	return AESTowerField8b(v.Lo)
}

func (x AESTowerField8b) Mul(y AESTowerField8b) AESTowerField8b {
	if x == 0 || y == 0 {
		return 0
	}
	return AESTowerField8b(aesExp[(int(aesLog[x])+int(aesLog[y]))%255])
}

func (x AESTowerField8b) Square() AESTowerField8b {
	return x.Mul(x)
}

func (x AESTowerField8b) InvertOrZero() AESTowerField8b {
	if x == 0 {
		return 0
	}
	return AESTowerField8b(aesExp[255-int(aesLog[x])])
}

func (x AESTowerField8b) MulAlpha() AESTowerField8b {
	return x.Mul(AESAlpha8b)
}

func (x AESTowerField8b) String() string {
	return fmt.Sprintf("%#02x", uint8(x))
}
