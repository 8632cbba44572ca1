package towerfield

import (
	"github.com/codahale/towerfield/internal/mem"
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// bulkWidth is the word width the slice functions process with.
//
//nolint:gochecknoglobals // should only check once
var bulkWidth = DetectCapability().MaxWidth

// AddBytes sets dst to the element-wise sum of a and b. The sum is the same in every basis
// and for every field width. It panics if the slices differ in length.
func AddBytes(dst, a, b []byte) {
	checkLengths(len(dst), len(a), len(b))
	mem.XOR(dst, a, b)
}

// MulBytes sets dst to the element-wise product of a and b, each byte an element of the 8-bit
// field F. It panics if the slices differ in length or F is not an 8-bit field.
func MulBytes[F tower.Field[F]](dst, a, b []byte) {
	checkGFNIField[F]()
	checkLengths(len(dst), len(a), len(b))

	switch bulkWidth {
	case Width512:
		mulBytes[word.M512, F](dst, a, b)
	case Width256:
		mulBytes[word.M256, F](dst, a, b)
	default:
		mulBytes[word.M128, F](dst, a, b)
	}
}

// InvertBytes sets dst to the element-wise inverse of a, each byte an element of the 8-bit
// field F. Zero bytes stay zero. It panics if the slices differ in length or F is not an
// 8-bit field.
func InvertBytes[F tower.Field[F]](dst, a []byte) {
	checkGFNIField[F]()
	checkLengths(len(dst), len(a), len(a))

	switch bulkWidth {
	case Width512:
		invertBytes[word.M512, F](dst, a)
	case Width256:
		invertBytes[word.M256, F](dst, a)
	default:
		invertBytes[word.M128, F](dst, a)
	}
}

// TransformBytes sets dst to the image of src under m, with src holding little-endian
// elements of F. It panics if the slices differ in length or their length is not a whole
// number of elements.
func TransformBytes[F tower.Field[F]](dst, src []byte, m FieldAffineTransformation[F]) {
	checkLengths(len(dst), len(src), len(src))
	if len(src)%(tower.Bits[F]()/8) != 0 {
		panic("towerfield: length is not a whole number of elements")
	}

	switch bulkWidth {
	case Width512:
		transformBytes[word.M512](dst, src, m)
	case Width256:
		transformBytes[word.M256](dst, src, m)
	default:
		transformBytes[word.M128](dst, src, m)
	}
}

func mulBytes[W word.Word[W], F tower.Field[F]](dst, a, b []byte) {
	arith := arithmeticOf[W, F]()
	mapWords(dst, a, b, func(x, y W) W {
		return arith.Mul(FromWord[F](x), FromWord[F](y)).Word()
	})
}

func invertBytes[W word.Word[W], F tower.Field[F]](dst, a []byte) {
	arith := arithmeticOf[W, F]()
	mapWords(dst, a, a, func(x, _ W) W {
		return arith.InvertOrZero(FromWord[F](x)).Word()
	})
}

func transformBytes[W word.Word[W], F tower.Field[F]](dst, src []byte, m FieldAffineTransformation[F]) {
	t := MakePackedTransformation[W](m)
	mapWords(dst, src, src, func(x, _ W) W {
		return t.Transform(x)
	})
}

// mapWords sets dst to f applied to successive words of a and b. A partial final word is
// zero-padded, and only its leading bytes are written to dst.
func mapWords[W word.Word[W]](dst, a, b []byte, f func(x, y W) W) {
	var w W
	n := w.Size()
	for len(a) >= n {
		f(word.FromBytes[W](a[:n]), word.FromBytes[W](b[:n])).PutBytes(dst[:n])
		dst, a, b = dst[n:], a[n:], b[n:]
	}

	if len(a) == 0 {
		return
	}

	var x, y, z [64]byte
	f(word.FromBytes[W](mem.Pad(x[:], a, n)), word.FromBytes[W](mem.Pad(y[:], b, n))).PutBytes(z[:n])
	copy(dst, z[:len(a)])
}

func checkLengths(dst, a, b int) {
	if dst != a || a != b {
		panic("towerfield: mismatched slice lengths")
	}
}
