package towerfield

import (
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// GFNITransformation applies a linear map over an 8-bit field to every byte of a word with a
// single affine instruction.
type GFNITransformation[W word.Word[W]] struct {
	matrix W
}

// NewGFNITransformation builds the transformation for m. It panics unless F is an 8-bit field.
func NewGFNITransformation[W word.Word[W], F tower.Field[F]](m FieldAffineTransformation[F]) GFNITransformation[W] {
	if tower.Bits[F]() != 8 || len(m.bases) != 8 {
		panic("towerfield: GFNI transformation requires an 8-bit field")
	}

	var bases uint64
	for i, b := range m.bases {
		bases |= (b.Uint128().Lo & 0xff) << (8 * i)
	}
	return GFNITransformation[W]{matrix: word.Broadcast64[W](transpose8x8(bases))}
}

// Transform applies the map to every byte of w.
func (t GFNITransformation[W]) Transform(w W) W {
	return w.GF2P8Affine(t.matrix)
}

// GFNITransformationNxN applies a linear map over a field of N bytes (N in 2, 4, 8, 16). The
// map is split into an NxN grid of 8x8 blocks, where block (i, j) carries the contribution of
// input byte i to output byte j.
type GFNITransformationNxN[W word.Word[W]] struct {
	n    int
	grid [16][16]W // grid[i][j] for i, j < n
}

// NewGFNITransformationNxN builds the transformation for m. It panics unless F is 16, 32, 64
// or 128 bits wide.
func NewGFNITransformationNxN[W word.Word[W], F tower.Field[F]](m FieldAffineTransformation[F]) *GFNITransformationNxN[W] {
	bits := tower.Bits[F]()
	switch bits {
	case 16, 32, 64, 128:
	default:
		panic("towerfield: NxN transformation requires a 16- to 128-bit field")
	}
	if len(m.bases) != bits {
		panic("towerfield: basis count does not match field width")
	}

	n := bits / 8
	images := make([][16]byte, len(m.bases))
	for k, b := range m.bases {
		b.Uint128().PutBytes(images[k][:])
	}

	t := &GFNITransformationNxN[W]{n: n}
	for i := range n {
		for j := range n {
			var block uint64
			for k := range 8 {
				block |= uint64(images[k+8*i][j]) << (8 * k)
			}
			t.grid[i][j] = word.Broadcast64[W](transpose8x8(block))
		}
	}
	return t
}

// Transform applies the map to every N-byte lane of w.
func (t *GFNITransformationNxN[W]) Transform(w W) W {
	var buf [16]W
	values := buf[:t.n]
	for i := range values {
		var v W
		for j := range t.n {
			// Input byte j lands in output byte i.
			v = v.Xor(shiftBytes(w.GF2P8Affine(t.grid[j][i]), i-j))
		}
		values[i] = v
	}
	return blendValues(values)
}

// transpose8x8 transposes the 8x8 bit matrix whose row i is byte i of m into the layout
// GF2P8AFFINEQB expects, where byte 7-j holds the row producing output bit j.
func transpose8x8(m uint64) uint64 {
	var r uint64
	for i := range 8 {
		for j := range 8 {
			r |= (m & 1) << ((7-j)*8 + i)
			m >>= 1
		}
	}
	return r
}

// shiftBytes shifts each 128-bit lane of w by count bytes: left for positive counts, right for
// negative ones.
func shiftBytes[W word.Word[W]](w W, count int) W {
	switch {
	case count == 0:
		return w
	case count > 0 && count < 16:
		return w.ByteShiftLeftLanes(uint(count))
	case count < 0 && count > -16:
		return w.ByteShiftRightLanes(uint(-count))
	default:
		panic("towerfield: unsupported byte shift")
	}
}

// blendValues returns the word whose byte i (mod len(values)) comes from values[i].
func blendValues[W word.Word[W]](values []W) W {
	switch len(values) {
	case 1:
		return values[0]
	case 2:
		return word.Blend(values[1], values[0], 3)
	case 4:
		return word.Blend(blendValues(values[2:4]), blendValues(values[0:2]), 4)
	case 8:
		return word.Blend(blendValues(values[4:8]), blendValues(values[0:4]), 5)
	case 16:
		return word.Blend(blendValues(values[8:16]), blendValues(values[0:8]), 6)
	default:
		panic("towerfield: unsupported blend height")
	}
}
