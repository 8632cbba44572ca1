package towerfield

import (
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// FieldAffineTransformation is a linear map over the field F, given by the images of the
// standard basis vectors: bases[i] is the image of the element with only bit i set.
type FieldAffineTransformation[F tower.Field[F]] struct {
	bases []F
}

// NewFieldAffineTransformation returns the linear map with the given basis images. It panics
// unless len(bases) is the bit width of F.
func NewFieldAffineTransformation[F tower.Field[F]](bases []F) FieldAffineTransformation[F] {
	if len(bases) != tower.Bits[F]() {
		panic("towerfield: basis count does not match field width")
	}
	return FieldAffineTransformation[F]{bases: append([]F(nil), bases...)}
}

// IdentityTransformation returns the identity map over F.
func IdentityTransformation[F tower.Field[F]]() FieldAffineTransformation[F] {
	bases := make([]F, tower.Bits[F]())
	for i := range bases {
		bases[i] = tower.Basis[F](i)
	}
	return FieldAffineTransformation[F]{bases: bases}
}

// Bases returns a copy of the basis images.
func (t FieldAffineTransformation[F]) Bases() []F {
	return append([]F(nil), t.bases...)
}

// Apply evaluates the map on a single element.
func (t FieldAffineTransformation[F]) Apply(x F) F {
	var r F
	v := x.Uint128()
	for i, b := range t.bases {
		if v.Rsh(uint(i)).Lo&1 != 0 {
			r = r.Add(b)
		}
	}
	return r
}

// A Transformation applies a linear map to every lane of a word. Implementations are immutable
// once built and safe for concurrent use.
type Transformation[W word.Word[W]] interface {
	Transform(w W) W
}

// TransformPacked applies t to every lane of p, reinterpreting the result as elements of OF.
func TransformPacked[OF tower.Field[OF], W word.Word[W], IF tower.Field[IF]](t Transformation[W], p Packed[W, IF]) Packed[W, OF] {
	return Packed[W, OF]{t.Transform(p.w)}
}

// MakePackedTransformation builds the GFNI transformation applying m to packed elements of F
// held in words of type W, selected by the byte width of F.
func MakePackedTransformation[W word.Word[W], F tower.Field[F]](m FieldAffineTransformation[F]) Transformation[W] {
	if tower.Bits[F]() == 8 {
		return NewGFNITransformation[W](m)
	}
	return NewGFNITransformationNxN[W](m)
}
