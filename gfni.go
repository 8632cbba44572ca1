package towerfield

import (
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// GFNIStrategy multiplies and inverts 8-bit lanes with the GFNI instructions. ToAES and
// FromAES are the basis-change maps into and out of the AES basis the instructions compute
// in; IdentityMap skips the conversion.
type GFNIStrategy struct {
	ToAES, FromAES uint64
}

var (
	// GFNIBinaryTowerStrategy computes in the canonical tower basis.
	GFNIBinaryTowerStrategy = GFNIStrategy{ToAES: TowerToAESMap, FromAES: AESToTowerMap}
	// GFNIAESTowerStrategy computes in the AES basis, with no basis changes.
	GFNIAESTowerStrategy = GFNIStrategy{ToAES: IdentityMap, FromAES: IdentityMap}
)

// GFNIStrategyFor returns the strategy for 8-bit fields in the given basis.
func GFNIStrategyFor(aesBasis bool) GFNIStrategy {
	if aesBasis {
		return GFNIAESTowerStrategy
	}
	return GFNIBinaryTowerStrategy
}

// MulGFNI multiplies a and b lane by lane. F must be an 8-bit field in the basis s converts
// from.
func MulGFNI[W word.Word[W], F tower.Field[F]](s GFNIStrategy, a, b Packed[W, F]) Packed[W, F] {
	checkGFNIField[F]()
	return Packed[W, F]{gfniMul(s, a.w, b.w)}
}

// SquareGFNI squares a lane by lane.
func SquareGFNI[W word.Word[W], F tower.Field[F]](s GFNIStrategy, a Packed[W, F]) Packed[W, F] {
	checkGFNIField[F]()
	return Packed[W, F]{gfniMul(s, a.w, a.w)}
}

// InvertOrZeroGFNI inverts a lane by lane, mapping zero lanes to zero.
func InvertOrZeroGFNI[W word.Word[W], F tower.Field[F]](s GFNIStrategy, a Packed[W, F]) Packed[W, F] {
	checkGFNIField[F]()
	return Packed[W, F]{gfniInvert(s, a.w)}
}

func gfniMul[W word.Word[W]](s GFNIStrategy, a, b W) W {
	if s.ToAES != IdentityMap {
		toAES := word.Broadcast64[W](s.ToAES)
		a, b = a.GF2P8Affine(toAES), b.GF2P8Affine(toAES)
	}

	p := a.GF2P8Mul(b)
	if s.FromAES != IdentityMap {
		p = p.GF2P8Affine(word.Broadcast64[W](s.FromAES))
	}
	return p
}

func gfniInvert[W word.Word[W]](s GFNIStrategy, a W) W {
	if s.ToAES != IdentityMap {
		a = a.GF2P8Affine(word.Broadcast64[W](s.ToAES))
	}

	// The inverse-then-affine instruction folds the conversion back out of the AES basis.
	return a.GF2P8AffineInv(word.Broadcast64[W](s.FromAES))
}

func checkGFNIField[F tower.Field[F]]() {
	if tower.Bits[F]() != 8 {
		panic("towerfield: GFNI arithmetic requires an 8-bit field")
	}
}
