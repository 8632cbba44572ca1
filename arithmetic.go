package towerfield

import (
	"fmt"

	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// Arithmetic is the lane-wise field arithmetic of packed elements of F held in words of type W.
type Arithmetic[W word.Word[W], F tower.Field[F]] interface {
	Mul(a, b Packed[W, F]) Packed[W, F]
	Square(a Packed[W, F]) Packed[W, F]
	InvertOrZero(a Packed[W, F]) Packed[W, F]
	MulAlpha(a Packed[W, F]) Packed[W, F]
}

// Strategy identifies how a packed field computes its arithmetic.
type Strategy int

const (
	// StrategyPairwise computes products and inverses one lane at a time with the scalar
	// field, and squares and alpha multiples with a GFNI transformation.
	StrategyPairwise Strategy = iota
	// StrategyGFNITower computes with the GFNI instructions after a change into the AES basis.
	StrategyGFNITower
	// StrategyGFNIAES computes with the GFNI instructions directly.
	StrategyGFNIAES
)

// StrategyFor returns the strategy for fields of the given bit width and basis.
func StrategyFor(bits int, aesBasis bool) Strategy {
	switch {
	case bits != 8:
		return StrategyPairwise
	case aesBasis:
		return StrategyGFNIAES
	default:
		return StrategyGFNITower
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyPairwise:
		return "pairwise"
	case StrategyGFNITower:
		return "gfni-tower"
	case StrategyGFNIAES:
		return "gfni-aes"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ArithmeticFor returns the arithmetic StrategyFor selects for F.
func ArithmeticFor[W word.Word[W], F tower.Field[F]]() Arithmetic[W, F] {
	var f F
	if StrategyFor(f.Bits(), f.AESBasis()) == StrategyPairwise {
		return NewPairwiseArithmetic[W, F]()
	}
	return NewGFNIArithmetic[W, F]()
}

// GFNIArithmetic computes the arithmetic of an 8-bit field with the GFNI instructions.
type GFNIArithmetic[W word.Word[W], F tower.Field[F]] struct {
	strategy GFNIStrategy
	alpha    GFNITransformation[W]
}

// NewGFNIArithmetic returns the GFNI arithmetic for F. It panics unless F is an 8-bit field.
func NewGFNIArithmetic[W word.Word[W], F tower.Field[F]]() GFNIArithmetic[W, F] {
	checkGFNIField[F]()
	var f F
	return GFNIArithmetic[W, F]{
		strategy: GFNIStrategyFor(f.AESBasis()),
		alpha:    NewGFNITransformation[W](mulAlphaTransformation[F]()),
	}
}

func (a GFNIArithmetic[W, F]) Mul(x, y Packed[W, F]) Packed[W, F] {
	return MulGFNI(a.strategy, x, y)
}

func (a GFNIArithmetic[W, F]) Square(x Packed[W, F]) Packed[W, F] {
	return SquareGFNI(a.strategy, x)
}

func (a GFNIArithmetic[W, F]) InvertOrZero(x Packed[W, F]) Packed[W, F] {
	return InvertOrZeroGFNI(a.strategy, x)
}

func (a GFNIArithmetic[W, F]) MulAlpha(x Packed[W, F]) Packed[W, F] {
	return TransformPacked[F, W, F](a.alpha, x)
}

// PairwiseArithmetic multiplies and inverts lane by lane with the scalar field. Squaring and
// multiplication by alpha are linear in characteristic 2, so both run as transformations.
type PairwiseArithmetic[W word.Word[W], F tower.Field[F]] struct {
	square, alpha Transformation[W]
}

// NewPairwiseArithmetic returns the pairwise arithmetic for F.
func NewPairwiseArithmetic[W word.Word[W], F tower.Field[F]]() PairwiseArithmetic[W, F] {
	return PairwiseArithmetic[W, F]{
		square: MakePackedTransformation[W](linearTransformation(func(x F) F { return x.Square() })),
		alpha:  MakePackedTransformation[W](mulAlphaTransformation[F]()),
	}
}

func (a PairwiseArithmetic[W, F]) Mul(x, y Packed[W, F]) Packed[W, F] {
	var out Packed[W, F]
	for i := range x.Lanes() {
		out = out.Set(i, x.Get(i).Mul(y.Get(i)))
	}
	return out
}

func (a PairwiseArithmetic[W, F]) Square(x Packed[W, F]) Packed[W, F] {
	return TransformPacked[F, W, F](a.square, x)
}

func (a PairwiseArithmetic[W, F]) InvertOrZero(x Packed[W, F]) Packed[W, F] {
	var out Packed[W, F]
	for i := range x.Lanes() {
		out = out.Set(i, x.Get(i).InvertOrZero())
	}
	return out
}

func (a PairwiseArithmetic[W, F]) MulAlpha(x Packed[W, F]) Packed[W, F] {
	return TransformPacked[F, W, F](a.alpha, x)
}

func mulAlphaTransformation[F tower.Field[F]]() FieldAffineTransformation[F] {
	return linearTransformation(func(x F) F { return x.MulAlpha() })
}

// linearTransformation tabulates the linear map f by its images of the basis elements.
func linearTransformation[F tower.Field[F]](f func(F) F) FieldAffineTransformation[F] {
	bases := make([]F, tower.Bits[F]())
	for i := range bases {
		bases[i] = f(tower.Basis[F](i))
	}
	return FieldAffineTransformation[F]{bases: bases}
}

// Packed arithmetic dispatches through the arithmetic registered for each (W, F) pair.
//
//nolint:gochecknoglobals // filled once by init
var arithmetics = map[any]any{}

func register[W word.Word[W], F tower.Field[F]](a Arithmetic[W, F]) {
	arithmetics[Packed[W, F]{}] = a
}

func arithmeticOf[W word.Word[W], F tower.Field[F]]() Arithmetic[W, F] {
	a, ok := arithmetics[Packed[W, F]{}]
	if !ok {
		var (
			w W
			f F
		)
		panic(fmt.Sprintf("towerfield: no arithmetic for %d-bit lanes in %d-bit words", f.Bits(), w.Bits()))
	}
	return a.(Arithmetic[W, F])
}

// Mul returns the lane-wise product of p and q.
func (p Packed[W, F]) Mul(q Packed[W, F]) Packed[W, F] {
	return arithmeticOf[W, F]().Mul(p, q)
}

// Square returns the lane-wise square of p.
func (p Packed[W, F]) Square() Packed[W, F] {
	return arithmeticOf[W, F]().Square(p)
}

// InvertOrZero returns the lane-wise inverse of p, with zero lanes left zero.
func (p Packed[W, F]) InvertOrZero() Packed[W, F] {
	return arithmeticOf[W, F]().InvertOrZero(p)
}

// MulAlpha multiplies every lane of p by the generator of F over its subfield.
func (p Packed[W, F]) MulAlpha() Packed[W, F] {
	return arithmeticOf[W, F]().MulAlpha(p)
}
