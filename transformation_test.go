package towerfield //nolint:testpackage // testing internals

import (
	"io"
	"slices"
	"testing"

	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
	"lukechampine.com/uint128"
)

func TestTranspose8x8(t *testing.T) {
	// Row i of the identity matrix is 1<<i.
	if got, want := transpose8x8(0x8040201008040201), IdentityMap; got != want {
		t.Errorf("transpose8x8(identity) = %#016x, want = %#016x", got, want)
	}

	if got, want := transpose8x8(0), uint64(0); got != want {
		t.Errorf("transpose8x8(0) = %#016x, want = %#016x", got, want)
	}

	// Every input bit maps to a distinct output bit.
	var seen uint64
	for i := range 64 {
		r := transpose8x8(1 << i)
		if r&(r-1) != 0 || r&seen != 0 {
			t.Fatalf("transpose8x8(1<<%d) = %#016x", i, r)
		}
		seen |= r
	}
}

func TestGFNITransformationAgreesWithApply(t *testing.T) {
	r := drbg("gfni transformation")
	m := randomTransformation[tower.BinaryField8b](r)
	tr := NewGFNITransformation[word.M128](m)

	for base := 0; base < 256; base += 16 {
		var x PackedBinaryField16x8b
		for i := range 16 {
			x = x.Set(i, tower.BinaryField8b(base+i))
		}

		y := TransformPacked[tower.BinaryField8b, word.M128](tr, x)
		for i := range 16 {
			if got, want := y.Get(i), m.Apply(x.Get(i)); got != want {
				t.Errorf("T(%v) = %v, want = %v", x.Get(i), got, want)
			}
		}
	}
}

func TestTransformations(t *testing.T) {
	t.Run("8b/M128", testTransformation[word.M128, tower.BinaryField8b])
	t.Run("16b/M128", testTransformation[word.M128, tower.BinaryField16b])
	t.Run("32b/M128", testTransformation[word.M128, tower.BinaryField32b])
	t.Run("64b/M128", testTransformation[word.M128, tower.BinaryField64b])
	t.Run("128b/M128", testTransformation[word.M128, tower.BinaryField128b])
	t.Run("aes/8b/M128", testTransformation[word.M128, tower.AESTowerField8b])
	t.Run("aes/16b/M128", testTransformation[word.M128, tower.AESTowerField16b])
	t.Run("aes/32b/M256", testTransformation[word.M256, tower.AESTowerField32b])
	t.Run("aes/64b/M512", testTransformation[word.M512, tower.AESTowerField64b])
	t.Run("aes/128b/M128", testTransformation[word.M128, tower.AESTowerField128b])
	t.Run("8b/M256", testTransformation[word.M256, tower.BinaryField8b])
	t.Run("32b/M256", testTransformation[word.M256, tower.BinaryField32b])
	t.Run("128b/M256", testTransformation[word.M256, tower.BinaryField128b])
	t.Run("16b/M512", testTransformation[word.M512, tower.BinaryField16b])
	t.Run("64b/M512", testTransformation[word.M512, tower.BinaryField64b])
	t.Run("128b/M512", testTransformation[word.M512, tower.BinaryField128b])
}

func testTransformation[W word.Word[W], F tower.Field[F]](t *testing.T) {
	r := drbg("transformation")

	t.Run("identity", func(t *testing.T) {
		id := MakePackedTransformation[W](IdentityTransformation[F]())
		for range 10 {
			x := randomPacked[W, F](t, r)
			if got := id.Transform(x.Word()); got != x.Word() {
				t.Errorf("I(%v) = %v", x, got)
			}
		}
	})

	t.Run("apply", func(t *testing.T) {
		m := randomTransformation[F](r)
		tr := MakePackedTransformation[W](m)
		for range 5 {
			x := randomPacked[W, F](t, r)
			y := TransformPacked[F](tr, x)
			for i := range x.Lanes() {
				if got, want := y.Get(i), m.Apply(x.Get(i)); got != want {
					t.Errorf("lane %d: T(%v) = %v, want = %v", i, x.Get(i), got, want)
				}
			}
		}
	})

	t.Run("linearity", func(t *testing.T) {
		tr := MakePackedTransformation[W](randomTransformation[F](r))
		var zero W
		if got := tr.Transform(zero); !got.IsZero() {
			t.Errorf("T(0) = %v, want = 0", got)
		}

		for range 5 {
			a, b := randomPacked[W, F](t, r).Word(), randomPacked[W, F](t, r).Word()
			if got, want := tr.Transform(a.Xor(b)), tr.Transform(a).Xor(tr.Transform(b)); got != want {
				t.Errorf("T(a+b) = %v, want = %v", got, want)
			}
		}
	})

	t.Run("inverse", func(t *testing.T) {
		m, inv := randomInvertibleTransformation[F](r)
		for range 10 {
			x := randomScalar[F](r)
			if got := inv.Apply(m.Apply(x)); got != x {
				t.Errorf("T^-1(T(%v)) = %v", x, got)
			}
		}

		fwd, back := MakePackedTransformation[W](m), MakePackedTransformation[W](inv)
		for range 5 {
			x := randomPacked[W, F](t, r).Word()
			if got := back.Transform(fwd.Transform(x)); got != x {
				t.Errorf("T^-1(T(%v)) = %v", x, got)
			}
		}
	})
}

func TestFieldAffineTransformation(t *testing.T) {
	bases := []tower.BinaryField8b{1, 2, 4, 8, 16, 32, 64, 128}
	m := NewFieldAffineTransformation(bases)
	bases[0] = 0xff

	if got, want := m.Bases(), IdentityTransformation[tower.BinaryField8b]().Bases(); !slices.Equal(got, want) {
		t.Errorf("Bases() = %v, want = %v", got, want)
	}

	m.Bases()[1] = 0xff
	if got, want := m.Apply(0x02), tower.BinaryField8b(0x02); got != want {
		t.Errorf("Apply(0x02) = %v, want = %v", got, want)
	}
}

func TestTransformationConstructionPanics(t *testing.T) {
	tests := []struct {
		name string
		want string
		f    func()
	}{
		{
			name: "short bases",
			want: "towerfield: basis count does not match field width",
			f: func() {
				NewFieldAffineTransformation([]tower.BinaryField16b{1, 2, 3})
			},
		},
		{
			name: "wide field in 8x8",
			want: "towerfield: GFNI transformation requires an 8-bit field",
			f: func() {
				NewGFNITransformation[word.M128](IdentityTransformation[tower.BinaryField16b]())
			},
		},
		{
			name: "8-bit field in NxN",
			want: "towerfield: NxN transformation requires a 16- to 128-bit field",
			f: func() {
				NewGFNITransformationNxN[word.M128](IdentityTransformation[tower.BinaryField8b]())
			},
		},
		{
			name: "mismatched NxN bases",
			want: "towerfield: basis count does not match field width",
			f: func() {
				NewGFNITransformationNxN[word.M128](FieldAffineTransformation[tower.BinaryField32b]{
					bases: make([]tower.BinaryField32b, 16),
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, tt.want, tt.f)
		})
	}
}

func TestGFNITransformationNxNGrid(t *testing.T) {
	tr := NewGFNITransformationNxN[word.M256](IdentityTransformation[tower.AESTowerField16b]())
	if got, want := tr.n, 2; got != want {
		t.Fatalf("n = %d, want = %d", got, want)
	}

	identity := word.Broadcast64[word.M256](IdentityMap)
	for i := range 16 {
		for j := range 16 {
			want := word.M256{}
			if i == j && i < tr.n {
				want = identity
			}

			if got := tr.grid[i][j]; got != want {
				t.Errorf("grid[%d][%d] = %v, want = %v", i, j, got, want)
			}
		}
	}
}

func TestShiftBytes(t *testing.T) {
	w := word.NewM256(uint128.New(0x0807060504030201, 0x100f0e0d0c0b0a09), uint128.New(0x1817161514131211, 0x201f1e1d1c1b1a19))

	for _, count := range []int{1, 3, 8, 15} {
		if got, want := shiftBytes(w, count), w.ByteShiftLeftLanes(uint(count)); got != want {
			t.Errorf("shiftBytes(w, %d) = %v, want = %v", count, got, want)
		}

		if got, want := shiftBytes(w, -count), w.ByteShiftRightLanes(uint(count)); got != want {
			t.Errorf("shiftBytes(w, %d) = %v, want = %v", -count, got, want)
		}
	}

	if got := shiftBytes(w, 0); got != w {
		t.Errorf("shiftBytes(w, 0) = %v, want = %v", got, w)
	}

	for _, count := range []int{16, -16, 100} {
		expectPanic(t, "towerfield: unsupported byte shift", func() {
			shiftBytes(w, count)
		})
	}
}

func TestBlendValues(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16} {
		values := make([]word.M512, n)
		for i := range values {
			values[i] = word.Broadcast64[word.M512](0x0101010101010101 * uint64(i+1))
		}

		var b [64]byte
		blendValues(values).PutBytes(b[:])
		for p, got := range b {
			if want := byte(p%n + 1); got != want {
				t.Errorf("n=%d: byte %d = %d, want = %d", n, p, got, want)
			}
		}
	}

	expectPanic(t, "towerfield: unsupported blend height", func() {
		blendValues(make([]word.M128, 3))
	})
}

func randomTransformation[F tower.Field[F]](r io.Reader) FieldAffineTransformation[F] {
	bases := make([]F, tower.Bits[F]())
	for i := range bases {
		bases[i] = randomScalar[F](r)
	}
	return NewFieldAffineTransformation(bases)
}

// randomInvertibleTransformation returns a random invertible map and its inverse, found by
// Gauss-Jordan elimination on (image, preimage) pairs.
func randomInvertibleTransformation[F tower.Field[F]](r io.Reader) (m, inv FieldAffineTransformation[F]) {
	n := tower.Bits[F]()
	for {
		m = randomTransformation[F](r)

		img := make([]uint128.Uint128, n)
		pre := make([]uint128.Uint128, n)
		for i, b := range m.bases {
			img[i], pre[i] = b.Uint128(), uint128.From64(1).Lsh(uint(i))
		}

		if !gaussJordan(img, pre) {
			continue
		}

		bases := make([]F, n)
		for i := range bases {
			bases[i] = tower.FromUint128[F](pre[i])
		}
		return m, NewFieldAffineTransformation(bases)
	}
}

// gaussJordan reduces img to the identity, applying the same row operations to pre. It
// reports false if img is singular.
func gaussJordan(img, pre []uint128.Uint128) bool {
	for bit := range img {
		p := -1
		for q := bit; q < len(img); q++ {
			if img[q].Rsh(uint(bit)).Lo&1 != 0 {
				p = q
				break
			}
		}
		if p < 0 {
			return false
		}

		img[bit], img[p] = img[p], img[bit]
		pre[bit], pre[p] = pre[p], pre[bit]
		for q := range img {
			if q != bit && img[q].Rsh(uint(bit)).Lo&1 != 0 {
				img[q] = img[q].Xor(img[bit])
				pre[q] = pre[q].Xor(pre[bit])
			}
		}
	}
	return true
}
