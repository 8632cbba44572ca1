package towerfield //nolint:testpackage // testing internals

import (
	"testing"

	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

func TestMulGFNI(t *testing.T) {
	t.Run("tower/M128", testMulGFNI[word.M128, tower.BinaryField8b])
	t.Run("tower/M256", testMulGFNI[word.M256, tower.BinaryField8b])
	t.Run("tower/M512", testMulGFNI[word.M512, tower.BinaryField8b])
	t.Run("aes/M128", testMulGFNI[word.M128, tower.AESTowerField8b])
	t.Run("aes/M256", testMulGFNI[word.M256, tower.AESTowerField8b])
	t.Run("aes/M512", testMulGFNI[word.M512, tower.AESTowerField8b])
}

func testMulGFNI[W word.Word[W], F tower.Field[F]](t *testing.T) {
	var f F
	s := GFNIStrategyFor(f.AESBasis())
	lanes := Packed[W, F]{}.Lanes()

	for a := range 256 {
		x := Broadcast[W](tower.FromUint64[F](uint64(a)))
		for base := 0; base < 256; base += lanes {
			var y Packed[W, F]
			for i := range lanes {
				y = y.Set(i, tower.FromUint64[F](uint64((base+i)%256)))
			}

			p := MulGFNI(s, x, y)
			for i := range lanes {
				if got, want := p.Get(i), x.Get(i).Mul(y.Get(i)); got != want {
					t.Fatalf("%v*%v = %v, want = %v", x.Get(i), y.Get(i), got, want)
				}
			}
		}
	}
}

func TestInvertOrZeroGFNI(t *testing.T) {
	t.Run("tower/M128", testInvertOrZeroGFNI[word.M128, tower.BinaryField8b])
	t.Run("tower/M512", testInvertOrZeroGFNI[word.M512, tower.BinaryField8b])
	t.Run("aes/M128", testInvertOrZeroGFNI[word.M128, tower.AESTowerField8b])
	t.Run("aes/M256", testInvertOrZeroGFNI[word.M256, tower.AESTowerField8b])
}

func testInvertOrZeroGFNI[W word.Word[W], F tower.Field[F]](t *testing.T) {
	var f F
	s := GFNIStrategyFor(f.AESBasis())
	lanes := Packed[W, F]{}.Lanes()

	for base := 0; base < 256; base += lanes {
		var x Packed[W, F]
		for i := range lanes {
			x = x.Set(i, tower.FromUint64[F](uint64((base+i)%256)))
		}

		inv, sq := InvertOrZeroGFNI(s, x), SquareGFNI(s, x)
		for i := range lanes {
			if got, want := inv.Get(i), x.Get(i).InvertOrZero(); got != want {
				t.Errorf("%v^-1 = %v, want = %v", x.Get(i), got, want)
			}

			if got, want := sq.Get(i), x.Get(i).Square(); got != want {
				t.Errorf("%v^2 = %v, want = %v", x.Get(i), got, want)
			}
		}
	}
}

func TestInvertOrZeroGFNIZero(t *testing.T) {
	var zero PackedBinaryField16x8b
	if got := InvertOrZeroGFNI(GFNIBinaryTowerStrategy, zero); !got.Word().IsZero() {
		t.Errorf("0^-1 = %v, want = 0", got)
	}
}

func TestGFNIStrategyFor(t *testing.T) {
	if got, want := GFNIStrategyFor(false), GFNIBinaryTowerStrategy; got != want {
		t.Errorf("GFNIStrategyFor(false) = %v, want = %v", got, want)
	}

	if got, want := GFNIStrategyFor(true), GFNIAESTowerStrategy; got != want {
		t.Errorf("GFNIStrategyFor(true) = %v, want = %v", got, want)
	}
}

func TestMulGFNIWideField(t *testing.T) {
	var x PackedBinaryField8x16b
	expectPanic(t, "towerfield: GFNI arithmetic requires an 8-bit field", func() {
		MulGFNI(GFNIBinaryTowerStrategy, x, x)
	})
}

func TestMulGFNIMixedStrategy(t *testing.T) {
	strategies := []GFNIStrategy{
		{ToAES: IdentityMap, FromAES: AESToTowerMap},
		{ToAES: TowerToAESMap, FromAES: IdentityMap},
	}

	for _, s := range strategies {
		for a := range 256 {
			x := Broadcast[word.M128](tower.AESTowerField8b(a))
			for base := 0; base < 256; base += 16 {
				var y PackedAESBinaryField16x8b
				for i := range 16 {
					y = y.Set(i, tower.AESTowerField8b(base+i))
				}

				p := MulGFNI(s, x, y)
				for i := range 16 {
					b := byte(base + i)
					want := ApplyMap(s.FromAES, word.MulByte(ApplyMap(s.ToAES, byte(a)), ApplyMap(s.ToAES, b)))
					if got := byte(p.Get(i)); got != want {
						t.Fatalf("%#x: %#02x*%#02x = %#02x, want = %#02x", s, a, b, got, want)
					}
				}
			}
		}
	}
}

func TestMulGFNIOutputMapOnly(t *testing.T) {
	s := GFNIStrategy{ToAES: IdentityMap, FromAES: AESToTowerMap}
	x := Broadcast[word.M128](tower.AESTowerField8b(0x57))
	y := Broadcast[word.M128](tower.AESTowerField8b(0x83))

	if got, want := MulGFNI(s, x, y).Get(0), tower.AESTowerField8b(0x75); got != want {
		t.Errorf("0x57*0x83 = %v, want = %v", got, want)
	}

	if got, want := InvertOrZeroGFNI(s, x).Get(0), tower.AESTowerField8b(0x3f); got != want {
		t.Errorf("0x57^-1 = %v, want = %v", got, want)
	}
}
