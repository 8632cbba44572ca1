package towerfield //nolint:testpackage // testing internals

import (
	"crypto/sha3"
	"io"
	"testing"

	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
	"lukechampine.com/uint128"
)

func drbg(label string) io.Reader {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(label))
	return h
}

func randomPacked[W word.Word[W], F tower.Field[F]](tb testing.TB, r io.Reader) Packed[W, F] {
	tb.Helper()
	w, err := word.Random[W](r)
	if err != nil {
		tb.Fatal(err)
	}
	return FromWord[F](w)
}

func randomScalar[F tower.Field[F]](r io.Reader) F {
	var b [16]byte
	_, _ = io.ReadFull(r, b[:])
	return tower.FromUint128[F](uint128.FromBytes(b[:]))
}

func randomBytes(r io.Reader, n int) []byte {
	b := make([]byte, n)
	_, _ = io.ReadFull(r, b)
	return b
}

func expectPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if got := recover(); got != want {
			t.Errorf("panic = %v, want = %q", got, want)
		}
	}()
	f()
}
