// Package mem provides the byte-slice helpers the word and slice APIs share.
package mem

import (
	"crypto/subtle"
	"slices"
)

// XOR sets dst to a XOR b, which is element-wise addition in every binary field. Slices of
// more than 16 bytes go through subtle.XORBytes; shorter ones use a scalar loop. The slices
// must have equal lengths, and dst may alias a or b exactly.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a slice with the
// contents of the given slice followed by that many bytes and a second slice that aliases into
// it and contains only the extra bytes. If the original slice has sufficient capacity, then no
// allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}

// Pad copies src into the first n bytes of buf, zeroes the rest of those n bytes and returns
// them. It is used to widen a partial trailing word to a full one.
func Pad(buf []byte, src []byte, n int) []byte {
	buf = buf[:n]
	m := copy(buf, src)
	clear(buf[m:])
	return buf
}
