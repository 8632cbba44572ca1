// Package towerfield provides vectorized arithmetic over binary tower fields GF(2^(2^k)), with
// many field elements packed into 128-, 256- or 512-bit words.
//
// Eight-bit fields multiply and invert with the [GFNI] instructions: operands are mapped from
// the canonical tower basis into the AES basis the instructions compute in, multiplied with
// GF2P8MULB, and mapped back, while inversion folds the return trip into a single
// GF2P8AFFINEINVQB. Fields already in the AES basis skip the basis changes. Arbitrary linear
// maps over fields of 8 to 128 bits are applied with GF2P8AFFINEQB, wider fields by splitting
// the map into a grid of 8x8 bit matrices and recombining the partial results with byte shifts
// and blends.
//
// The instructions are implemented in portable Go with their documented semantics, lane by
// lane. [DetectCapability] reports what the current CPU implements natively, and the slice
// functions ([MulBytes], [InvertBytes], [TransformBytes]) use the widest word it supports.
//
// [GFNI]: https://www.intel.com/content/www/us/en/docs/intrinsics-guide/index.html#othertechs=GFNI
package towerfield
