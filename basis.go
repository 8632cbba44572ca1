package towerfield

import "github.com/codahale/towerfield/internal/word"

// The basis-change maps are 8x8 bit matrices in the layout GF2P8AFFINEQB expects: byte 7-i of
// the matrix selects the input bits summed into output bit i. They must match the tower
// construction in package tower exactly, otherwise every product and inverse is computed in a
// different field.
const (
	// TowerToAESMap maps GF(2^8) from the canonical tower basis to the AES basis.
	//
	//	00111110
	//	10011000
	//	01001110
	//	10010110
	//	11101010
	//	01101010
	//	01010000
	//	00110001
	TowerToAESMap uint64 = 0x31506aea964e983e

	// AESToTowerMap maps GF(2^8) from the AES basis to the canonical tower basis.
	//
	//	00001100
	//	01110000
	//	10100010
	//	01110010
	//	00111110
	//	10000110
	//	11101000
	//	11010001
	AESToTowerMap uint64 = 0xd1e8863e72a2700c

	// IdentityMap leaves every byte unchanged. It stands in for the basis change of fields
	// already expressed in the AES basis.
	IdentityMap uint64 = 0x0102040810204080
)

// ApplyMap applies the 8x8 bit matrix m to b.
func ApplyMap(m uint64, b byte) byte {
	return word.AffineByte(m, b)
}
