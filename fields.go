package towerfield

import (
	"github.com/codahale/towerfield/internal/word"
	"github.com/codahale/towerfield/tower"
)

// Packed tower fields in 128-bit words.
type (
	PackedBinaryField16x8b  = Packed[word.M128, tower.BinaryField8b]
	PackedBinaryField8x16b  = Packed[word.M128, tower.BinaryField16b]
	PackedBinaryField4x32b  = Packed[word.M128, tower.BinaryField32b]
	PackedBinaryField2x64b  = Packed[word.M128, tower.BinaryField64b]
	PackedBinaryField1x128b = Packed[word.M128, tower.BinaryField128b]
)

// Packed tower fields in 256-bit words.
type (
	PackedBinaryField32x8b  = Packed[word.M256, tower.BinaryField8b]
	PackedBinaryField16x16b = Packed[word.M256, tower.BinaryField16b]
	PackedBinaryField8x32b  = Packed[word.M256, tower.BinaryField32b]
	PackedBinaryField4x64b  = Packed[word.M256, tower.BinaryField64b]
	PackedBinaryField2x128b = Packed[word.M256, tower.BinaryField128b]
)

// Packed tower fields in 512-bit words.
type (
	PackedBinaryField64x8b  = Packed[word.M512, tower.BinaryField8b]
	PackedBinaryField32x16b = Packed[word.M512, tower.BinaryField16b]
	PackedBinaryField16x32b = Packed[word.M512, tower.BinaryField32b]
	PackedBinaryField8x64b  = Packed[word.M512, tower.BinaryField64b]
	PackedBinaryField4x128b = Packed[word.M512, tower.BinaryField128b]
)

// Packed AES tower fields in 128-bit words.
type (
	PackedAESBinaryField16x8b  = Packed[word.M128, tower.AESTowerField8b]
	PackedAESBinaryField8x16b  = Packed[word.M128, tower.AESTowerField16b]
	PackedAESBinaryField4x32b  = Packed[word.M128, tower.AESTowerField32b]
	PackedAESBinaryField2x64b  = Packed[word.M128, tower.AESTowerField64b]
	PackedAESBinaryField1x128b = Packed[word.M128, tower.AESTowerField128b]
)

// Packed AES tower fields in 256-bit words.
type (
	PackedAESBinaryField32x8b  = Packed[word.M256, tower.AESTowerField8b]
	PackedAESBinaryField16x16b = Packed[word.M256, tower.AESTowerField16b]
	PackedAESBinaryField8x32b  = Packed[word.M256, tower.AESTowerField32b]
	PackedAESBinaryField4x64b  = Packed[word.M256, tower.AESTowerField64b]
	PackedAESBinaryField2x128b = Packed[word.M256, tower.AESTowerField128b]
)

// Packed AES tower fields in 512-bit words.
type (
	PackedAESBinaryField64x8b  = Packed[word.M512, tower.AESTowerField8b]
	PackedAESBinaryField32x16b = Packed[word.M512, tower.AESTowerField16b]
	PackedAESBinaryField16x32b = Packed[word.M512, tower.AESTowerField32b]
	PackedAESBinaryField8x64b  = Packed[word.M512, tower.AESTowerField64b]
	PackedAESBinaryField4x128b = Packed[word.M512, tower.AESTowerField128b]
)

func init() {
	registerWidth[word.M128]()
	registerWidth[word.M256]()
	registerWidth[word.M512]()
}

func registerWidth[W word.Word[W]]() {
	register(ArithmeticFor[W, tower.BinaryField8b]())
	register(ArithmeticFor[W, tower.BinaryField16b]())
	register(ArithmeticFor[W, tower.BinaryField32b]())
	register(ArithmeticFor[W, tower.BinaryField64b]())
	register(ArithmeticFor[W, tower.BinaryField128b]())
	register(ArithmeticFor[W, tower.AESTowerField8b]())
	register(ArithmeticFor[W, tower.AESTowerField16b]())
	register(ArithmeticFor[W, tower.AESTowerField32b]())
	register(ArithmeticFor[W, tower.AESTowerField64b]())
	register(ArithmeticFor[W, tower.AESTowerField128b]())
}
