package towerfield

import "fmt"

// Width is the size in bits of a machine word.
type Width int

const (
	Width128 Width = 128
	Width256 Width = 256
	Width512 Width = 512
)

// Capability describes the vector instructions available on the current CPU.
type Capability struct {
	// GFNI is set if the CPU implements the Galois field instructions.
	GFNI bool
	// MaxWidth is the widest word the CPU processes in a single register.
	MaxWidth Width
}

// Supports reports whether words of width w fit in a single register.
func (c Capability) Supports(w Width) bool {
	return w <= c.MaxWidth
}

func (c Capability) String() string {
	return fmt.Sprintf("gfni=%t width=%d", c.GFNI, c.MaxWidth)
}

// DetectCapability returns the capability of the current CPU. Building with the purego tag
// reports a 128-bit CPU without GFNI.
func DetectCapability() Capability {
	c := Capability{GFNI: hasGFNI, MaxWidth: Width128}
	switch {
	case hasAVX512:
		c.MaxWidth = Width512
	case hasAVX2:
		c.MaxWidth = Width256
	}
	return c
}
