//go:build !amd64 || purego

package towerfield

//nolint:gochecknoglobals // should only check once
var (
	hasGFNI   = false
	hasAVX2   = false
	hasAVX512 = false
)
