//go:build amd64 && !purego

package towerfield

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

//nolint:gochecknoglobals // should only check once
var (
	hasGFNI   = cpuid.CPU.Supports(cpuid.GFNI)
	hasAVX2   = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
)
