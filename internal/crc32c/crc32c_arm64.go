//go:build arm64 && !purego

package crc32c

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// armUpdate is implemented in crc32c_arm64.s. It runs the raw CRC update
// over p without the initial or final complement.
//
//go:noescape
func armUpdate(crc uint32, p []byte) uint32

// darwin arm64 always has the CRC32 extension but x/sys/cpu cannot read the
// feature registers there.
var hasCRC32 = cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"

func archAvailable() bool {
	return hasCRC32
}

func archSum(p []byte) uint32 {
	return SumARMv8(p)
}

func backendName() string {
	if hasCRC32 {
		return "armv8-crc32"
	}
	return "generic"
}

// SumARMv8 returns the CRC32-C digest of p using the ARMv8 CRC32
// instructions. It does not check that the extension is available; Sum
// performs that check once at init and should be preferred outside of
// parity tests.
func SumARMv8(p []byte) uint32 {
	return ^armUpdate(^uint32(0), p)
}
