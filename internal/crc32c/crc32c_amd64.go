//go:build amd64 && !purego

package crc32c

import "golang.org/x/sys/cpu"

// sseUpdate is implemented in crc32c_amd64.s. It runs the raw CRC update
// over p without the initial or final complement.
//
//go:noescape
func sseUpdate(crc uint32, p []byte) uint32

var hasSSE42 = cpu.X86.HasSSE42

func archAvailable() bool {
	return hasSSE42
}

func archSum(p []byte) uint32 {
	return SumSSE42(p)
}

func backendName() string {
	if hasSSE42 {
		return "sse4.2"
	}
	return "generic"
}

// SumSSE42 returns the CRC32-C digest of p using the SSE4.2 CRC32
// instruction. It does not check that the instruction is available; Sum
// performs that check once at init and should be preferred outside of
// parity tests.
func SumSSE42(p []byte) uint32 {
	return ^sseUpdate(^uint32(0), p)
}
