//go:build (!amd64 && !arm64) || purego

package crc32c

func archAvailable() bool {
	return false
}

func archSum(p []byte) uint32 {
	return SumGeneric(p)
}

func backendName() string {
	return "generic"
}
