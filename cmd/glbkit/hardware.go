package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fenilsonani/glbkit/internal/crc32c"
)

// checkHardwareSupport reports which checksum backend this build wired to
// the canonical entry point.
func checkHardwareSupport(w io.Writer) {
	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CRC32-C backend: %s\n", crc32c.Backend())

	switch crc32c.Backend() {
	case "sse4.2":
		fmt.Fprintln(w, "Acceleration: x86 SSE4.2 CRC32 instruction")
	case "armv8-crc32":
		fmt.Fprintln(w, "Acceleration: ARMv8 CRC32 extension")
	default:
		fmt.Fprintln(w, "Acceleration: none (portable table-driven backend)")
	}
}
