package glb

import "github.com/fenilsonani/glbkit/internal/crc32c"

type dedupKey struct {
	digest uint32
	length int
}

// Dedup canonicalizes buffer payloads by CRC32-C digest so an asset that
// embeds the same buffer repeatedly is stored once. Keys include the length
// to keep a digest collision between different-sized payloads harmless.
type Dedup struct {
	seen map[dedupKey][]byte
}

// NewDedup returns an empty Dedup.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[dedupKey][]byte)}
}

// Add returns the canonical copy of p, storing p as canonical if its digest
// has not been seen before. The returned slice must be treated as read-only.
func (d *Dedup) Add(p []byte) []byte {
	key := dedupKey{digest: crc32c.Sum(p), length: len(p)}
	if canonical, ok := d.seen[key]; ok {
		return canonical
	}
	d.seen[key] = p
	return p
}

// Len returns the number of distinct payloads seen.
func (d *Dedup) Len() int {
	return len(d.seen)
}
