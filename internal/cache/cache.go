// Package cache provides the in-memory support-file cache used by batch
// runs, so N pairs in one directory do not re-read identical context blocks
// N times. Single generation passes bypass it entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value cache with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key derives a cache key from a file path.
func Key(path string) string {
	sum := sha256.Sum256([]byte(path))
	return "casepack:v1:" + hex.EncodeToString(sum[:])
}
