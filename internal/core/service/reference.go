package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newReference returns a human-readable unique reference like "BK-7A8B9C2D".
func newReference(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08X", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08X", prefix, b)
}
