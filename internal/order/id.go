package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// NewID generates an order identifier: "OD" + the low six digits of the
// current unix-milli timestamp + a four digit zero-padded random suffix.
// Uniqueness is advisory, not guaranteed.
func NewID() string {
	timestamp := time.Now().UnixMilli() % 1000000
	suffix := rand.IntN(10000)
	return fmt.Sprintf("OD%06d%04d", timestamp, suffix)
}
