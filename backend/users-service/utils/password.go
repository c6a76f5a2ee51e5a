package utils

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

// GenerateVerificationCode returns a zero-padded six digit code.
// The package-level source is locked, so handlers may call this concurrently.
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
