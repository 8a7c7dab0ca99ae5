package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	hexDigits    = "0123456789abcdef"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided
// bounds. When maxLen equals minLen the result always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomEmail returns a pseudo-random address suitable for user documents.
func RandomEmail() string {
	return RandomASCIIString(6, 12) + "@example.com"
}

// RandomHexID returns a 24-character hex string shaped like a store
// object identifier.
func RandomHexID() string {
	buf := make([]byte, 24)
	for i := range buf {
		buf[i] = hexDigits[randomIntn(len(hexDigits))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
