// Package randid generates short random identifiers and probes them for
// uniqueness against a caller-owned collection.
package randid

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxAttempts bounds how many candidates Unique tries before giving up.
const MaxAttempts = 100

// ErrMaxAttempts is returned by Unique when every generated candidate was
// rejected by the collection.
var ErrMaxAttempts = errors.New("randid: max attempts reached without a unique candidate")

const alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces one candidate identifier per call.
type Generator func() (string, error)

// TakenFunc reports whether an identifier is already present in the
// caller's collection.
type TakenFunc func(string) bool

// Hex returns n lowercase hexadecimal characters from crypto/rand.
// n 必须为正偶数（每字节两个十六进制字符）。
func Hex(n int) (string, error) {
	if n <= 0 || n%2 != 0 {
		return "", fmt.Errorf("randid: length must be a positive even number, got %d", n)
	}
	b := make([]byte, n/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("randid: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Alphanumeric returns n characters drawn uniformly from [a-z0-9].
func Alphanumeric(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("randid: length must be positive, got %d", n)
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("randid: %w", err)
	}
	out := make([]byte, n)
	for i, v := range b {
		// 36 不整除 256，有轻微偏差；对短标识符的用途可以接受。
		out[i] = alphanumeric[int(v)%len(alphanumeric)]
	}
	return string(out), nil
}

// UUID returns a random RFC 4122 version-4 UUID string.
func UUID() string {
	return uuid.NewString()
}

// Unique generates candidates with gen until taken rejects one, up to
// MaxAttempts tries.
func Unique(gen Generator, taken TakenFunc) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		id, err := gen()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrMaxAttempts
}

// IsHex reports whether s is non-empty and entirely lowercase
// hexadecimal.
func IsHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return len(s) > 0
}
