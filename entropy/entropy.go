// Package entropy provides the single chokepoint through which this module
// reads fresh randomness from the operating system's cryptographic entropy
// source, with an optional pluggable override for testing or for operators
// who want to supply their own entropy in place of the OS source.
package entropy

import (
	"crypto/rand"
)

// Source is any reader of cryptographically secure random bytes. Passing a
// nil Source to Bytes selects the process-wide crypto/rand.Reader.
type Source interface {
	Read(data []byte) (n int, err error)
}

// Bytes reads n bytes of randomness from source. If source is nil, fails to
// deliver n bytes, or returns an error, this falls back to crypto/rand.Reader.
// A failure of the fallback itself is fatal: the spec defines no recoverable
// path for entropy failure, since there is no meaningful way to make progress
// without fresh randomness.
func Bytes(source Source, n int) []byte {
	if source != nil {
		buf := make([]byte, n)
		read, err := source.Read(buf)
		if err == nil && read == n {
			return buf
		}
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("entropy: operating system entropy source failed: " + err.Error())
	}
	return buf
}
