package hashing

import "runtime"

// secretBuffer owns a byte slice holding password-derived material.
// Wipe zeroes it; callers defer Wipe right after acquisition so every exit
// path clears the buffer.
type secretBuffer struct {
	b []byte
}

func newSecretBuffer(b []byte) *secretBuffer {
	return &secretBuffer{b: b}
}

func (s *secretBuffer) Bytes() []byte { return s.b }

// Wipe zeroes the buffer.  Safe to call more than once.
func (s *secretBuffer) Wipe() {
	clear(s.b)
	runtime.KeepAlive(s.b)
}
