package hashing

import (
	"crypto/hmac"
	"encoding"
	"encoding/binary"
	"hash"
)

// hmacState is an HMAC whose keyed inner and outer pad states are computed
// once and restored before every message.
type hmacState struct {
	inner, outer hash.Hash
	innerPad     []byte
	outerPad     []byte
	innerSum     []byte
}

// newHMACState returns nil when the hash does not support state snapshots.
func newHMACState(h func() hash.Hash, key []byte) *hmacState {
	inner, outer := h(), h()
	if _, ok := inner.(encoding.BinaryUnmarshaler); !ok {
		return nil
	}

	blockSize := inner.BlockSize()
	if len(key) > blockSize {
		inner.Write(key)
		key = inner.Sum(nil)
		defer clear(key)
		inner.Reset()
	}
	ipad := make([]byte, blockSize)
	opad := make([]byte, blockSize)
	copy(ipad, key)
	copy(opad, key)
	for i := range ipad {
		ipad[i] ^= 0x36
		opad[i] ^= 0x5c
	}
	inner.Write(ipad)
	outer.Write(opad)
	clear(ipad)
	clear(opad)

	innerPad, err := inner.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		return nil
	}
	outerPad, err := outer.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		return nil
	}
	return &hmacState{
		inner:    inner,
		outer:    outer,
		innerPad: innerPad,
		outerPad: outerPad,
		innerSum: make([]byte, 0, inner.Size()),
	}
}

// sum writes HMAC(key, parts...) into dst[:0] and returns it.
func (s *hmacState) sum(dst []byte, parts ...[]byte) []byte {
	_ = s.inner.(encoding.BinaryUnmarshaler).UnmarshalBinary(s.innerPad)
	for _, p := range parts {
		s.inner.Write(p)
	}
	s.innerSum = s.inner.Sum(s.innerSum[:0])

	_ = s.outer.(encoding.BinaryUnmarshaler).UnmarshalBinary(s.outerPad)
	s.outer.Write(s.innerSum)
	return s.outer.Sum(dst[:0])
}

func (s *hmacState) wipe() {
	clear(s.innerPad)
	clear(s.outerPad)
	clear(s.innerSum[:cap(s.innerSum)])
}

// acceleratedPbkdf2 implements PBKDF2 (RFC 8018 §5.2) with the same round
// semantics as golang.org/x/crypto/pbkdf2: iterations below 2 yield U1 only.
func acceleratedPbkdf2(password, salt []byte, iterations uint32, keyLen int, h func() hash.Hash) []byte {
	prf := newHMACState(h, password)
	if prf == nil {
		return slowPbkdf2(password, salt, iterations, keyLen, h)
	}
	defer prf.wipe()

	hashLen := prf.inner.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var counter [4]byte
	u := make([]byte, 0, hashLen)
	t := make([]byte, hashLen)
	dk := make([]byte, 0, numBlocks*hashLen)
	defer clear(u[:cap(u)])
	defer clear(t)

	for block := 1; block <= numBlocks; block++ {
		binary.BigEndian.PutUint32(counter[:], uint32(block))
		u = prf.sum(u, salt, counter[:])
		copy(t, u)
		for n := uint32(2); n <= iterations && n != 0; n++ {
			u = prf.sum(u, u)
			for i := range t {
				t[i] ^= u[i]
			}
		}
		dk = append(dk, t...)
	}
	return dk[:keyLen]
}

// slowPbkdf2 is the fallback for hashes without state snapshots.
func slowPbkdf2(password, salt []byte, iterations uint32, keyLen int, h func() hash.Hash) []byte {
	prf := hmac.New(h, password)
	hashLen := prf.Size()
	numBlocks := (keyLen + hashLen - 1) / hashLen

	var counter [4]byte
	dk := make([]byte, 0, numBlocks*hashLen)
	u := make([]byte, hashLen)
	for block := 1; block <= numBlocks; block++ {
		prf.Reset()
		prf.Write(salt)
		binary.BigEndian.PutUint32(counter[:], uint32(block))
		prf.Write(counter[:])
		dk = prf.Sum(dk)
		t := dk[len(dk)-hashLen:]
		copy(u, t)
		for n := uint32(2); n <= iterations && n != 0; n++ {
			prf.Reset()
			prf.Write(u)
			u = prf.Sum(u[:0])
			for i := range u {
				t[i] ^= u[i]
			}
		}
	}
	clear(u)
	return dk[:keyLen]
}
