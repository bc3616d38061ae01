package session

import (
	"crypto/rand"
	"time"
)

// Crockford's base32, lowercase. IDs sort by creation time.
const idAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// NewID returns a 26-character session identifier: a UUIDv7 (48-bit
// millisecond timestamp plus random tail) in base32, so lexical order
// follows creation order.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	var id [16]byte

	ms := now.UnixMilli()
	id[0] = byte(ms >> 40)
	id[1] = byte(ms >> 32)
	id[2] = byte(ms >> 24)
	id[3] = byte(ms >> 16)
	id[4] = byte(ms >> 8)
	id[5] = byte(ms)

	if _, err := rand.Read(id[6:]); err != nil {
		panic("session: crypto/rand unavailable: " + err.Error())
	}

	// Version 7, variant 10.
	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return encodeBase32(id)
}

// encodeBase32 packs 128 bits into 26 base32 characters, top two bits zero.
func encodeBase32(id [16]byte) string {
	var out [26]byte
	var acc uint64
	bits := 0
	pos := 25

	for i := 15; i >= 0; i-- {
		acc |= uint64(id[i]) << bits
		bits += 8
		for bits >= 5 && pos >= 0 {
			out[pos] = idAlphabet[acc&0x1f]
			acc >>= 5
			bits -= 5
			pos--
		}
	}
	for pos >= 0 {
		out[pos] = idAlphabet[acc&0x1f]
		acc >>= 5
		pos--
	}
	return string(out[:])
}
