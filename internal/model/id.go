package model

import (
	"crypto/rand"
)

// idAlphabet deliberately omits vowels and lookalike characters so that
// generated IDs stay URL-safe and hard to read words into.
const idAlphabet = "123456789bcdfghjkmnpqrstvwxyz"

const idLength = 8

// ID identifies a track or an art entry. IDs are opaque and unique only
// within the lifetime of the process.
type ID string

// NewID generates a random 8-character ID over a 29-character alphabet.
func NewID() ID {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return ID(buf)
}

func (id ID) String() string {
	return string(id)
}
