package server

import "crypto/rand"

// Codes avoid 0/O and 1/I so they survive being read aloud at a party.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const redeemCodePrefix = "DA-"

// maxCodeAttempts bounds the regenerate-on-collision loop when a fresh
// code hits the store's unique index. Six characters over a 32-rune
// alphabet give ~10^9 codes, so exhausting the bound means the generator
// is broken, not unlucky.
const maxCodeAttempts = 5

func randomCode(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		for i := range buf {
			buf[i] = 'A'
		}
		return string(buf)
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf)
}

func newHostPin() string {
	return randomCode(6)
}

func newPlayerJoinCode() string {
	return randomCode(8)
}

func newRedeemCode() string {
	return redeemCodePrefix + randomCode(6)
}
