package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderCode returns a receipt code like ORD-7K2M9X. The code is the
// human-facing identifier printed on receipts; uniqueness across
// replays is carried by the order's client key, not by this code.
func NewOrderCode() string {
	buf := make([]byte, 6)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return "ORD-" + string(buf)
}
