// Package generator produces random short codes for links created without
// a custom alias.
package generator

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// CodeLength is the length of generated short codes. 62^7 keeps the
// collision retry in the link service a rare path.
const CodeLength = 7

// ShortCode returns a random base62 code of CodeLength characters.
func ShortCode() (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
