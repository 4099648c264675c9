package utils

import (
	"crypto/rand"
	"math/big"
)

const otpCodeLength = 6

// GenerateOTPCode returns a 6-digit numeric code. Each digit is drawn
// independently, so leading zeros are possible and kept.
func GenerateOTPCode() (string, error) {
	b := make([]byte, otpCodeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b[i] = byte('0' + n.Int64())
	}
	return string(b), nil
}
