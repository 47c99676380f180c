package services

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// DefaultPinLength is the number of decimal digits of a security PIN.
const DefaultPinLength = 6

// PinGenerator issues delivery security PINs.
type PinGenerator interface {
	Generate() (string, error)
}

// RandomPinGenerator draws every digit uniformly from crypto/rand, so PINs are
// neither sequential nor derived from order data.
type RandomPinGenerator struct {
	length int
}

func NewRandomPinGenerator(length int) RandomPinGenerator {
	if length <= 0 {
		length = DefaultPinLength
	}
	return RandomPinGenerator{length: length}
}

func (g RandomPinGenerator) Generate() (string, error) {
	ten := big.NewInt(10)

	var sb strings.Builder
	sb.Grow(g.length)
	for range g.length {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}
	return sb.String(), nil
}
