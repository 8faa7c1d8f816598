// Package otp generates one-time numeric codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"farha/internal/domain/service"
	"farha/internal/errors"
)

const codeSpace = 1000000 // six decimal digits

// generator implements service.CodeGenerator on crypto/rand, which is safe
// under concurrent callers without any shared mutable state.
type generator struct{}

// NewGenerator is the constructor for generator.
func NewGenerator() service.CodeGenerator {
	return generator{}
}

// Code returns a zero-padded six-digit code.
func (generator) Code() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate one-time code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
