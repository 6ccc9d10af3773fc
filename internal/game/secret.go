package game

import (
	"fmt"
	"strconv"
)

// Digits is the length of the secret.
const Digits = 4

// Rand is the random source used to pick secret digits.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Secret is the hidden number: 4 distinct decimal digits, first one may be 0.
type Secret struct {
	value  uint32
	digits string // zero-padded, always Digits long
}

// GenerateSecret picks distinct digits by rejection sampling until Digits are collected.
func GenerateSecret(r Rand) Secret {
	var chosen [Digits]byte
	var seen [10]bool

	for n := 0; n < Digits; {
		d := r.IntN(10)
		if seen[d] {
			continue
		}
		seen[d] = true
		chosen[n] = byte('0' + d)
		n++
	}

	return newSecret(string(chosen[:]))
}

// NewSecret builds a secret from a fixed digit string, e.g. "0123".
func NewSecret(digits string) (Secret, error) {
	if len(digits) != Digits {
		return Secret{}, fmt.Errorf("secret must have %d digits, got %q", Digits, digits)
	}
	var seen [10]bool
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Secret{}, fmt.Errorf("secret must be decimal digits, got %q", digits)
		}
		if seen[c-'0'] {
			return Secret{}, fmt.Errorf("secret digits must be distinct, got %q", digits)
		}
		seen[c-'0'] = true
	}
	return newSecret(digits), nil
}

func newSecret(digits string) Secret {
	v, _ := strconv.ParseUint(digits, 10, 32)
	return Secret{value: uint32(v), digits: digits}
}

// Value is the numeric form, compared against a validated guess.
func (s Secret) Value() uint32 { return s.value }

// String is the zero-padded form used for positional scoring.
func (s Secret) String() string { return s.digits }
