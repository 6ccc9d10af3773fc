package game

import (
	"fmt"
	"strconv"
)

// Rules reported by KindInvalid errors.
const (
	RuleNoRepeats  = "Digits cannot be repeated"
	RuleFourDigits = "Number has to have 4 digits"
)

type ValidationKind int

const (
	KindParse ValidationKind = iota + 1
	KindInvalid
)

// ValidationError is returned by ValidateGuess. Both kinds are recoverable:
// the session reports them and asks again.
type ValidationError struct {
	Kind   ValidationKind
	Reason string // set for KindInvalid
	Err    error  // set for KindParse
}

func (e *ValidationError) Error() string {
	if e.Kind == KindParse {
		return "parse error on user input"
	}
	return fmt.Sprintf("input does not respect the rule `%s`", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateGuess parses raw as an unsigned number and checks the guess shape.
//
// The length check runs after the repeat check for the same character, so
// "12341" reports a repeat, not a length error. Shorter inputs such as "234"
// pass and get zero-padded when scored.
func ValidateGuess(raw string) (uint32, error) {
	guess, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &ValidationError{Kind: KindParse, Err: err}
	}

	var seen [10]bool
	for i := 0; i < len(raw); i++ {
		d := raw[i] - '0' // ParseUint accepted it, so it's a digit
		if seen[d] {
			return 0, &ValidationError{Kind: KindInvalid, Reason: RuleNoRepeats}
		}
		seen[d] = true
		if i >= Digits {
			return 0, &ValidationError{Kind: KindInvalid, Reason: RuleFourDigits}
		}
	}

	return uint32(guess), nil
}
