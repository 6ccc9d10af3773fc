package game

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGuess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		want   uint32
		kind   ValidationKind
		reason string
	}{
		{name: "four_distinct", in: "1234", want: 1234},
		{name: "leading_zero", in: "0123", want: 123},
		{name: "three_digits_accepted", in: "234", want: 234},
		{name: "single_digit_accepted", in: "7", want: 7},
		{name: "letters", in: "sd41", kind: KindParse},
		{name: "empty", in: "", kind: KindParse},
		{name: "sign", in: "+123", kind: KindParse},
		{name: "negative", in: "-123", kind: KindParse},
		{name: "spaces", in: " 123", kind: KindParse},
		{name: "overflow", in: "99999999999", kind: KindParse},
		{name: "repeat", in: "1123", kind: KindInvalid, reason: RuleNoRepeats},
		{name: "all_zero", in: "0000", kind: KindInvalid, reason: RuleNoRepeats},
		{name: "five_digits", in: "12345", kind: KindInvalid, reason: RuleFourDigits},
		{name: "five_digits_leading_zero", in: "01234", kind: KindInvalid, reason: RuleFourDigits},
		// repeat is found before the length check fires on index 4
		{name: "five_digits_early_repeat", in: "11234", kind: KindInvalid, reason: RuleNoRepeats},
		{name: "five_digits_repeat_at_fifth", in: "12341", kind: KindInvalid, reason: RuleNoRepeats},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateGuess(tc.in)
			if tc.kind == 0 {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.kind, verr.Kind)
			assert.Equal(t, tc.reason, verr.Reason)
			assert.Zero(t, got)
		})
	}
}

func TestValidationError_Messages(t *testing.T) {
	_, err := ValidateGuess("sd41")
	require.Error(t, err)
	assert.Equal(t, "parse error on user input", err.Error())

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr), "parse error should wrap strconv error")

	_, err = ValidateGuess("1123")
	assert.EqualError(t, err, "input does not respect the rule `Digits cannot be repeated`")

	_, err = ValidateGuess("12345")
	assert.EqualError(t, err, "input does not respect the rule `Number has to have 4 digits`")
}
