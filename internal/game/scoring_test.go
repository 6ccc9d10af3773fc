package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBullsCows_AllMatch(t *testing.T) {
	b, c := BullsCows("1234", "1234")
	if b != 4 || c != 0 {
		t.Fatalf("expected 4 bulls,0 cows got %d bulls,%d cows", b, c)
	}
}

func TestBullsCows_NoMatch(t *testing.T) {
	b, c := BullsCows("1234", "5678")
	if b != 0 || c != 0 {
		t.Fatalf("expected 0,0 got %d,%d", b, c)
	}
}

func TestBullsCows_AllMisplaced(t *testing.T) {
	b, c := BullsCows("1234", "4321")
	if b != 0 || c != 4 {
		t.Fatalf("expected 0,4 got %d,%d", b, c)
	}
}

func TestBullsCows_ShortGuessIsZeroPadded(t *testing.T) {
	cases := []struct {
		secret, guess string
		bulls, cows   int
	}{
		{"0123", "312", 1, 3}, // "0312"
		{"0123", "123", 4, 0}, // "0123"
		{"0123", "12", 1, 3},  // "0012", the padding zeros both match index 0
		{"5678", "9", 0, 0},
	}
	for _, tc := range cases {
		b, c := BullsCows(tc.secret, tc.guess)
		assert.Equal(t, tc.bulls, b, "bulls for %s/%s", tc.secret, tc.guess)
		assert.Equal(t, tc.cows, c, "cows for %s/%s", tc.secret, tc.guess)
	}
}

func TestBullsCows_Idempotent(t *testing.T) {
	b1, c1 := BullsCows("0987", "7890")
	b2, c2 := BullsCows("0987", "7890")
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
}

func TestBullsCows_NeverExceedsFour(t *testing.T) {
	secret := "0123"
	for g := 0; g < 10000; g++ {
		guess := padGuess(g)
		b, c := BullsCows(secret, guess)
		if b+c > 4 {
			t.Fatalf("guess %s: bulls+cows=%d", guess, b+c)
		}
	}
}

func padGuess(n int) string {
	s := []byte{'0', '0', '0', '0'}
	for i := 3; i >= 0 && n > 0; i-- {
		s[i] = byte('0' + n%10)
		n /= 10
	}
	return string(s)
}
