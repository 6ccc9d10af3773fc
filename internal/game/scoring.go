package game

import (
	"context"
	"log/slog"
	"strings"
)

// BullsCows scores guess against the zero-padded secret digits.
// guess shorter than 4 is left-padded with zeros ("234" -> "0234").
func BullsCows(secret, guess string) (bulls, cows int) {
	return bullsCows(nil, secret, guess)
}

func bullsCows(log *slog.Logger, secret, guess string) (bulls, cows int) {
	if n := len(guess); n < Digits {
		guess = strings.Repeat("0", Digits-n) + guess
	}
	trace := log != nil && log.Enabled(context.Background(), slog.LevelDebug)
	if trace {
		log.Debug("user guessed", "guess", guess)
	}

	for i := 0; i < len(guess); i++ {
		// первое совпадение в секрете; цифры секрета уникальны
		j := strings.IndexByte(secret, guess[i])
		switch {
		case j < 0:
			continue
		case j == i:
			bulls++
			if trace {
				log.Debug("bull match", "index", i)
			}
		default:
			cows++
			if trace {
				log.Debug("cow match", "index", i)
			}
		}
	}

	return bulls, cows
}
