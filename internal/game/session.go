package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

var (
	// ErrInputClosed wraps the reader error when no more guesses can be read.
	ErrInputClosed = errors.New("input closed")
	// ErrTurnLimit is returned by Play once MaxTurns wrong guesses were made.
	ErrTurnLimit = errors.New("turn limit reached")
	// ErrFinished is returned by Submit after the secret was guessed.
	ErrFinished = errors.New("game already finished")
)

// LineReader returns one newline-stripped line per call.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type Config struct {
	MaxTurns int // 0 => no limit
}

// Session holds one secret and plays it against a line source until it is guessed.
// Not safe for concurrent use.
type Session struct {
	id  string
	cfg Config
	log *slog.Logger

	secret Secret
	in     LineReader
	out    io.Writer

	phase   Phase
	turns   int // valid guesses so far
	history []Attempt
}

func NewSession(cfg Config, secret Secret, in LineReader, out io.Writer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		cfg:    cfg,
		log:    log.With("session", id),
		secret: secret,
		in:     in,
		out:    out,
		phase:  PhaseAwaitingGuess,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Turns() int { return s.turns }

func (s *Session) History() []Attempt {
	return append([]Attempt(nil), s.history...)
}

// Submit runs one validate -> score step for a raw line.
// Validation failures are reported in Attempt.Err; the returned error is
// only ErrFinished.
func (s *Session) Submit(raw string) (Attempt, error) {
	if s.phase == PhaseWon {
		return Attempt{}, ErrFinished
	}

	s.phase = PhaseValidating
	guess, err := ValidateGuess(raw)
	if err != nil {
		s.phase = PhaseInvalid
		s.log.Debug("guess rejected", "input", raw, "err", err)
		a := Attempt{Turn: s.turns, Guess: raw, Err: err}
		s.history = append(s.history, a)
		return a, nil
	}

	s.phase = PhaseScoring
	s.turns++
	bulls, cows := bullsCows(s.log, s.secret.String(), raw)
	a := Attempt{
		Turn:  s.turns,
		Guess: raw,
		Bulls: bulls,
		Cows:  cows,
		Won:   guess == s.secret.Value(),
	}
	s.history = append(s.history, a)

	if a.Won {
		s.phase = PhaseWon
		s.log.Info("secret guessed", "turns", s.turns)
	} else {
		s.phase = PhaseLostRound
	}
	return a, nil
}

// Play prints the greeting and loops until the secret is guessed.
// A failing reader ends the loop with ErrInputClosed; a cancelled ctx
// ends it with ctx.Err().
func (s *Session) Play(ctx context.Context) error {
	s.log.Info("game started", "max_turns", s.cfg.MaxTurns)
	s.log.Debug("secret chosen", "secret", s.secret.String())

	s.printf("I created a random number using four distinct digits...\n")
	s.printf("You should guess which one it is\n")

	for {
		s.phase = PhaseAwaitingGuess
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		a, err := s.Submit(line)
		if err != nil {
			return err
		}

		switch {
		case !a.Valid():
			s.printf("Invalid input: %s\nTry again!\n", a.Err)
		case a.Won:
			s.printf("You won! Congratulations!\n")
			return nil
		default:
			s.printf("Nope: you got %d bulls and %d cows. Try again\n", a.Bulls, a.Cows)
			if s.cfg.MaxTurns > 0 && s.turns >= s.cfg.MaxTurns {
				s.log.Info("turn limit reached", "turns", s.turns)
				return fmt.Errorf("%w after %d guesses (secret was %s)", ErrTurnLimit, s.turns, s.secret)
			}
		}
	}
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
