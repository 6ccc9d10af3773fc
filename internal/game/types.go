package game

// Phase of a session. won is the only terminal phase.
type Phase string

const (
	PhaseAwaitingGuess Phase = "awaiting_guess"
	PhaseValidating    Phase = "validating"
	PhaseInvalid       Phase = "invalid"
	PhaseScoring       Phase = "scoring"
	PhaseLostRound     Phase = "lost_round"
	PhaseWon           Phase = "won"
)

// Attempt is the outcome of one submitted line.
type Attempt struct {
	Turn  int    `json:"turn"`
	Guess string `json:"guess"`
	Bulls int    `json:"bulls"`
	Cows  int    `json:"cows"`
	Won   bool   `json:"won"`
	Err   error  `json:"-"` // *ValidationError, if the line was rejected
}

// Valid reports whether the guess passed validation.
func (a Attempt) Valid() bool { return a.Err == nil }
