package app

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"

	"example.com/bc-cli/internal/config"
	"example.com/bc-cli/internal/console"
	"example.com/bc-cli/internal/game"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	session *game.Session
}

type Options struct {
	In   io.Reader
	Out  io.Writer
	Rand game.Rand // optional; if nil, seeded from cfg.Game.Seed or randomly
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}

	r := opts.Rand
	if r == nil {
		r = newRand(cfg.Game.Seed)
	}

	log.Info("creating random number")
	secret := game.GenerateSecret(r)

	sess := game.NewSession(
		game.Config{MaxTurns: cfg.Game.MaxTurns},
		secret,
		console.NewReader(opts.In),
		opts.Out,
		log,
	)

	return &App{cfg: cfg, log: log, session: sess}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting the game", "session", a.session.ID())
	if err := a.session.Play(ctx); err != nil {
		a.log.Warn("game ended without a win", "err", err, "turns", a.session.Turns())
		return err
	}
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
