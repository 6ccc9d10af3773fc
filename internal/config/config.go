package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config describes all runtime settings for the game.
//
// Loaded once in main, validated, then passed down explicitly.
type Config struct {
	Log struct {
		Format string `validate:"oneof=text json"`
		Level  string `validate:"oneof=debug info warn error"`
	}

	Game struct {
		MaxTurns int    `validate:"gte=0"` // 0 => unlimited
		Seed     uint64 // 0 => random
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFromEnv reads settings from the environment. A .env file in the
// working directory is applied first if present; real env vars win.
func LoadFromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var c Config

	c.Log.Format = envString("LOG_FORMAT", "text")
	c.Log.Level = envString("LOG_LEVEL", "warn")

	c.Game.MaxTurns = envInt("MAX_TURNS", 0)
	c.Game.Seed = envUint64("GAME_SEED", 0)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.StructNamespace() {
	case "Config.Log.Format":
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	case "Config.Log.Level":
		return fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	case "Config.Game.MaxTurns":
		return fmt.Errorf("MAX_TURNS must be >= 0, got %d", c.Game.MaxTurns)
	}
	return fmt.Errorf("invalid config field %s: %s", fe.StructNamespace(), fe.Tag())
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return def
}
