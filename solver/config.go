package solver

import (
	"errors"
	"fmt"
	"runtime"
)

var ErrConfig = errors.New("solver: invalid config")

type Config struct {
	// MaxAttempts is the number of guesses a game allows.
	MaxAttempts int
	// TopK is how many of the best scored guesses the turn minimizer expands
	// at each level of its search.
	TopK int
	// ExactThreshold is the candidate count at or below which the turn
	// minimizer picks the guess.
	ExactThreshold int
	// Parallelism is the number of workers used to score guesses.
	Parallelism int
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts:    6,
		TopK:           20,
		ExactThreshold: 20,
		Parallelism:    runtime.GOMAXPROCS(0),
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d", ErrConfig, c.MaxAttempts)
	case c.TopK < 1:
		return fmt.Errorf("%w: top-k %d", ErrConfig, c.TopK)
	case c.ExactThreshold < 0:
		return fmt.Errorf("%w: exact threshold %d", ErrConfig, c.ExactThreshold)
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism %d", ErrConfig, c.Parallelism)
	}
	return nil
}
