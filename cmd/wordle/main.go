package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/bent101/wordle-turns/cache"
	"github.com/bent101/wordle-turns/solver"
	"github.com/bent101/wordle-turns/words"
)

type globalConfig struct {
	secretsPath string
	guessesPath string
	verbose     bool
	solver      solver.Config
}

// newSolver loads the vocabulary and builds the cache. This is the slow part
// of every command.
func (gc *globalConfig) newSolver() (*solver.Solver, error) {
	store, err := words.Load(gc.secretsPath, gc.guessesPath)
	if err != nil {
		return nil, err
	}
	log.Info().Int("secrets", store.SecretCount()).Int("guesses", store.Len()).Msg("vocabulary-loaded")

	c := cache.Build(store, cache.Options{
		Parallelism: gc.solver.Parallelism,
		Progress:    term.IsTerminal(int(os.Stdout.Fd())),
	})
	return solver.New(c, gc.solver)
}

func main() {
	gc := &globalConfig{solver: solver.DefaultConfig()}

	cmd := &cli.Command{
		Name:  "wordle",
		Usage: "find the guess that finishes a wordle in the fewest turns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "secrets",
				Aliases:     []string{"s"},
				Usage:       "file of possible secrets, one per line",
				Value:       "io/answers.txt",
				Destination: &gc.secretsPath,
			},
			&cli.StringFlag{
				Name:        "guesses",
				Aliases:     []string{"g"},
				Usage:       "file of extra allowed guesses, one per line",
				Value:       "io/guesses.txt",
				Destination: &gc.guessesPath,
			},
			&cli.IntFlag{
				Name:        "max-attempts",
				Value:       gc.solver.MaxAttempts,
				Usage:       "guesses allowed per game",
				Destination: &gc.solver.MaxAttempts,
			},
			&cli.IntFlag{
				Name:        "top-k",
				Value:       gc.solver.TopK,
				Usage:       "guesses expanded per level of the turn search",
				Destination: &gc.solver.TopK,
			},
			&cli.IntFlag{
				Name:        "exact-threshold",
				Value:       gc.solver.ExactThreshold,
				Usage:       "candidate count at which the turn search takes over",
				Destination: &gc.solver.ExactThreshold,
			},
			&cli.IntFlag{
				Name:        "parallelism",
				Aliases:     []string{"p"},
				Value:       gc.solver.Parallelism,
				Usage:       "worker count, 0 is GOMAXPROCS",
				Destination: &gc.solver.Parallelism,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "debug logging",
				Destination: &gc.verbose,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if gc.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return ctx, gc.solver.Validate()
		},
		Commands: []*cli.Command{
			{
				Name:  "best",
				Usage: "print the recommended first guess and the best scored guesses",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "n", Value: 10, Usage: "number of scored guesses to list"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := gc.newSolver()
					if err != nil {
						return err
					}
					return printBest(os.Stdout, s, int(cmd.Int("n")))
				},
			},
			{
				Name: "play",
				Usage: `play along with a real game. Each turn enter the feedback for the
				suggested guess, or "<guess> <feedback>" if you played something else.
				Feedback is five of b/y/g (or 0/1/2).`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := gc.newSolver()
					if err != nil {
						return err
					}
					return play(os.Stdin, os.Stdout, s)
				},
			},
			{
				Name:      "sim",
				Usage:     "let the solver play against a secret, random if none is given",
				ArgsUsage: "[secret]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := gc.newSolver()
					if err != nil {
						return err
					}
					return simulate(os.Stdout, s, cmd.Args().First())
				},
			},
			{
				Name:      "hints",
				Usage:     "show how a guess splits the secrets",
				ArgsUsage: "<guess>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("need exactly one guess", 1)
					}
					s, err := gc.newSolver()
					if err != nil {
						return err
					}
					return printWordHints(os.Stdout, s.Cache(), cmd.Args().First())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wordle")
	}
}

func lookup(store *words.Store, w string) (words.Index, error) {
	idx, ok := store.Lookup(w)
	if !ok {
		return 0, fmt.Errorf("%q is not an allowed guess", w)
	}
	return idx, nil
}
