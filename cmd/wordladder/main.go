// Package main is the entry point for WordLadder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/wordladder/internal/config"
	"github.com/samdwyer/wordladder/internal/dictionary"
	"github.com/samdwyer/wordladder/internal/game"
	"github.com/samdwyer/wordladder/internal/ladder"
	"github.com/samdwyer/wordladder/internal/logging"
	"github.com/samdwyer/wordladder/internal/telemetry"
	"github.com/samdwyer/wordladder/internal/words"
)

func main() {
	// Load .env file for local development
	dotenvErr := godotenv.Load()
	if errors.Is(dotenvErr, fs.ErrNotExist) {
		dotenvErr = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr, dotenvErr)
	stop()
	os.Exit(code)
}

// exitFailure reports a failure that is neither a configuration error nor a
// session outcome, such as an unusable environment or a broken stdout.
const exitFailure = 2

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, dotenvErr error) int {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(stderr, "wordladder: %v\n", err)
		return exitFailure
	}

	log, err := logging.New(stderr, env.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "wordladder: %v\n", err)
	}
	if dotenvErr != nil {
		log.Warn().Err(dotenvErr).Msg(".env file not loaded")
	}

	shutdown, err := telemetry.Setup(ctx, env.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("telemetry shutdown")
			}
		}()
	}

	cmd := newCommand(env, log, stdin, stdout, stderr)
	err = cmd.Run(ctx, args)
	if err == nil {
		return game.ExitWon
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}

	log.Error().Err(err).Msg("wordladder failed")
	fmt.Fprintf(stderr, "wordladder: %v\n", err)
	return exitFailure
}

// newCommand builds the CLI. Flag parsing is left to config.Resolve, which
// enforces the ladder's own option rules and error codes.
func newCommand(env config.Env, log zerolog.Logger, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            "wordladder",
		Usage:           "turn one word into another, one letter at a time",
		UsageText:       config.UsageText,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		// Exit codes are reported by run, not by the cli package.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return play(ctx, cmd.Args().Slice(), env, log, stdin, stdout)
		},
	}
}

// play resolves the configuration, loads the dictionary and runs a session.
// A finished session that was not won is reported as a cli.ExitCoder.
func play(ctx context.Context, args []string, env config.Env, log zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	supplier, err := newSupplier(env.Seed)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(ctx, args, config.Defaults{DictionaryPath: env.DictFile}, supplier)
	if err != nil {
		return err
	}
	log.Debug().
		Str("from", cfg.From).
		Str("to", cfg.To).
		Int("length", cfg.WordLength).
		Int("limit", cfg.StepLimit).
		Str("dictionary", cfg.DictionaryPath).
		Msg("configuration resolved")

	dict, err := dictionary.LoadFile(ctx, cfg.DictionaryPath, cfg.WordLength)
	if err != nil {
		// The path was readable a moment ago; treat a failure now the same way.
		log.Debug().Err(err).Msg("dictionary load failed")
		return &config.Error{Kind: config.KindDictionaryPath, Path: cfg.DictionaryPath}
	}
	log.Debug().Int("words", dict.Len()).Msg("dictionary loaded")

	engine, err := ladder.New(ladder.Rules{From: cfg.From, To: cfg.To, StepLimit: cfg.StepLimit}, dict)
	if err != nil {
		return err
	}

	outcome, err := game.NewSession(engine, stdin, stdout, game.WithLogger(log)).Run(ctx)
	if err != nil {
		return err
	}
	if outcome == ladder.Won {
		return nil
	}
	return cli.Exit("", game.ExitCode(outcome))
}

// newSupplier returns a random word supplier seeded with seed, or with a
// fresh random seed when seed is 0.
func newSupplier(seed int64) (words.Supplier, error) {
	registry, err := words.LoadRegistry()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		if seed, err = words.NewSeed(); err != nil {
			return nil, err
		}
	}
	return words.NewSupplier(registry, rand.New(rand.NewSource(seed))), nil
}
