package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordle-entropy/config"
	"github.com/powellquiring/wordle-entropy/gowordle"
	"github.com/powellquiring/wordle-entropy/wordle"
	"github.com/powellquiring/wordle-entropy/words"
)

// exampleHints is printed ahead of a ranking to show the glyphs
var exampleHints = gowordle.Hints{gowordle.Exact, gowordle.Exist, gowordle.Missing, gowordle.Missing, gowordle.Missing}

type GlobalConfiguration struct {
	config.Config
	rule    gowordle.Rule
	profile bool
	out     io.Writer
	errOut  io.Writer
}

// globalConfiguration layers the config file, then environment and flags, over the defaults
func globalConfiguration(cmd *cli.Command) (GlobalConfiguration, error) {
	cfg := config.Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return GlobalConfiguration{}, err
		}
	}
	if cmd.IsSet("guesses") {
		cfg.Guesses = cmd.String("guesses")
	}
	if cmd.IsSet("truths") {
		cfg.Truths = cmd.String("truths")
	}
	if cmd.IsSet("rule") {
		cfg.Rule = cmd.String("rule")
	}
	if cmd.IsSet("top") {
		cfg.Top = cmd.Int("top")
	}
	if cmd.IsSet("workers") {
		cfg.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("unique") {
		cfg.Unique = cmd.Bool("unique")
	}
	if cmd.IsSet("progress") {
		cfg.Progress = cmd.Bool("progress")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return GlobalConfiguration{}, cli.Exit(err.Error(), 2)
	}
	rule, err := gowordle.RuleByName(cfg.Rule)
	if err != nil {
		return GlobalConfiguration{}, cli.Exit(err.Error(), 2)
	}

	root := cmd.Root()
	ret := GlobalConfiguration{
		Config:  cfg,
		rule:    rule,
		profile: cmd.Bool("profile"),
		out:     root.Writer,
		errOut:  root.ErrWriter,
	}
	if ret.out == nil {
		ret.out = os.Stdout
	}
	if ret.errOut == nil {
		ret.errOut = os.Stderr
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: ret.errOut, TimeFormat: time.TimeOnly}).
		Level(cfg.LoggerLevel()).
		With().Timestamp().Logger()
	log.Debug().Interface("config", cfg).Msg("configuration")
	return ret, nil
}

func loadList(kind, source string) ([]gowordle.Word, error) {
	list, err := words.Resolve(source)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", kind, err)
	}
	log.Info().Str("list", kind).Str("source", source).Int("words", len(list)).Msg("loaded word list")
	return list, nil
}

func newProgressBar(globalConfig GlobalConfiguration, total int) *progressbar.ProgressBar {
	if !globalConfig.Progress {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(globalConfig.errOut),
		progressbar.OptionSetDescription("ranking"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(globalConfig.errOut)
		}),
	)
}

// rank prints the example hints then the guesses with the most entropy
func rank(ctx context.Context, globalConfig GlobalConfiguration) error {
	guesses, err := loadList("guesses", globalConfig.Guesses)
	if err != nil {
		return err
	}
	truths, err := loadList("truths", globalConfig.Truths)
	if err != nil {
		return err
	}
	if globalConfig.Unique {
		guesses = gowordle.FilterDistinct(guesses)
		log.Info().Int("words", len(guesses)).Msg("kept guesses with distinct letters")
	}

	workers := globalConfig.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bar := newProgressBar(globalConfig, len(guesses))
	ranker := wordle.NewRanker(
		wordle.WithRule(globalConfig.rule),
		wordle.WithWorkers(workers),
		wordle.WithObserver(func(done, total int) {
			_ = bar.Add(1)
		}),
	)

	fmt.Fprintln(globalConfig.out, exampleHints)
	start := time.Now()
	scored, err := ranker.Rank(ctx, guesses, truths)
	_ = bar.Finish()
	if err != nil {
		return err
	}
	log.Info().Int("guesses", len(guesses)).Int("truths", len(truths)).Int("workers", workers).
		Dur("elapsed", time.Since(start)).Msg("ranked guesses")
	return wordle.WriteRanking(globalConfig.out, wordle.Top(scored, globalConfig.Top))
}

func check(globalConfig GlobalConfiguration, guessString, truthString string) error {
	guess, err := gowordle.ParseWord(guessString)
	if err != nil {
		return cli.Exit("guess: "+err.Error(), 2)
	}
	truth, err := gowordle.ParseWord(truthString)
	if err != nil {
		return cli.Exit("truth: "+err.Error(), 2)
	}
	hints := globalConfig.rule(guess, truth)
	_, err = fmt.Fprintln(globalConfig.out, hints, hints.Colors())
	return err
}

// dist prints how a guess splits the truths, largest groups first
func dist(globalConfig GlobalConfiguration, guessString string) error {
	guess, err := gowordle.ParseWord(guessString)
	if err != nil {
		return cli.Exit("guess: "+err.Error(), 2)
	}
	truths, err := loadList("truths", globalConfig.Truths)
	if err != nil {
		return err
	}
	d := wordle.NewDictionary(truths)
	buckets := d.Buckets(globalConfig.rule, guess, d.WordlistAll())
	if _, err := fmt.Fprintf(globalConfig.out, "%s: %.5f, %d patterns over %d truths\n",
		guess, wordle.BucketsEntropy(buckets), len(buckets), d.Len()); err != nil {
		return err
	}
	return wordle.WriteBuckets(globalConfig.out, d, buckets, globalConfig.Top)
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

// withProfile runs action, under the cpu profiler if --profile is set
func withProfile(globalConfig GlobalConfiguration, action func() error) error {
	if globalConfig.profile {
		stop, err := cpuProfile()
		if err != nil {
			return err
		}
		defer stop()
	}
	return action()
}

func rankAction(ctx context.Context, cmd *cli.Command) error {
	globalConfig, err := globalConfiguration(cmd)
	if err != nil {
		return err
	}
	return withProfile(globalConfig, func() error {
		return rank(ctx, globalConfig)
	})
}

func newCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "wdl",
		Usage:     "rank wordle guesses by the entropy of their hints",
		Writer:    out,
		ErrWriter: errOut,
		// errors are reported by main
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "YAML file with settings, flags and environment take precedence",
				Sources: cli.EnvVars("WDL_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "guesses",
				Aliases: []string{"g"},
				Value:   words.Possible,
				Usage:   "candidate guesses: 'possible' for the bundled list or a file with a word per line",
				Sources: cli.EnvVars("WDL_GUESSES"),
			},
			&cli.StringFlag{
				Name:    "truths",
				Aliases: []string{"t"},
				Value:   words.Possible,
				Usage:   "words that may be the answer: 'possible' for the bundled list or a file with a word per line",
				Sources: cli.EnvVars("WDL_TRUTHS"),
			},
			&cli.StringFlag{
				Name:    "rule",
				Value:   gowordle.RuleReference,
				Usage:   "hint rule: reference or standard (exact letters are not reused for exist)",
				Sources: cli.EnvVars("WDL_RULE"),
			},
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Value:   20,
				Usage:   "number of lines to print, 0 is all",
				Sources: cli.EnvVars("WDL_TOP"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Value:   1,
				Usage:   "goroutines scoring guesses, 0 is one per cpu",
				Sources: cli.EnvVars("WDL_WORKERS"),
			},
			&cli.BoolFlag{
				Name:    "unique",
				Aliases: []string{"u"},
				Usage:   "only rank guesses with five different letters",
				Sources: cli.EnvVars("WDL_UNIQUE"),
			},
			&cli.BoolFlag{
				Name:    "progress",
				Aliases: []string{"p"},
				Usage:   "show progress bar",
				Sources: cli.EnvVars("WDL_PROGRESS"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   zerolog.LevelInfoValue,
				Usage:   "trace, debug, info, warn, error or disabled",
				Sources: cli.EnvVars("WDL_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "store profile data to analyze in cpu.prof",
			},
		},
		Action: rankAction,
		Commands: []*cli.Command{
			{
				Name: "rank",
				Usage: `rank
				Score every guess by the entropy of the hints it gets over all of the truths,
				print the example hints and then the best guesses. This is the default command.
				`,
				Action: rankAction,
			},
			{
				Name:      "check",
				Usage:     "print the hints for a guess when the answer is truth",
				ArgsUsage: "GUESS TRUTH",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return cli.Exit("must have a guess and a truth", 1)
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					return check(globalConfig, cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
			{
				Name: "dist",
				Usage: `dist GUESS
				Group the truths by the hints they give for GUESS, largest groups first.
				The number of groups printed is limited by --top.
				`,
				ArgsUsage: "GUESS",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return cli.Exit("must have one guess", 1)
					}
					globalConfig, err := globalConfiguration(cmd)
					if err != nil {
						return err
					}
					return withProfile(globalConfig, func() error {
						return dist(globalConfig, cmd.Args().First())
					})
				},
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		code := 1
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		log.Error().Err(err).Msg("wdl failed")
		os.Exit(code)
	}
}
