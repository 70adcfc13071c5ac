package wordle

import (
	"context"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

type ScoredGuess struct {
	Word    gowordle.Word
	Entropy float64
}

// Observer is told each time a guess has been scored. It may be called from
// several goroutines at once.
type Observer func(done, total int)

type Ranker struct {
	rule     gowordle.Rule
	workers  int
	observer Observer
}

type Option func(*Ranker)

func WithRule(rule gowordle.Rule) Option {
	return func(r *Ranker) {
		if rule != nil {
			r.rule = rule
		}
	}
}

// WithWorkers scores guesses on n goroutines, 1 or less is sequential
func WithWorkers(n int) Option {
	return func(r *Ranker) {
		r.workers = n
	}
}

func WithObserver(observer Observer) Option {
	return func(r *Ranker) {
		r.observer = observer
	}
}

func NewRanker(opts ...Option) *Ranker {
	ret := &Ranker{rule: gowordle.Check, workers: 1}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Rank scores every guess against truths and sorts by entropy, highest first
func Rank(guesses, truths []gowordle.Word) []ScoredGuess {
	ret, _ := NewRanker().Rank(context.Background(), guesses, truths)
	return ret
}

func (r *Ranker) Score(guess gowordle.Word, truths []gowordle.Word) ScoredGuess {
	return ScoredGuess{Word: guess, Entropy: Distribute(r.rule, guess, truths).Entropy()}
}

// Rank scores each guess against all of the truths. The result is sorted by
// entropy descending, equal entropies keep the order of guesses. The worker
// count does not change the result. A cancelled ctx returns ctx.Err().
func (r *Ranker) Rank(ctx context.Context, guesses, truths []gowordle.Word) ([]ScoredGuess, error) {
	ret := make([]ScoredGuess, len(guesses))
	var done atomic.Int64
	scoreOne := func(i int) {
		ret[i] = r.Score(guesses[i], truths)
		if r.observer != nil {
			r.observer(int(done.Add(1)), len(guesses))
		}
	}

	if r.workers <= 1 {
		for i := range guesses {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scoreOne(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.workers)
		for i := range guesses {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				scoreOne(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	SortByEntropy(ret)
	return ret, nil
}

func SortByEntropy(scored []ScoredGuess) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Entropy > scored[j].Entropy
	})
}

// Top returns the first n, all of them if n is not positive
func Top(scored []ScoredGuess, n int) []ScoredGuess {
	if n <= 0 || n >= len(scored) {
		return scored
	}
	return scored[:n]
}
