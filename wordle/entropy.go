package wordle

import (
	"math"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

// Entropy is the Shannon entropy in bits of counts observed over n samples.
// Zero counts contribute nothing. n of zero has no information and returns 0.
func Entropy(counts []int, n int) float64 {
	if n <= 0 {
		return 0
	}
	ret := 0.0
	for _, count := range counts {
		if count <= 0 {
			continue
		}
		p := float64(count) / float64(n)
		ret -= p * math.Log2(p)
	}
	return ret
}

// Distribution counts the hints a guess produces over a list of truths.
// Patterns are remembered in the order first seen so the entropy sum is
// always done in the same order.
type Distribution struct {
	counts map[gowordle.Hints]int
	order  []gowordle.Hints
	total  int
}

func NewDistribution() *Distribution {
	return &Distribution{counts: make(map[gowordle.Hints]int)}
}

// Distribute checks guess against every truth, in order
func Distribute(rule gowordle.Rule, guess gowordle.Word, truths []gowordle.Word) *Distribution {
	ret := NewDistribution()
	for _, truth := range truths {
		ret.Add(rule(guess, truth))
	}
	return ret
}

func (d *Distribution) Add(hints gowordle.Hints) {
	if _, ok := d.counts[hints]; !ok {
		d.order = append(d.order, hints)
	}
	d.counts[hints]++
	d.total++
}

func (d *Distribution) Count(hints gowordle.Hints) int {
	return d.counts[hints]
}

// Patterns returns the distinct hints in first seen order
func (d *Distribution) Patterns() []gowordle.Hints {
	return d.order
}

func (d *Distribution) Counts() []int {
	ret := make([]int, len(d.order))
	for i, hints := range d.order {
		ret[i] = d.counts[hints]
	}
	return ret
}

func (d *Distribution) Total() int {
	return d.total
}

func (d *Distribution) Entropy() float64 {
	return Entropy(d.Counts(), d.total)
}
