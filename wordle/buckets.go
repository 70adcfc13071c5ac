package wordle

import (
	"sort"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

// Bucket holds the truths that answer a guess with the same hints
type Bucket struct {
	Hints    gowordle.Hints
	Matching *WordList
}

func (b Bucket) Len() int {
	return b.Matching.Len()
}

// Buckets groups the truths by the hints they give for guess. The largest
// bucket is first, equal sizes keep the order the hints were first seen.
func (d *Dictionary) Buckets(rule gowordle.Rule, guess gowordle.Word, truths *WordList) []Bucket {
	ret := []Bucket{}
	index := make(map[gowordle.Hints]int)
	for _, truth := range truths.Range {
		hints := rule(guess, d.Get(truth))
		i, ok := index[hints]
		if !ok {
			i = len(ret)
			index[hints] = i
			ret = append(ret, Bucket{Hints: hints, Matching: d.WordlistEmpty()})
		}
		ret[i].Matching.Insert(truth)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Len() > ret[j].Len()
	})
	return ret
}

// BucketsEntropy is the Ranker entropy for the same guess and truths, up to rounding
func BucketsEntropy(buckets []Bucket) float64 {
	counts := make([]int, len(buckets))
	total := 0
	for i, bucket := range buckets {
		counts[i] = bucket.Len()
		total += counts[i]
	}
	return Entropy(counts, total)
}
