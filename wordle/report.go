package wordle

import (
	"fmt"
	"io"
	"strings"
)

// WriteRanking writes a line per guess: the word followed by its entropy
func WriteRanking(w io.Writer, scored []ScoredGuess) error {
	for _, item := range scored {
		if _, err := fmt.Fprintf(w, "%s: %.5f\n", item.Word, item.Entropy); err != nil {
			return err
		}
	}
	return nil
}

// WriteBuckets writes the hints, size and members of each bucket, limit <= 0 writes all buckets
func WriteBuckets(w io.Writer, d *Dictionary, buckets []Bucket, limit int) error {
	total := 0
	for _, bucket := range buckets {
		total += bucket.Len()
	}
	if limit <= 0 || limit > len(buckets) {
		limit = len(buckets)
	}
	for _, bucket := range buckets[:limit] {
		p := float64(bucket.Len()) / float64(total)
		words := strings.Join(d.WordlistStrings(bucket.Matching), " ")
		if _, err := fmt.Fprintf(w, "%s %s %4d %.4f: %s\n", bucket.Hints, bucket.Hints.Colors(), bucket.Len(), p, words); err != nil {
			return err
		}
	}
	return nil
}
