package gowordle

import (
	"errors"
	"fmt"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set"
)

// WordLen is the number of letters in every word
const WordLen = 5

// consumed replaces a truth letter once it has been matched, it can not be a real letter
const consumed rune = 0

var ErrMalformedWord = errors.New("malformed word")

// Word is a fixed length sequence of letters
type Word [WordLen]rune

func NewWord(letters [WordLen]rune) Word {
	return Word(letters)
}

// ParseWord converts a string of exactly 5 letters into a Word
func ParseWord(s string) (Word, error) {
	var ret Word
	if n := utf8.RuneCountInString(s); n != WordLen {
		return ret, fmt.Errorf("%w: %q has %d letters, want %d", ErrMalformedWord, s, n, WordLen)
	}
	i := 0
	for _, letter := range s {
		if letter == consumed || letter == utf8.RuneError {
			return ret, fmt.Errorf("%w: %q has an invalid letter at %d", ErrMalformedWord, s, i)
		}
		ret[i] = letter
		i++
	}
	return ret, nil
}

func MustParseWord(s string) Word {
	ret, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func ParseWords(strings []string) ([]Word, error) {
	ret := make([]Word, 0, len(strings))
	for _, s := range strings {
		word, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, word)
	}
	return ret, nil
}

func MustParseWords(strings ...string) []Word {
	ret, err := ParseWords(strings)
	if err != nil {
		panic(err)
	}
	return ret
}

func (w Word) String() string {
	return string(w[:])
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, word := range words {
		ret = append(ret, word.String())
	}
	return ret
}

// Letters returns the set of distinct letters in the word
func Letters(w Word) mapset.Set {
	ret := mapset.NewThreadUnsafeSet()
	for _, letter := range w {
		ret.Add(letter)
	}
	return ret
}

// DistinctLetters is true if no letter is repeated
func DistinctLetters(w Word) bool {
	return Letters(w).Cardinality() == WordLen
}

// Disjoint is true if the two words share no letter
func Disjoint(a, b Word) bool {
	return Letters(a).Intersect(Letters(b)).Cardinality() == 0
}

// FilterDistinct keeps the words with five different letters, order is preserved
func FilterDistinct(words []Word) []Word {
	ret := make([]Word, 0, len(words))
	for _, word := range words {
		if DistinctLetters(word) {
			ret = append(ret, word)
		}
	}
	return ret
}
