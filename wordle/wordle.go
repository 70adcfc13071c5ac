package wordle

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

// WordleWord is an index into the dictionary
type WordleWord uint

// WordList is a set of dictionary words, a bit for each word
type WordList bitset.BitSet

type Dictionary struct {
	words        []gowordle.Word
	stringToWord map[gowordle.Word]WordleWord
}

// NewDictionary keeps the words in order, a repeated word is looked up by its first index
func NewDictionary(words []gowordle.Word) *Dictionary {
	ret := &Dictionary{words: words}
	ret.stringToWord = make(map[gowordle.Word]WordleWord, len(words))
	for i, word := range words {
		if _, ok := ret.stringToWord[word]; !ok {
			ret.stringToWord[word] = WordleWord(i)
		}
	}
	return ret
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func (d *Dictionary) Words() []gowordle.Word {
	return d.words
}

func (d *Dictionary) WordlistAll() *WordList {
	ret := bitset.New(uint(len(d.words))).Complement()
	return (*WordList)(ret)
}

func (d *Dictionary) WordlistEmpty() *WordList {
	ret := bitset.New(uint(len(d.words)))
	return (*WordList)(ret)
}

// Word finds the index of a word given as a string
func (d *Dictionary) Word(wordleWordString string) (WordleWord, bool) {
	word, err := gowordle.ParseWord(wordleWordString)
	if err != nil {
		return 0, false
	}
	return d.Lookup(word)
}

func (d *Dictionary) Lookup(word gowordle.Word) (WordleWord, bool) {
	ret, ok := d.stringToWord[word]
	return ret, ok
}

func (d *Dictionary) Get(wordleWord WordleWord) gowordle.Word {
	return d.words[wordleWord]
}

func (d *Dictionary) String(wordleWord WordleWord) string {
	return d.words[wordleWord].String()
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := []string{}
	for _, word := range wordlist.Range {
		ret = append(ret, d.String(word))
	}
	return ret
}

func (wl *WordList) Range(yield func(i int, wordleWord WordleWord) bool) {
	bs := (*bitset.BitSet)(wl)
	i := 0
	for wordleWord, ok := bs.NextSet(0); ok; wordleWord, ok = bs.NextSet(wordleWord + 1) {
		if !yield(i, WordleWord(wordleWord)) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []WordleWord {
	ret := []WordleWord{}
	for _, wordleWord := range wl.Range {
		ret = append(ret, wordleWord)
	}
	return ret
}

func (wl *WordList) FirstWord() (WordleWord, bool) {
	bs := (*bitset.BitSet)(wl)
	wordleWord, ok := bs.NextSet(0)
	return WordleWord(wordleWord), ok
}

func (wl *WordList) Len() int {
	bs := (*bitset.BitSet)(wl)
	return int(bs.Count())
}

func (wl *WordList) Insert(word WordleWord) {
	bs := (*bitset.BitSet)(wl)
	bs.Set(uint(word))
}

func (wl *WordList) Contains(word WordleWord) bool {
	bs := (*bitset.BitSet)(wl)
	return bs.Test(uint(word))
}
