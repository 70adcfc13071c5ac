package gowordle

import (
	"fmt"
	"sort"
)

// Rule computes the hints for a guess against the hidden truth
type Rule func(guess, truth Word) Hints

// Check returns the hints for guess when the hidden word is truth.
//
// Exact letters are marked first. Then, in guess order, every other letter
// takes the first unclaimed occurrence of itself in truth and is marked Exist.
// A claimed truth letter can not be claimed again, so with a repeated guess
// letter and a single truth occurrence the earlier guess position wins.
// Exact matches do not claim their truth letter.
func Check(guess, truth Word) Hints {
	var ret Hints // all Missing
	for i, letter := range guess {
		if letter == truth[i] {
			ret[i] = Exact
		}
	}
	// truth is a copy, claiming letters does not leak to the caller
	for i, letter := range guess {
		if ret[i] == Exact {
			continue
		}
		for f, t := range truth {
			if t == letter {
				ret[i] = Exist
				truth[f] = consumed
				break
			}
		}
	}
	return ret
}

// CheckStandard scores like the official game: truth letters that were matched
// exactly are not available to Exist, the rest are counted and handed out in
// guess order.
func CheckStandard(guess, truth Word) Hints {
	var ret Hints
	notExact := make(map[rune]int, WordLen)
	for i, truthLetter := range truth {
		if guess[i] == truthLetter {
			ret[i] = Exact
		} else {
			notExact[truthLetter]++
		}
	}
	// turn Missing into Exist if the letter is still available
	for i, guessLetter := range guess {
		if ret[i] == Exact {
			continue
		}
		if notExact[guessLetter] > 0 {
			ret[i] = Exist
			notExact[guessLetter]--
		}
	}
	return ret
}

const (
	RuleReference = "reference"
	RuleStandard  = "standard"
)

var rules = map[string]Rule{
	RuleReference: Check,
	RuleStandard:  CheckStandard,
}

func RuleByName(name string) (Rule, error) {
	if name == "" {
		return Check, nil
	}
	rule, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q, want one of %v", name, RuleNames())
	}
	return rule, nil
}

func RuleNames() []string {
	ret := make([]string, 0, len(rules))
	for name := range rules {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
