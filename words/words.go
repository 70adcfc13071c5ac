// Package words loads word lists, one five letter word per line.
//
// The bundled list of possible answers is embedded in the binary. Any other
// list is read from a file. A line that is not a word stops the load, there
// is no partial result.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

// Possible names the bundled list wherever a list source is configured
const Possible = "possible"

//go:embed possible-words.txt
var possibleWords string

// LineError reports the first line of a list that is not a word
type LineError struct {
	Name string
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.Name, e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load reads one word per line. Surrounding white space, like a \r, is dropped.
func Load(r io.Reader, name string) ([]gowordle.Word, error) {
	ret := []gowordle.Word{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		word, err := gowordle.ParseWord(text)
		if err != nil {
			return nil, &LineError{Name: name, Line: line, Text: sc.Text(), Err: err}
		}
		ret = append(ret, word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return ret, nil
}

func LoadFile(path string) ([]gowordle.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return Load(f, path)
}

// Bundled returns the embedded list of possible answers
func Bundled() ([]gowordle.Word, error) {
	return Load(strings.NewReader(possibleWords), "possible-words.txt")
}

// Resolve loads the bundled list for "possible" or an empty source, otherwise the file at source
func Resolve(source string) ([]gowordle.Word, error) {
	if source == "" || source == Possible {
		return Bundled()
	}
	return LoadFile(source)
}
