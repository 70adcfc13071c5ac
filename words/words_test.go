package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordle-entropy/gowordle"
)

func TestLoad(t *testing.T) {
	list, err := Load(strings.NewReader("cigar\r\nrebut\n sissy \nrebut\n"), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"cigar", "rebut", "sissy", "rebut"}, gowordle.WordsToStrings(list))
}

func TestLoadMalformed(t *testing.T) {
	for _, tt := range []struct {
		input string
		line  int
	}{
		{"cigar\nrebu\nsissy\n", 2},
		{"cigar\nrebut\nsissys\n", 3},
		{"\ncigar\n", 1},
	} {
		list, err := Load(strings.NewReader(tt.input), "test")
		assert.Nil(t, list)
		var lineErr *LineError
		require.True(t, errors.As(err, &lineErr), "%v", err)
		assert.Equal(t, tt.line, lineErr.Line)
		assert.Equal(t, "test", lineErr.Name)
		assert.ErrorIs(t, err, gowordle.ErrMalformedWord)
	}
}

func TestLoadEmpty(t *testing.T) {
	list, err := Load(strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBundled(t *testing.T) {
	list, err := Bundled()
	require.NoError(t, err)
	assert.Greater(t, len(list), 500)
	seen := map[gowordle.Word]bool{}
	for _, word := range list {
		assert.False(t, seen[word], word.String())
		seen[word] = true
	}
	for _, s := range []string{"speed", "abide", "erase", "crane", "slate"} {
		assert.True(t, seen[gowordle.MustParseWord(s)], s)
	}
}

func TestResolve(t *testing.T) {
	bundled, err := Bundled()
	require.NoError(t, err)
	list, err := Resolve(Possible)
	require.NoError(t, err)
	assert.Equal(t, bundled, list)

	path := filepath.Join(t.TempDir(), "guesses.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))
	list, err = Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, gowordle.WordsToStrings(list))

	_, err = Resolve(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
