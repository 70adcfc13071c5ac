package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/powellquiring/wordle-entropy/gowordle"
	"github.com/powellquiring/wordle-entropy/words"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := newCommand(&out, &errOut).Run(context.Background(), append([]string{"wdl", "--log-level", "disabled"}, args...))
	return out.String(), err
}

func writeList(t *testing.T, list ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "speed", "abide")
	require.NoError(t, err)
	assert.Equal(t, "⬜️⬜️🟨⬜️🟨 rryry\n", out)

	out, err = run(t, "--rule", "standard", "check", "aaxyz", "abcde")
	require.NoError(t, err)
	assert.Equal(t, "🟩⬜️⬜️⬜️⬜️ grrrr\n", out)
}

func TestCheckBadArgs(t *testing.T) {
	_, err := run(t, "check", "speed")
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.ExitCode())

	_, err = run(t, "check", "speedy", "abide")
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.ExitCode())

	_, err = run(t, "--rule", "hard", "check", "speed", "abide")
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestRank(t *testing.T) {
	path := writeList(t, "fghij", "abcde", "edcba")
	for _, workers := range []string{"1", "3"} {
		out, err := run(t, "--guesses", path, "--truths", path, "--top", "2", "--workers", workers, "rank")
		require.NoError(t, err)
		assert.Equal(t, "🟩🟨⬜️⬜️⬜️\nabcde: 1.58496\nedcba: 1.58496\n", out)
	}
}

func TestRankIsDefault(t *testing.T) {
	path := writeList(t, "abcde", "edcba", "fghij")
	out, err := run(t, "--guesses", path, "--truths", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, exampleHints.String(), lines[0])
	assert.Equal(t, "abcde: 1.58496", lines[1])
}

func TestRankBundledTop20(t *testing.T) {
	out, err := run(t, "--workers", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 21)
}

func TestRankUnique(t *testing.T) {
	path := writeList(t, "speed", "abcde", "geese")
	out, err := run(t, "--guesses", path, "--truths", path, "--unique", "--top", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "speed")
	assert.Contains(t, out, "abcde:")
}

func TestRankMalformedList(t *testing.T) {
	path := writeList(t, "abcde", "bad", "fghij")
	out, err := run(t, "--guesses", path)
	var lineErr *words.LineError
	require.True(t, errors.As(err, &lineErr), "%v", err)
	assert.Equal(t, 2, lineErr.Line)
	assert.ErrorIs(t, err, gowordle.ErrMalformedWord)
	assert.Empty(t, out)
}

func TestRankConfigFile(t *testing.T) {
	path := writeList(t, "abcde", "edcba", "fghij")
	cfg := filepath.Join(t.TempDir(), "wdl.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("guesses: "+path+"\ntruths: "+path+"\ntop: 1\n"), 0o644))

	out, err := run(t, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "🟩🟨⬜️⬜️⬜️\nabcde: 1.58496\n", out)

	// flags win over the file
	out, err = run(t, "--config", cfg, "--top", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestDist(t *testing.T) {
	path := writeList(t, "abcde", "fghij", "vwxyz")
	out, err := run(t, "--truths", path, "dist", "abcde")
	require.NoError(t, err)
	assert.Equal(t,
		"abcde: 0.91830, 2 patterns over 3 truths\n"+
			"⬜️⬜️⬜️⬜️⬜️ rrrrr    2 0.6667: fghij vwxyz\n"+
			"🟩🟩🟩🟩🟩 ggggg    1 0.3333: abcde\n",
		out)
}
