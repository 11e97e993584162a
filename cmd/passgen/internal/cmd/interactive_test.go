package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/session"
)

func Test_runInteractive(t *testing.T) {
	fake := useFakeClipboard(t)
	s := session.New(crypto.SeededSource(9, 9))

	input := strings.Join([]string{"l 20", "n", "s", "bogus", "l abc", "c", "q", "l 50"}, "\n")
	var out bytes.Buffer
	require.NoError(t, runInteractive(s, nil, strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, "length=12 numbers=on symbols=on")
	assert.Contains(t, text, "length=20 numbers=on symbols=on")
	assert.Contains(t, text, "length=20 numbers=off symbols=on")
	assert.Contains(t, text, "length=20 numbers=off symbols=off")
	assert.Contains(t, text, `unknown command "bogus"`)
	assert.Contains(t, text, `invalid length "abc"`)
	assert.Contains(t, text, "copied to clipboard")

	// Input after q is ignored.
	assert.Equal(t, 20, s.Config().Length)
	assert.Equal(t, s.Password(), fake.text)
	assert.Len(t, fake.text, 20)
}

func Test_runInteractiveClampsAndEndsOnEOF(t *testing.T) {
	s := session.New(crypto.MathSource())

	var out bytes.Buffer
	require.NoError(t, runInteractive(s, nil, strings.NewReader("l 1\n"), &out))

	assert.Equal(t, crypto.MinLength, s.Config().Length)
	assert.Contains(t, out.String(), "length=6")
}

func writeProfiles(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testProfiles), 0o600))
	return path
}

const testProfiles = `profiles:
  - name: wifi
    length: 30
    numbers: false
  - name: pin
    length: 8
    symbols: false
`

func Test_interactiveStartsFromProfile(t *testing.T) {
	path := writeProfiles(t)

	out, _, err := run(t, "q\n", "interactive", "--profiles", path, "--profile", "wifi")
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "length=30 numbers=off symbols=on", got[0])
	assert.Len(t, got[1], 30)

	// Explicit flags still win over the profile.
	out, _, err = run(t, "q\n", "interactive", "--profiles", path, "--profile", "wifi", "-l", "40")
	require.NoError(t, err)
	assert.Equal(t, "length=40 numbers=off symbols=on", lines(out)[0])

	_, _, err = run(t, "q\n", "interactive", "--profiles", path, "--profile", "nope")
	assert.Error(t, err)
}

func Test_runInteractiveSwitchesProfile(t *testing.T) {
	path := writeProfiles(t)
	opts := &generateOptions{profilesPath: path}
	s := session.New(crypto.SeededSource(3, 4))

	var out bytes.Buffer
	input := "p pin\np nope\np\nq\n"
	require.NoError(t, runInteractive(s, opts.loadProfile, strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, "length=8 numbers=on symbols=off")
	assert.Contains(t, text, "error: ")
	assert.Contains(t, text, "usage: p NAME")
	assert.Equal(t, crypto.Config{Length: 8, IncludeDigits: true, IncludeSymbols: false}, s.Config())
	assert.Len(t, s.Password(), 8)
}

func Test_runInteractiveWithoutProfiles(t *testing.T) {
	s := session.New(crypto.MathSource())

	var out bytes.Buffer
	require.NoError(t, runInteractive(s, nil, strings.NewReader("p wifi\n"), &out))
	assert.Contains(t, out.String(), "no profiles available")
	assert.Equal(t, crypto.DefaultConfig(), s.Config())
}
