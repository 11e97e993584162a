package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen-go/internal/crypto"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func useFakeClipboard(t *testing.T) *fakeClipboard {
	t.Helper()
	fake := &fakeClipboard{}
	prev := clipboardWriter
	clipboardWriter = fake
	t.Cleanup(func() { clipboardWriter = prev })
	return fake
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		// nil makes cobra fall back to os.Args, which holds the test flags.
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func Test_generateDefaults(t *testing.T) {
	out, _, err := run(t, "")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 1)
	assert.Len(t, got[0], crypto.DefaultLength)
}

func Test_generateFlags(t *testing.T) {
	out, _, err := run(t, "", "-l", "6", "--numbers=false", "--symbols=false", "-c", "3", "--crypto")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	for _, pw := range got {
		assert.Len(t, pw, 6)
		for _, ch := range pw {
			assert.False(t, crypto.IsDigit(ch) || crypto.IsSymbol(ch), "unexpected %q in %q", string(ch), pw)
		}
	}
}

func Test_generateRejectsOutOfBounds(t *testing.T) {
	_, _, err := run(t, "", "-l", "5")
	assert.ErrorIs(t, err, crypto.ErrLengthTooShort)

	_, _, err = run(t, "", "-l", "101")
	assert.ErrorIs(t, err, crypto.ErrLengthTooLong)

	_, _, err = run(t, "", "-c", "0")
	assert.Error(t, err)
}

func Test_generateCopy(t *testing.T) {
	fake := useFakeClipboard(t)

	out, stderr, err := run(t, "", "-c", "2", "--copy")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, got[1], fake.text)
	assert.Contains(t, stderr, "copied")
}

func Test_generateCopyFailureIsReported(t *testing.T) {
	fake := useFakeClipboard(t)
	fake.err = errors.New("no clipboard utility found")

	_, _, err := run(t, "", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard utility found")
}

func Test_generateProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: wifi\n    length: 30\n    numbers: false\n"), 0o600))

	out, _, err := run(t, "", "--profiles", path, "--profile", "wifi")
	require.NoError(t, err)
	pw := lines(out)[0]
	assert.Len(t, pw, 30)
	assert.False(t, strings.ContainsAny(pw, "0123456789"))

	// Explicit flags win over the profile.
	out, _, err = run(t, "", "--profiles", path, "--profile", "wifi", "-l", "8")
	require.NoError(t, err)
	assert.Len(t, lines(out)[0], 8)

	_, _, err = run(t, "", "--profiles", path, "--profile", "nope")
	assert.Error(t, err)
}

func Test_token(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	out, _, err := run(t, "", "token", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := crypto.ParsePresetToken(strings.TrimSpace(out), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_tokenDefaultsToConfiguredExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_EXPIRY", "90m")

	out, _, err := run(t, "", "token")
	require.NoError(t, err)

	claims, err := crypto.ParsePresetToken(strings.TrimSpace(out), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	t.Setenv("JWT_EXPIRY", "soon")
	_, _, err = run(t, "", "token")
	assert.Error(t, err)
}

func Test_tokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := run(t, "", "token")
	assert.Error(t, err)
}

func Test_version(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, Version(), strings.TrimSpace(out))
}
