package crypto

import (
	"errors"
	"fmt"
	"io"

	"github.com/sethvargo/go-password/password"
)

var (
	ErrDigitsDisabled  = errors.New("digit count requested but digits are disabled")
	ErrSymbolsDisabled = errors.New("symbol count requested but symbols are disabled")
	ErrNegativeCount   = errors.New("digit and symbol counts must not be negative")
	ErrCountsTooLarge  = errors.New("digit and symbol counts exceed password length")
)

// Composition pins the exact number of digits and symbols in a password.
// The remaining positions are letters.
type Composition struct {
	Digits  int
	Symbols int
}

// GenerateComposed produces a password of cfg.Length holding exactly c.Digits
// digits and c.Symbols symbols from the same character classes as Generate.
// A nil reader uses crypto/rand.
func GenerateComposed(cfg Config, c Composition, r io.Reader) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if c.Digits < 0 || c.Symbols < 0 {
		return "", ErrNegativeCount
	}
	if c.Digits > 0 && !cfg.IncludeDigits {
		return "", ErrDigitsDisabled
	}
	if c.Symbols > 0 && !cfg.IncludeSymbols {
		return "", ErrSymbolsDisabled
	}
	if c.Digits+c.Symbols > cfg.Length {
		return "", ErrCountsTooLarge
	}

	g, err := password.NewGenerator(&password.GeneratorInput{
		LowerLetters: lowercaseChars,
		UpperLetters: uppercaseChars,
		Digits:       digitChars,
		Symbols:      symbolChars,
		Reader:       r,
	})
	if err != nil {
		return "", fmt.Errorf("creating composed generator: %w", err)
	}

	pw, err := g.Generate(cfg.Length, c.Digits, c.Symbols, false, true)
	if err != nil {
		return "", fmt.Errorf("generating composed password: %w", err)
	}
	return pw, nil
}
