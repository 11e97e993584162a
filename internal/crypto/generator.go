package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*-_+=[]{}~`"

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 12
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 6")
	ErrLengthTooLong  = errors.New("password length must be at most 100")
)

// Config controls pool assembly and output length.
type Config struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfig returns 12 characters with digits and symbols enabled.
func DefaultConfig() Config {
	return Config{
		Length:         DefaultLength,
		IncludeDigits:  true,
		IncludeSymbols: true,
	}
}

// Validate reports whether the length is within [MinLength, MaxLength].
// Generate does not call it; bounds are enforced by whoever owns the input.
func (c Config) Validate() error {
	if c.Length < MinLength {
		return ErrLengthTooShort
	}
	if c.Length > MaxLength {
		return ErrLengthTooLong
	}
	return nil
}

// Clamp returns a copy of c with the length forced into bounds.
func (c Config) Clamp() Config {
	c.Length = min(max(c.Length, MinLength), MaxLength)
	return c
}

// Pool returns the eligible characters for cfg, in fixed order:
// uppercase, lowercase, then digits and symbols when enabled.
func Pool(cfg Config) string {
	var sb strings.Builder
	sb.Grow(len(uppercaseChars) + len(lowercaseChars) + len(digitChars) + len(symbolChars))

	sb.WriteString(uppercaseChars)
	sb.WriteString(lowercaseChars)
	if cfg.IncludeDigits {
		sb.WriteString(digitChars)
	}
	if cfg.IncludeSymbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// Generate draws cfg.Length characters uniformly, with replacement, from
// Pool(cfg). The pool always holds the 52 letters, so there is no error path.
func Generate(cfg Config, src Source) string {
	if cfg.Length <= 0 {
		return ""
	}

	pool := Pool(cfg)
	result := make([]byte, cfg.Length)
	for i := range result {
		result[i] = pool[src.IntN(len(pool))]
	}
	return string(result)
}

// IsDigit reports whether ch belongs to the digit class.
func IsDigit(ch rune) bool {
	return strings.ContainsRune(digitChars, ch)
}

// IsSymbol reports whether ch belongs to the fixed symbol set.
func IsSymbol(ch rune) bool {
	return strings.ContainsRune(symbolChars, ch)
}
