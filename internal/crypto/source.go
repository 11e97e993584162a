package crypto

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

type mathSource struct{}

func (mathSource) IntN(n int) int { return rand.IntN(n) }

// MathSource returns a general-purpose uniform source. It is not suitable for
// secrets that must resist prediction; use CryptoSource for those.
func MathSource() Source {
	return mathSource{}
}

// cryptoUint64 feeds crypto/rand into math/rand/v2 so IntN stays unbiased.
type cryptoUint64 struct{}

func (cryptoUint64) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read does not return an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// CryptoSource returns a uniform source backed by crypto/rand.
// Safe for concurrent use.
func CryptoSource() Source {
	return rand.New(cryptoUint64{})
}

// SeededSource returns a deterministic PCG source. Not safe for concurrent use.
func SeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// SourceByName maps a configuration value to a Source.
func SourceByName(name string) (Source, error) {
	switch name {
	case "", SourceMath:
		return MathSource(), nil
	case SourceCrypto:
		return CryptoSource(), nil
	default:
		return nil, fmt.Errorf("unknown random source %q", name)
	}
}
