// Package session holds the generator's UI state: the current config and the
// password it produced. Every config-changing event regenerates synchronously.
package session

import (
	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/crypto"
)

// Session is single-writer state; callers must not share it across goroutines.
type Session struct {
	src      crypto.Source
	cfg      crypto.Config
	password string
}

// New starts a session with default settings and generates the first password.
func New(src crypto.Source) *Session {
	return NewWithConfig(src, crypto.DefaultConfig())
}

// NewWithConfig starts a session from cfg, clamped to the length bounds.
func NewWithConfig(src crypto.Source, cfg crypto.Config) *Session {
	s := &Session{src: src}
	s.Apply(cfg)
	return s
}

// Config returns the current settings.
func (s *Session) Config() crypto.Config { return s.cfg }

// Password returns the password currently on display.
func (s *Session) Password() string { return s.password }

// SetLength moves the length slider. Values outside [6,100] are clamped.
func (s *Session) SetLength(n int) {
	s.cfg.Length = n
	s.cfg = s.cfg.Clamp()
	s.Regenerate()
}

// ToggleDigits flips digit inclusion.
func (s *Session) ToggleDigits() {
	s.cfg.IncludeDigits = !s.cfg.IncludeDigits
	s.Regenerate()
}

// ToggleSymbols flips symbol inclusion.
func (s *Session) ToggleSymbols() {
	s.cfg.IncludeSymbols = !s.cfg.IncludeSymbols
	s.Regenerate()
}

// Apply replaces the whole config, e.g. when a profile is selected.
func (s *Session) Apply(cfg crypto.Config) {
	s.cfg = cfg.Clamp()
	s.Regenerate()
}

// Regenerate draws a new password with the current config.
func (s *Session) Regenerate() {
	s.password = crypto.Generate(s.cfg, s.src)
}

// Copy writes the displayed password to w.
func (s *Session) Copy(w clipboard.Writer) error {
	return clipboard.Copy(w, s.password)
}
