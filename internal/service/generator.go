package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

// PresetLookup resolves a preset name to its stored settings.
type PresetLookup interface {
	GetPreset(ctx context.Context, name string) (model.Preset, error)
}

// ErrPresetsUnavailable is returned when a request names a preset but no
// preset store is configured.
var ErrPresetsUnavailable = errors.New("presets are not available")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src     crypto.Source
	presets PresetLookup
}

// NewGeneratorService creates a GeneratorService drawing from src.
// presets may be nil.
func NewGeneratorService(src crypto.Source, presets PresetLookup) *GeneratorService {
	return &GeneratorService{src: src, presets: presets}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := crypto.DefaultConfig()

	if req.Preset != "" {
		if s.presets == nil {
			return model.GenerateResponse{}, ErrPresetsUnavailable
		}
		p, err := s.presets.GetPreset(ctx, req.Preset)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		cfg = presetConfig(p)
	}

	if req.Length != nil {
		cfg.Length = *req.Length
	}
	cfg.IncludeDigits = boolOrDefault(req.Numbers, cfg.IncludeDigits)
	cfg.IncludeSymbols = boolOrDefault(req.Symbols, cfg.IncludeSymbols)

	if err := cfg.Validate(); err != nil {
		return model.GenerateResponse{}, err
	}

	var password string
	if req.DigitCount != nil || req.SymbolCount != nil {
		comp := crypto.Composition{
			Digits:  intOrZero(req.DigitCount),
			Symbols: intOrZero(req.SymbolCount),
		}
		var err error
		password, err = crypto.GenerateComposed(cfg, comp, nil)
		if err != nil {
			return model.GenerateResponse{}, err
		}
	} else {
		password = crypto.Generate(cfg, s.src)
	}

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
		PoolSize: len(crypto.Pool(cfg)),
	}

	if req.Hash {
		hash, err := crypto.Hash(password, crypto.DefaultHashParams())
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
		resp.Hash = hash
	}

	return resp, nil
}

func presetConfig(p model.Preset) crypto.Config {
	return crypto.Config{
		Length:         p.Length,
		IncludeDigits:  p.Numbers,
		IncludeSymbols: p.Symbols,
	}
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
