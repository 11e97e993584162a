package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/repository"
)

var (
	ErrInvalidPresetName = errors.New("preset name must be 1-64 characters of letters, digits, '-' or '_'")
	ErrPresetNotFound    = errors.New("preset not found")
)

var presetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// PresetStore is the persistence the preset service needs.
type PresetStore interface {
	Upsert(ctx context.Context, p *model.Preset) error
	Get(ctx context.Context, name string) (*model.Preset, error)
	List(ctx context.Context) ([]model.Preset, error)
	Delete(ctx context.Context, name string) error
}

var _ PresetStore = (*repository.PresetRepository)(nil)

// PresetService manages named generation configs.
type PresetService struct {
	store PresetStore
}

// NewPresetService creates a new PresetService.
func NewPresetService(store PresetStore) *PresetService {
	return &PresetService{store: store}
}

// Save validates and stores a preset, defaulting missing flags to true.
func (s *PresetService) Save(ctx context.Context, name string, req model.PresetRequest) (model.Preset, error) {
	if !presetNamePattern.MatchString(name) {
		return model.Preset{}, ErrInvalidPresetName
	}

	p := model.Preset{
		Name:    name,
		Length:  req.Length,
		Numbers: boolOrDefault(req.Numbers, true),
		Symbols: boolOrDefault(req.Symbols, true),
	}
	if p.Length == 0 {
		p.Length = crypto.DefaultLength
	}
	if err := presetConfig(p).Validate(); err != nil {
		return model.Preset{}, err
	}

	if err := s.store.Upsert(ctx, &p); err != nil {
		return model.Preset{}, err
	}
	return p, nil
}

// GetPreset returns a stored preset.
func (s *PresetService) GetPreset(ctx context.Context, name string) (model.Preset, error) {
	if !presetNamePattern.MatchString(name) {
		return model.Preset{}, ErrInvalidPresetName
	}

	p, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.Preset{}, ErrPresetNotFound
		}
		return model.Preset{}, err
	}
	return *p, nil
}

// List returns all presets.
func (s *PresetService) List(ctx context.Context) ([]model.Preset, error) {
	return s.store.List(ctx)
}

// Delete removes a preset.
func (s *PresetService) Delete(ctx context.Context, name string) error {
	err := s.store.Delete(ctx, name)
	if errors.Is(err, repository.ErrPresetNotFound) {
		return ErrPresetNotFound
	}
	return err
}
