package model

import "time"

// Preset is a named generation config. Presets never hold passwords.
type Preset struct {
	Name      string    `json:"name" yaml:"name"`
	Length    int       `json:"length" yaml:"length"`
	Numbers   bool      `json:"numbers" yaml:"numbers"`
	Symbols   bool      `json:"symbols" yaml:"symbols"`
	CreatedAt time.Time `json:"created_at,omitzero" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at,omitzero" yaml:"-"`
}

// PresetRequest is the body of PUT /api/v1/presets/{name}.
type PresetRequest struct {
	Length  int   `json:"length"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
}
