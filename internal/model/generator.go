package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish missing (default) from explicit values.
type GenerateRequest struct {
	Length  *int   `json:"length"`
	Numbers *bool  `json:"numbers"`
	Symbols *bool  `json:"symbols"`
	Preset  string `json:"preset,omitempty"`

	// Exact composition; when either is set the password holds exactly this
	// many digits and symbols.
	DigitCount  *int `json:"digit_count,omitempty"`
	SymbolCount *int `json:"symbol_count,omitempty"`

	Hash bool `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	PoolSize int    `json:"pool_size"`
	Hash     string `json:"hash,omitempty"`
}
