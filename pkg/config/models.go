package config

// ModelConfig binds one caller-facing model identifier (the short ids the UI
// exposes, e.g. "gemini") to a concrete provider client and backend model.
type ModelConfig struct {
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	ApiKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url,omitempty"`
	MaxTokens   int     `mapstructure:"max_tokens,omitempty"`
	Temperature float64 `mapstructure:"temperature,omitempty"`

	// Options carries provider-specific settings the shared config schema
	// does not model; each provider client decodes the subset it understands.
	Options map[string]interface{} `mapstructure:"options,omitempty"`
}

// ModelsConfig is the closed set of selectable models. An identifier absent
// from this map fails the request instead of silently defaulting.
type ModelsConfig struct {
	Models map[string]ModelConfig `mapstructure:"models"`
}
