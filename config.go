package tengepay

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

// LoadConfig reads client settings from TENGEPAY_-prefixed environment
// variables (TENGEPAY_API_KEY, TENGEPAY_BASE_URL, TENGEPAY_TIMEOUT),
// loading a .env file first if one is present.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("TENGEPAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TENGEPAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
