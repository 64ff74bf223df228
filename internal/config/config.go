package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults mirror the deployed service: the Hugging Face router endpoint
// with Llama 3 primary and Qwen fallback.
const (
	defaultEndpoint     = "https://router.huggingface.co/v1/chat/completions"
	defaultPrimaryModel = "meta-llama/Meta-Llama-3-8B-Instruct"
	defaultFallbackList = "Qwen/Qwen2.5-7B-Instruct"
	defaultPort         = "8000"
	defaultCallTimeout  = 60 * time.Second
)

// Config holds all configuration for the service, read once at startup and
// passed by value from then on.
type Config struct {
	// Server
	Port           string
	AllowedOrigins []string
	Debug          bool

	// Upstream inference
	APIKey         string
	PrimaryModel   string
	FallbackModels string
	Endpoint       string
	CallTimeout    time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for everything except the API key.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("HUGGING_FACE_MODEL", defaultPrimaryModel)
	v.SetDefault("HUGGING_FACE_FALLBACK_MODELS", defaultFallbackList)
	v.SetDefault("HUGGING_FACE_ENDPOINT", defaultEndpoint)
	v.SetDefault("HUGGING_FACE_TIMEOUT", defaultCallTimeout)
	v.SetDefault("DEBUG", false)

	return &Config{
		Port:           v.GetString("PORT"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		Debug:          v.GetBool("DEBUG"),
		APIKey:         v.GetString("HUGGING_FACE_API_KEY"),
		PrimaryModel:   v.GetString("HUGGING_FACE_MODEL"),
		FallbackModels: v.GetString("HUGGING_FACE_FALLBACK_MODELS"),
		Endpoint:       v.GetString("HUGGING_FACE_ENDPOINT"),
		CallTimeout:    v.GetDuration("HUGGING_FACE_TIMEOUT"),
	}
}

// splitOrigins parses a comma-separated origin list, dropping empties. An
// empty result means "allow all".
func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
