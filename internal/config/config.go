package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	DBAutoMigrate      bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	DBConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	LLMAPIKey          string        `env:"LLM_API_KEY"`
	LLMBaseURL         string        `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel           string        `env:"LLM_MODEL" envDefault:"deepseek-r1-distill-llama-70b"`
	LLMTimeout         time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	JWTSecret          string        `env:"JWT_SECRET"`
	RedisAddr          string        `env:"REDIS_ADDR"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

// LoadConfig carga la configuración desde variables de entorno.
// DATABASE_URL y LLM_API_KEY son opcionales: sin ellos el servicio arranca
// en modo memoria y con respuestas simuladas.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DurableStorageConfigured indica si hay cadena de conexion para Postgres.
func (c *Config) DurableStorageConfigured() bool {
	return c.DatabaseURL != ""
}

// MockLLM indica si las respuestas del LLM deben simularse.
func (c *Config) MockLLM() bool {
	return c.LLMAPIKey == ""
}
