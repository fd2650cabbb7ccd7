package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	MongoURI    string `env:"MONGODB_URI,required,notEmpty"`
	MongoDBName string `env:"MONGODB_DB" envDefault:"foundation"`

	// JWTSecret is intentionally not required at load time: its absence must
	// surface as a 500 on the auth paths, not as a startup crash.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	CORSOrigins []string `env:"CORS_ORIGIN" envSeparator:"," envDefault:"http://localhost:5173"`

	// BodyLimit caps request bodies; inline base64 gallery images can be large.
	BodyLimit int `env:"BODY_LIMIT" envDefault:"6291456"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
