package config

import "github.com/caarlos0/env/v6"

type Config struct {
	Server struct {
		Port string `env:"PORT" envDefault:"3001"`

		// Comma-separated list of origins allowed by CORS
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	}

	Data struct {
		// Directory holding the JSON collection files
		Dir string `env:"DATA_DIR" envDefault:"data"`
	}

	Uploads struct {
		Dir string `env:"UPLOAD_DIR" envDefault:"uploads"`

		// Maximum accepted file size in bytes
		MaxFileSize int64 `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"`
	}

	Auth struct {
		// Secret used to sign JWTs; the server refuses to start without it
		JWTSecret string `env:"JWT_SECRET"`

		TokenExpiryHours int `env:"TOKEN_EXPIRY_HOURS" envDefault:"168"`
	}

	SMTP struct {
		Host     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
		Port     int    `env:"SMTP_PORT" envDefault:"587"`
		Username string `env:"SMTP_USER"`
		Password string `env:"SMTP_PASS"`
		From     string `env:"EMAIL_FROM"`
	}

	Notifications struct {
		AdminEmail     string `env:"ADMIN_EMAIL"`
		WhatsAppNumber string `env:"WHATSAPP_NUMBER"`

		// Buffered size of the outbound email queue
		QueueSize int `env:"EMAIL_QUEUE_SIZE" envDefault:"64"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
