package app

import (
	"strings"

	"github.com/wellsight/wellsight-backend/internal/platform/env"
	"github.com/wellsight/wellsight-backend/internal/platform/logger"
)

type Config struct {
	Port         string
	AllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := env.Get("PORT", "8080", log)
	origins := env.Get("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	return Config{
		Port:         port,
		AllowOrigins: strings.Split(origins, ","),
	}
}
