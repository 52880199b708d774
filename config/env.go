package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		// If .env is missing, ignore error (env vars can be set by other means)
		log.Debug().Msg("no .env file found")
		return
	}
	log.Debug().Msg("environment loaded from .env")
}
