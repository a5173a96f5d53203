package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppAddr      = ":8080"
	defaultModelPath    = "artifacts/flight_price_model.json"
	defaultTrainingYear = 2019
)

type Env struct {
	AppAddr           string
	GinMode           string
	ModelPath         string
	TrainingYear      int
	DBDSN             string
	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string
	CORSOrigins       []string
}

// LoadEnv reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to read .env: %v", err)
	}
	return envFrom(os.Getenv)
}

func envFrom(get func(string) string) Env {
	read := func(key, fallback string) string {
		if v := strings.TrimSpace(get(key)); v != "" {
			return v
		}
		return fallback
	}

	year := defaultTrainingYear
	if raw := read("MODEL_TRAINING_YEAR", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			year = n
		} else {
			log.Printf("warning: ignoring invalid MODEL_TRAINING_YEAR=%q", raw)
		}
	}

	var origins []string
	for _, o := range strings.Split(read("CORS_ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:           read("APP_ADDR", defaultAppAddr),
		GinMode:           read("GIN_MODE", ""),
		ModelPath:         read("MODEL_PATH", defaultModelPath),
		TrainingYear:      year,
		DBDSN:             read("DB_DSN", ""),
		JWTSecret:         read("JWT_SECRET", ""),
		AdminUsername:     read("ADMIN_USERNAME", ""),
		AdminPasswordHash: read("ADMIN_PASSWORD_HASH", ""),
		CORSOrigins:       origins,
	}
}

// AuthEnabled reports whether admin login and the protected routes can work.
func (e Env) AuthEnabled() bool {
	return e.JWTSecret != "" && e.AdminUsername != "" && e.AdminPasswordHash != ""
}
