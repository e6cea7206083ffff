// Package config loads cmd/rakan's runtime settings from an optional .env
// file plus RAKAN_-prefixed environment variables, following the teacher's
// cmd/main.go convention of godotenv.Load followed by os.Getenv reads with
// defaults. cmd/rakan layers CLI flags on top: flags win over environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rakanmcmc/rakan/score"
)

// Config holds every setting cmd/rakan needs to run a walk end to end.
type Config struct {
	GraphFile string
	Weights   score.Weights
	Steps     int
	Seed      int64

	RedisAddr   string
	MetricsAddr string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present, silently ignored if absent) then the
// RAKAN_-prefixed environment, applying the defaults below.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		GraphFile:   os.Getenv("RAKAN_GRAPH_FILE"),
		Weights:     weightsFromEnv(),
		Steps:       envInt("RAKAN_STEPS", 1000),
		Seed:        envInt64("RAKAN_SEED", 0),
		RedisAddr:   envString("RAKAN_REDIS_ADDR", ""),
		MetricsAddr: envString("RAKAN_METRICS_ADDR", ":9090"),
		LogLevel:    envString("RAKAN_LOG_LEVEL", "info"),
		LogFormat:   envString("RAKAN_LOG_FORMAT", "text"),
	}
}

func weightsFromEnv() score.Weights {
	return score.Weights{
		Alpha: envFloat("RAKAN_ALPHA", 1),
		Beta:  envFloat("RAKAN_BETA", 1),
		Gamma: envFloat("RAKAN_GAMMA", 0),
		Eta:   envFloat("RAKAN_ETA", 1),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
