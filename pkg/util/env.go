package util

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

// LoadEnv load file .env kalau ada. env yang sudah di set di shell tidak di overwrite.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

func GetEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func GetEnvInt(key string, def int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("invalid integer env, using default", "key", key, "value", val, "default", def)
		return def
	}
	return i
}
