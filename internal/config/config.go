package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr          string
	DataPath            string
	SwatchDBPath        string
	ClusterCount        int
	SampleCap           int
	MaxImageDimension   int
	MaxIterations       int
	RecentAnalysesLimit int
	MaxUploadSizeBytes  int64
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:          getEnv("LISTEN_ADDR", ":8080"),
		DataPath:            getEnv("DATA_PATH", "./data/state.json"),
		SwatchDBPath:        getEnv("SWATCH_DB_PATH", ""),
		ClusterCount:        getEnvInt("CLUSTER_COUNT", 8),
		SampleCap:           getEnvInt("SAMPLE_CAP", 1000),
		MaxImageDimension:   getEnvInt("MAX_IMAGE_DIMENSION", 400),
		MaxIterations:       getEnvInt("MAX_ITERATIONS", 50),
		RecentAnalysesLimit: getEnvInt("RECENT_ANALYSES_LIMIT", 50),
		MaxUploadSizeBytes:  getEnvInt64("MAX_UPLOAD_SIZE_BYTES", 16*1024*1024),
	}

	if cfg.ClusterCount <= 0 {
		return Config{}, errors.New("cluster count must be > 0")
	}
	if cfg.SampleCap <= 0 {
		return Config{}, errors.New("sample cap must be > 0")
	}
	if cfg.MaxImageDimension <= 0 {
		return Config{}, errors.New("max image dimension must be > 0")
	}
	if cfg.MaxIterations <= 0 {
		return Config{}, errors.New("max iterations must be > 0")
	}
	if cfg.RecentAnalysesLimit <= 0 {
		return Config{}, errors.New("recent analyses limit must be > 0")
	}
	if cfg.MaxUploadSizeBytes <= 0 {
		return Config{}, errors.New("max upload size must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
