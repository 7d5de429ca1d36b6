package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	LogJSON         bool
	LogDebug        bool

	// Workers bounds batch concurrency; 0 means one worker per CPU.
	Workers int

	// VocabFile optionally overrides the embedded vocabulary.
	VocabFile string

	WeightTechnical  int
	WeightExperience int
	WeightEducation  int
	WeightSoftSkills int
	ShortlistAt      float64
	PendingAt        float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:              env,
		LogJSON:          getBool("LOG_JSON", env == "production"),
		LogDebug:         getBool("LOG_DEBUG", false),
		Workers:          getInt("PIPELINE_WORKERS", 0),
		VocabFile:        getEnv("VOCAB_FILE", ""),
		WeightTechnical:  getInt("WEIGHT_TECHNICAL", 35),
		WeightExperience: getInt("WEIGHT_EXPERIENCE", 25),
		WeightEducation:  getInt("WEIGHT_EDUCATION", 20),
		WeightSoftSkills: getInt("WEIGHT_SOFT_SKILLS", 20),
		ShortlistAt:      getFloat("THRESHOLD_SHORTLIST", 70),
		PendingAt:        getFloat("THRESHOLD_PENDING", 50),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return b
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
