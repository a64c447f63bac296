package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type APIConfig struct {
	Addr        string
	DBDialect   string
	SQLitePath  string
	PostgresDSN string
	AuthTokens  []string
	Seed        int64
}

type CLIConfig struct {
	APIBaseURL string
	AuthToken  string
}

type SimConfig struct {
	Months     int
	Seed       int64
	TraitID    string
	ShopTypeID string
	LocationID string
}

// LoadDotenv reads a .env file when present; a missing file is not an
// error.
func LoadDotenv() {
	_ = godotenv.Load()
}

func LoadAPIFromEnv() (APIConfig, error) {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("KAIDIAN_API_ADDR", ":8080")
	}

	cfg := APIConfig{
		Addr:        addr,
		DBDialect:   strings.ToLower(envDefault("DB_DIALECT", "sqlite")),
		SQLitePath:  envDefault("DB_SQLITE_PATH", "tmp/kaidian.sqlite"),
		PostgresDSN: strings.TrimSpace(os.Getenv("DB_POSTGRES_DSN")),
		Seed:        envInt64Default("KAIDIAN_SEED", 0),
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw := strings.TrimSpace(os.Getenv("KAIDIAN_AUTH_TOKENS")); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				cfg.AuthTokens = append(cfg.AuthTokens, tok)
			}
		}
	}

	switch cfg.DBDialect {
	case "sqlite", "postgres":
	default:
		return cfg, fmt.Errorf("unsupported DB_DIALECT %q", cfg.DBDialect)
	}
	if cfg.DBDialect == "postgres" && cfg.PostgresDSN == "" {
		return cfg, fmt.Errorf("DB_DIALECT=postgres requires DB_POSTGRES_DSN or DATABASE_URL")
	}
	return cfg, nil
}

func LoadCLIFromEnv() CLIConfig {
	return CLIConfig{
		APIBaseURL: strings.TrimRight(envDefault("KD_API_BASE_URL", "http://localhost:8080"), "/"),
		AuthToken:  strings.TrimSpace(os.Getenv("KD_AUTH_TOKEN")),
	}
}

func LoadSimFromEnv() SimConfig {
	return SimConfig{
		Months:     int(envInt64Default("KAIDIAN_SIM_MONTHS", 120)),
		Seed:       envInt64Default("KAIDIAN_SEED", 0),
		TraitID:    envDefault("KAIDIAN_SIM_TRAIT", "ISTJ"),
		ShopTypeID: envDefault("KAIDIAN_SIM_SHOP_TYPE", "milk_tea"),
		LocationID: envDefault("KAIDIAN_SIM_LOCATION", "street"),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt64Default(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
