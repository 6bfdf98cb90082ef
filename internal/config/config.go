package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/yuvaraj-20/trendwear-core/internal/catalog"
)

// Settings are the externally tunable knobs the engines must not hard-code:
// the trending-score weights admins adjust from the hub, and the page sizes.
type Settings struct {
	Weights          catalog.Weights
	TrendingFeedSize int
	PageSize         int
	DBDSN            string
	LogLevel         string
}

// Load reads settings from the environment with working defaults. A .env file
// in the working directory is honored when present.
func Load() Settings {
	_ = godotenv.Load()

	return Settings{
		Weights: catalog.Weights{
			Likes:    getEnvInt("TREND_WEIGHT_LIKES", 2),
			Shares:   getEnvInt("TREND_WEIGHT_SHARES", 3),
			Orders:   getEnvInt("TREND_WEIGHT_ORDERS", 4),
			Comments: getEnvInt("TREND_WEIGHT_COMMENTS", 1),
		},
		TrendingFeedSize: getEnvInt("TRENDING_FEED_SIZE", 10),
		PageSize:         getEnvInt("PAGE_SIZE", 12),
		DBDSN:            getEnv("DB_DSN", "trendwear.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
