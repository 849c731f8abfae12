package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/tradingprofessor/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with TP_* environment variables.
//
// If -e/-env names a dotenv file it is loaded first; variables already set in
// the process environment win over the file. Panics if the file cannot be
// read or a value cannot be parsed.
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	envString("TP_API_URL", &cfg.APIBaseURL)
	envString("TP_ADMIN_TOKEN", &cfg.AdminToken)
	envString("TP_DOWNLOAD_DIR", &cfg.DownloadDir)
	envString("TP_LOG_FILE", &cfg.LogFile)
	envString("TP_LOG_LEVEL", &cfg.LogLevel)
	envString("TP_LOG_FORMAT", &cfg.LogFormat)
	envDuration("TP_REQUEST_TIMEOUT", &cfg.RequestTimeout)
	envDuration("TP_NOTIFICATION_TTL", &cfg.NotificationTTL)
	envInt("TP_MIN_AGE", &cfg.MinAge)
	envInt("TP_MAX_AGE", &cfg.MaxAge)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}
