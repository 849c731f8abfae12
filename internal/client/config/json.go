package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tradingprofessor/internal/flagx"
	"github.com/dmitrijs2005/tradingprofessor/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish an absent key from a zero value.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	AdminToken      *string         `json:"admin_token"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	NotificationTTL *timex.Duration `json:"notification_ttl"`
	DownloadDir     *string         `json:"download_dir"`
	LogFile         *string         `json:"log_file"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
	MinAge          *int            `json:"min_age"`
	MaxAge          *int            `json:"max_age"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing happens. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.APIBaseURL, jc.APIBaseURL)
	setIf(&cfg.AdminToken, jc.AdminToken)
	setIf(&cfg.DownloadDir, jc.DownloadDir)
	setIf(&cfg.LogFile, jc.LogFile)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.MinAge, jc.MinAge)
	setIf(&cfg.MaxAge, jc.MaxAge)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
