// Package config loads runtime configuration for the trading-professor CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after an optional dotenv file selected with
//     -e or -env (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds, 0 = client default)
//	-d string   download directory
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	TP_API_URL, TP_ADMIN_TOKEN, TP_REQUEST_TIMEOUT, TP_NOTIFICATION_TTL,
//	TP_DOWNLOAD_DIR, TP_LOG_FILE, TP_LOG_LEVEL, TP_LOG_FORMAT,
//	TP_MIN_AGE, TP_MAX_AGE
//
// Durations in the environment use Go syntax ("3s", "500ms").
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds. Absent keys keep earlier values:
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "15s",
//	  "notification_ttl": "3s",
//	  "download_dir": "download",
//	  "log_file": "tpcli.log",
//	  "log_level": "debug",
//	  "min_age": 18,
//	  "max_age": 100
//	}
package config
