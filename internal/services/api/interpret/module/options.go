package module

import (
	"time"

	"falnama/internal/adapters/oracle"
	"falnama/internal/platform/config"
)

// FromConfig builds oracle client options from ORACLE_* config keys.
// A missing base URL means no upstream; the service degrades gracefully.
func FromConfig(cfg config.Conf) oracle.Options {
	return oracle.Options{
		BaseURL:    cfg.MayString("ORACLE_BASE_URL", ""),
		APIKey:     cfg.MayString("ORACLE_API_KEY", ""),
		Timeout:    cfg.MayDuration("ORACLE_TIMEOUT", 15*time.Second),
		MaxRetries: cfg.MayInt("ORACLE_MAX_RETRIES", 3),
		RetryBase:  cfg.MayDuration("ORACLE_RETRY_BASE", time.Second),
		RetryMax:   cfg.MayDuration("ORACLE_RETRY_MAX", 10*time.Second),
	}
}
