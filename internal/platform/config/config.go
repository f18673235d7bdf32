// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"falnama/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g., "FALNAMA_API_")
// Use New() for global access, or Prefix("FALNAMA_API_") for module scopes.
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// raw returns the trimmed env value for key, "" when unset
func (c Conf) raw(key string) string {
	return strings.TrimSpace(os.Getenv(c.key(key)))
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.raw(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// Require ensures that all given keys are present. Panics otherwise.
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		c.MustString(k)
	}
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.raw(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.raw(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.raw(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).
			Msg("invalid duration; using default")
		return def
	}
	return d
}
