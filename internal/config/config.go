package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultAppName       = "cmustify"
	defaultAppIcon       = "audio-x-generic"
	defaultExpireTimeout = -1
	defaultCoverSize     = 128
)

// AppConfig holds application configuration
type AppConfig struct {
	logger        *zap.Logger
	appName       string
	appIcon       string
	expireTimeout int32
	coverSize     int
}

// NewAppConfig creates a new application configuration instance
func NewAppConfig(logger *zap.Logger) *AppConfig {
	// Read from environment variables or use defaults
	appName := os.Getenv("CMUSTIFY_APP_NAME")
	if appName == "" {
		appName = defaultAppName
	}

	appIcon := os.ExpandEnv(os.Getenv("CMUSTIFY_APP_ICON"))
	if appIcon == "" {
		appIcon = defaultAppIcon
	}

	expireTimeout := envInt(logger, "CMUSTIFY_EXPIRE_MS", defaultExpireTimeout)
	if expireTimeout < -1 {
		logger.Warn("Negative expire timeout, using server default",
			zap.Int("value", expireTimeout))
		expireTimeout = defaultExpireTimeout
	}

	coverSize := envInt(logger, "CMUSTIFY_COVER_SIZE", defaultCoverSize)
	if coverSize < 0 {
		logger.Warn("Negative cover size, disabling covers", zap.Int("value", coverSize))
		coverSize = 0
	}

	logger.Debug("Configuration loaded",
		zap.String("appName", appName),
		zap.String("appIcon", appIcon),
		zap.Int("expireTimeout", expireTimeout),
		zap.Int("coverSize", coverSize))

	return &AppConfig{
		logger:        logger,
		appName:       appName,
		appIcon:       appIcon,
		expireTimeout: int32(expireTimeout),
		coverSize:     coverSize,
	}
}

// envInt reads an integer variable, falling back to def when unset or invalid
func envInt(logger *zap.Logger, key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		logger.Warn("Invalid integer in environment, using default",
			zap.String("key", key),
			zap.String("value", raw),
			zap.Int("default", def),
			zap.Error(err))
		return def
	}
	return int(v)
}

// GetAppName returns the application name reported to the notification server
func (c *AppConfig) GetAppName() string {
	return c.appName
}

// GetAppIcon returns the icon used when no cover is attached
func (c *AppConfig) GetAppIcon() string {
	return c.appIcon
}

// GetExpireTimeout returns the popup timeout in milliseconds
func (c *AppConfig) GetExpireTimeout() int32 {
	return c.expireTimeout
}

// GetCoverSize returns the cover thumbnail edge in pixels
func (c *AppConfig) GetCoverSize() int {
	return c.coverSize
}
