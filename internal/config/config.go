package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/genricoloni/mediactl/internal/domain"
	"github.com/spf13/viper"
)

const (
	appDirName              = "mediactl"
	defaultIconDir          = "/usr/share/icons/gnome/48x48/actions"
	defaultAppName          = "media-control"
	defaultTransportTimeout = 1500
	defaultCycleTimeout     = 6000
	defaultLogLevel         = "warn"
	defaultLogMaxSizeMB     = 5
	defaultLogMaxBackups    = 2
)

// AppConfig holds application configuration
type AppConfig struct {
	runtimeDir       string
	iconDir          string
	appName          string
	transportTimeout time.Duration
	cycleTimeout     time.Duration
	logLevel         string
	logFile          string
	logMaxSizeMB     int
	logMaxBackups    int
}

// NewAppConfig loads configuration from the optional config file and the environment
func NewAppConfig() (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := configDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("MEDIACTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The runtime directory is a desktop-wide setting, not one of ours
	_ = v.BindEnv("runtime_dir", "MEDIACTL_RUNTIME_DIR", "XDG_RUNTIME_DIR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrConfig, v.ConfigFileUsed(), err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("icon_dir", defaultIconDir)
	v.SetDefault("app_name", defaultAppName)
	v.SetDefault("notify.transport_timeout_ms", defaultTransportTimeout)
	v.SetDefault("notify.cycle_timeout_ms", defaultCycleTimeout)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", defaultLogMaxSizeMB)
	v.SetDefault("log.max_backups", defaultLogMaxBackups)
}

func fromViper(v *viper.Viper) *AppConfig {
	return &AppConfig{
		runtimeDir:       v.GetString("runtime_dir"),
		iconDir:          expandPath(v.GetString("icon_dir")),
		appName:          v.GetString("app_name"),
		transportTimeout: time.Duration(v.GetInt("notify.transport_timeout_ms")) * time.Millisecond,
		cycleTimeout:     time.Duration(v.GetInt("notify.cycle_timeout_ms")) * time.Millisecond,
		logLevel:         v.GetString("log.level"),
		logFile:          expandPath(v.GetString("log.file")),
		logMaxSizeMB:     v.GetInt("log.max_size_mb"),
		logMaxBackups:    v.GetInt("log.max_backups"),
	}
}

// configDir returns $XDG_CONFIG_HOME/mediactl, falling back to ~/.config/mediactl
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDirName)
}

// expandPath expands environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetRuntimeDir returns the directory holding the selection file
func (c *AppConfig) GetRuntimeDir() string {
	return c.runtimeDir
}

// GetIconDir returns the directory icons are resolved against
func (c *AppConfig) GetIconDir() string {
	return c.iconDir
}

// GetAppName returns the name reported to the notification service
func (c *AppConfig) GetAppName() string {
	return c.appName
}

// GetTransportTimeout returns the display time for transport confirmations
func (c *AppConfig) GetTransportTimeout() time.Duration {
	return c.transportTimeout
}

// GetCycleTimeout returns the display time for the player roster
func (c *AppConfig) GetCycleTimeout() time.Duration {
	return c.cycleTimeout
}

// GetLogLevel returns the minimum log level
func (c *AppConfig) GetLogLevel() string {
	return c.logLevel
}

// GetLogFile returns the optional log file path
func (c *AppConfig) GetLogFile() string {
	return c.logFile
}

// GetLogMaxSizeMB returns the log rotation size
func (c *AppConfig) GetLogMaxSizeMB() int {
	return c.logMaxSizeMB
}

// GetLogMaxBackups returns how many rotated log files are kept
func (c *AppConfig) GetLogMaxBackups() int {
	return c.logMaxBackups
}
