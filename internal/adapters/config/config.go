// Package config loads ~/.bibbox/config.toml (overridable with BIBBOX_*
// environment variables) and serves the FBS session config on the bus.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/bibbox-fbs/internal/domain"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".bibbox"
	envPrefix  = "BIBBOX"

	keyFBSUsername       = "fbs.username"
	keyFBSPassword       = "fbs.password"
	keyFBSEndpoint       = "fbs.endpoint"
	keyFBSAgency         = "fbs.agency"
	keyFBSLocation       = "fbs.location"
	keyFBSRequestTimeout = "fbs.request_timeout"
	keyLoginMaxAttempts  = "login.max_attempts"
	keyLoginBlockReason  = "login.block_reason"
	keyBusRequestTimeout = "bus.request_timeout"
	keyProbeTimeout      = "network.probe_timeout"
	keyProbeCacheTTL     = "network.cache_ttl"
	keyStoragePath       = "storage.path"
	keyLogLevel          = "log.level"
	keyProxyListen       = "proxy.listen"
	keyProxyOrigins      = "proxy.allowed_origins"
)

const (
	DefaultMaxAttempts    = 5
	DefaultBlockReason    = "Too many failed login attempts at the self-service kiosk"
	DefaultProxyListen    = "127.0.0.1:3010"
	DefaultLogLevel       = "info"
	defaultFBSTimeout     = 30 * time.Second
	defaultBusTimeout     = 30 * time.Second
	defaultProbeTimeout   = 3 * time.Second
	defaultStorageDirName = "files"
)

type Config struct {
	// Path is the config file that was read, empty when none was found.
	Path string

	FBS               domain.SessionConfig
	FBSRequestTimeout time.Duration

	Login   LoginConfig
	Bus     BusConfig
	Network NetworkConfig

	StoragePath  string
	LogLevel     string
	ProxyListen  string
	ProxyOrigins []string
}

type LoginConfig struct {
	MaxAttempts int
	BlockReason string
}

type BusConfig struct {
	RequestTimeout time.Duration
}

type NetworkConfig struct {
	ProbeTimeout time.Duration
	CacheTTL     time.Duration
}

// DefaultDir is ~/.bibbox.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

// DefaultPath is ~/.bibbox/config.toml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// Load reads the config file at path, or config.toml from ~/.bibbox when
// path is empty. A missing default file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}

	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Path: v.ConfigFileUsed(),
		FBS: domain.SessionConfig{
			Username: v.GetString(keyFBSUsername),
			Password: v.GetString(keyFBSPassword),
			Endpoint: v.GetString(keyFBSEndpoint),
			Agency:   v.GetString(keyFBSAgency),
			Location: v.GetString(keyFBSLocation),
		},
		FBSRequestTimeout: v.GetDuration(keyFBSRequestTimeout),
		Login: LoginConfig{
			MaxAttempts: v.GetInt(keyLoginMaxAttempts),
			BlockReason: v.GetString(keyLoginBlockReason),
		},
		Bus: BusConfig{
			RequestTimeout: v.GetDuration(keyBusRequestTimeout),
		},
		Network: NetworkConfig{
			ProbeTimeout: v.GetDuration(keyProbeTimeout),
			CacheTTL:     v.GetDuration(keyProbeCacheTTL),
		},
		StoragePath:  v.GetString(keyStoragePath),
		LogLevel:     v.GetString(keyLogLevel),
		ProxyListen:  v.GetString(keyProxyListen),
		ProxyOrigins: v.GetStringSlice(keyProxyOrigins),
	}

	if cfg.Login.MaxAttempts <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", keyLoginMaxAttempts, cfg.Login.MaxAttempts)
	}
	if cfg.StoragePath, err = filepath.Abs(cfg.StoragePath); err != nil {
		return Config{}, fmt.Errorf("resolve storage path: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(keyFBSUsername, "")
	v.SetDefault(keyFBSPassword, "")
	v.SetDefault(keyFBSEndpoint, "")
	v.SetDefault(keyFBSAgency, "")
	v.SetDefault(keyFBSLocation, "")
	v.SetDefault(keyFBSRequestTimeout, defaultFBSTimeout)
	v.SetDefault(keyLoginMaxAttempts, DefaultMaxAttempts)
	v.SetDefault(keyLoginBlockReason, DefaultBlockReason)
	v.SetDefault(keyBusRequestTimeout, defaultBusTimeout)
	v.SetDefault(keyProbeTimeout, defaultProbeTimeout)
	v.SetDefault(keyProbeCacheTTL, time.Duration(0))
	v.SetDefault(keyStoragePath, filepath.Join(dir, defaultStorageDirName))
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyProxyListen, DefaultProxyListen)
	v.SetDefault(keyProxyOrigins, []string{})
}
