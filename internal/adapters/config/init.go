package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

type fileSchema struct {
	FBS     fbsSchema     `toml:"fbs"`
	Login   loginSchema   `toml:"login"`
	Bus     busSchema     `toml:"bus"`
	Network networkSchema `toml:"network"`
	Storage storageSchema `toml:"storage"`
	Log     logSchema     `toml:"log"`
	Proxy   proxySchema   `toml:"proxy"`
}

type fbsSchema struct {
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	Endpoint       string `toml:"endpoint"`
	Agency         string `toml:"agency"`
	Location       string `toml:"location"`
	RequestTimeout string `toml:"request_timeout"`
}

type loginSchema struct {
	MaxAttempts int    `toml:"max_attempts"`
	BlockReason string `toml:"block_reason"`
}

type busSchema struct {
	RequestTimeout string `toml:"request_timeout"`
}

type networkSchema struct {
	ProbeTimeout string `toml:"probe_timeout"`
	CacheTTL     string `toml:"cache_ttl"`
}

type storageSchema struct {
	Path string `toml:"path"`
}

type logSchema struct {
	Level string `toml:"level"`
}

type proxySchema struct {
	Listen         string   `toml:"listen"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

func defaultSchema(storagePath string) fileSchema {
	return fileSchema{
		FBS:     fbsSchema{RequestTimeout: defaultFBSTimeout.String()},
		Login:   loginSchema{MaxAttempts: DefaultMaxAttempts, BlockReason: DefaultBlockReason},
		Bus:     busSchema{RequestTimeout: defaultBusTimeout.String()},
		Network: networkSchema{ProbeTimeout: defaultProbeTimeout.String(), CacheTTL: "0s"},
		Storage: storageSchema{Path: storagePath},
		Log:     logSchema{Level: DefaultLogLevel},
		Proxy:   proxySchema{Listen: DefaultProxyListen, AllowedOrigins: []string{}},
	}
}

// WriteDefault writes a config skeleton with every key at its default to
// path. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := toml.Marshal(defaultSchema(filepath.Join(filepath.Dir(path), defaultStorageDirName)))
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false

	return nil
}
