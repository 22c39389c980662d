package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "findyourhome"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"
	CatalogFileName = "catalog.json"
)

// Config contains default search settings.
type Config struct {
	DefaultLocation string `json:"default_location"`
	DefaultType     string `json:"default_type"`
	DefaultPrice    string `json:"default_price"`
	// Catalog is an extra JSON catalog merged with the built-in listings.
	// Empty means <config dir>/catalog.json.
	Catalog string `json:"catalog"`
	// ProxyBanMinutes is how long a proxy is skipped after a 403/429.
	ProxyBanMinutes int `json:"proxy_ban_minutes"`
	TimeoutSeconds  int `json:"timeout_seconds"`
}

func DefaultConfig() Config {
	return Config{
		DefaultLocation: envString("FINDYOURHOME_DEFAULT_LOCATION", ""),
		DefaultType:     envString("FINDYOURHOME_DEFAULT_TYPE", ""),
		DefaultPrice:    envString("FINDYOURHOME_DEFAULT_PRICE", "0-5000"),
		Catalog:         envString("FINDYOURHOME_CATALOG", ""),
		ProxyBanMinutes: envInt("FINDYOURHOME_PROXY_BAN_MINUTES", 10),
		TimeoutSeconds:  envInt("FINDYOURHOME_TIMEOUT", 30),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	return pathInConfigDir(ConfigFileName)
}

func ProxiesPath() (string, error) {
	return pathInConfigDir(ProxiesFileName)
}

func pathInConfigDir(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// CatalogPath resolves the catalog file: the flag value, then the config
// setting, then catalog.json in the config directory.
func (c Config) CatalogPath(flagValue string) (string, error) {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value, nil
	}
	if value := strings.TrimSpace(c.Catalog); value != "" {
		return value, nil
	}
	return pathInConfigDir(CatalogFileName)
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads a JSON5 config file over the environment defaults. A missing
// or blank file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return InitDir(dir)
}

func InitDir(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	defaults := []struct {
		name  string
		write func(path string) error
	}{
		{ConfigFileName, func(path string) error { return writeConfig(path, DefaultConfig()) }},
		{ProxiesFileName, func(path string) error {
			return os.WriteFile(path, []byte("# one proxy URL per line\n"), 0o644)
		}},
	}

	var created []string
	for _, file := range defaults {
		path := filepath.Join(dir, file.name)
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := file.write(path); err != nil {
			return created, err
		}
		created = append(created, path)
	}
	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("FINDYOURHOME_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}
	return ReadProxiesFile(path)
}

// ReadProxiesFile reads one proxy per line, skipping blanks and # comments.
func ReadProxiesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
