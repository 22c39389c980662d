package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("FINDYOURHOME_DEFAULT_LOCATION", " Berlin ")
	t.Setenv("FINDYOURHOME_PROXY_BAN_MINUTES", "oops")
	cfg := DefaultConfig()
	if cfg.DefaultLocation != "Berlin" {
		t.Fatalf("DefaultLocation = %q", cfg.DefaultLocation)
	}
	if cfg.ProxyBanMinutes != 10 {
		t.Fatalf("ProxyBanMinutes = %d, want fallback 10", cfg.ProxyBanMinutes)
	}
	if cfg.DefaultPrice != "0-5000" {
		t.Fatalf("DefaultPrice = %q", cfg.DefaultPrice)
	}
}

func TestLoadFileJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `{
  // comments are fine
  default_location: "Hamburg",
  default_type: 'studio',
  timeout_seconds: 5,
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.DefaultLocation != "Hamburg" || cfg.DefaultType != "studio" || cfg.TimeoutSeconds != 5 {
		t.Fatalf("LoadFile() = %+v", cfg)
	}
	if cfg.DefaultPrice != "0-5000" {
		t.Fatalf("unset keys should keep defaults, got %q", cfg.DefaultPrice)
	}
}

func TestLoadFileMissingOrBlank(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFile(filepath.Join(dir, "missing.json"))
	if err != nil || !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("LoadFile(missing) = %+v, %v", cfg, err)
	}

	blank := filepath.Join(dir, "blank.json")
	if err := os.WriteFile(blank, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadFile(blank); err != nil {
		t.Fatalf("LoadFile(blank) error = %v", err)
	}
}

func TestInitDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DirName)
	created, err := InitDir(dir)
	if err != nil {
		t.Fatalf("InitDir() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %v, want 2 files", created)
	}
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if err != nil || cfg.TimeoutSeconds != 30 {
		t.Fatalf("written config = %+v, %v", cfg, err)
	}

	created, err = InitDir(dir)
	if err != nil || len(created) != 0 {
		t.Fatalf("second InitDir() = %v, %v", created, err)
	}
}

func TestReadProxiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProxiesFileName)
	content := "# comment\nhttp://a:1\n\n  socks5://b:2  \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := ReadProxiesFile(path)
	if err != nil {
		t.Fatalf("ReadProxiesFile() error = %v", err)
	}
	want := []string{"http://a:1", "socks5://b:2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadProxiesFile() = %#v, want %#v", got, want)
	}
}

func TestLoadProxiesPrefersFlagThenEnv(t *testing.T) {
	t.Setenv("FINDYOURHOME_PROXIES", "http://env:1")
	got, err := LoadProxies("http://flag:1, ,http://flag:2")
	if err != nil || !reflect.DeepEqual(got, []string{"http://flag:1", "http://flag:2"}) {
		t.Fatalf("LoadProxies(flag) = %v, %v", got, err)
	}
	got, err = LoadProxies("")
	if err != nil || !reflect.DeepEqual(got, []string{"http://env:1"}) {
		t.Fatalf("LoadProxies(env) = %v, %v", got, err)
	}
}

func TestCatalogPath(t *testing.T) {
	cfg := Config{Catalog: "/srv/catalog.json"}
	if got, _ := cfg.CatalogPath("mine.json"); got != "mine.json" {
		t.Fatalf("CatalogPath(flag) = %q", got)
	}
	if got, _ := cfg.CatalogPath(""); got != "/srv/catalog.json" {
		t.Fatalf("CatalogPath(config) = %q", got)
	}
}
