package server

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config описывает pycc.toml секции [server]: адрес, CORS-белый
// список и лимит размера тела запроса.
type Config struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxRequestSize int64    `toml:"max_request_size"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

type configFile struct {
	Server Config `toml:"server"`
}

// DefaultConfig — рабочие значения без файла конфигурации.
func DefaultConfig() Config {
	return Config{
		Addr:           ":5000",
		AllowedOrigins: []string{"http://localhost:8000", "http://127.0.0.1:8000"},
		MaxRequestSize: 1 << 20,
		MaxDiagnostics: 100,
	}
}

// LoadConfig читает секцию [server] из TOML-файла; отсутствующие поля
// добиваются дефолтами.
func LoadConfig(path string) (Config, error) {
	cfg := configFile{Server: DefaultConfig()}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg.Server.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = def.AllowedOrigins
	}
	if c.MaxRequestSize <= 0 {
		c.MaxRequestSize = def.MaxRequestSize
	}
	if c.MaxDiagnostics <= 0 {
		c.MaxDiagnostics = def.MaxDiagnostics
	}
	return c
}
