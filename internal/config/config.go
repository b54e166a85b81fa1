// Package config provides configuration types, loading and validation for AutoDNS.
//
// Configuration is read from an optional YAML file and AUTODNS_* environment
// variables (e.g. AUTODNS_ZONE_DOMAIN overrides zone.domain). Defaults match
// a stock Ubuntu BIND9 install.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AUTODNS"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Zone: ZoneConfig{
			IPAddress: "192.168.183.17",
			Domain:    "integris.ptt",
		},
		Options: OptionsConfig{
			CreateBackups:  true,
			RestartService: true,
			IncludeSamples: true,
		},
		Paths: PathsConfig{
			BindDir: "/etc/bind",
		},
		Commands: CommandsConfig{
			Restart:   "systemctl restart bind9",
			CheckZone: "named-checkzone",
			CheckConf: "named-checkconf",
		},
		Verify: VerifyConfig{Mode: VerifyNamed},
		Locale: "en",
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "autodns.db",
		},
	}
}

// ResolveConfigPath returns the flag value if set, otherwise AUTODNS_CONFIG.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
}

// Load reads configuration from path (may be empty) layered over Default,
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv can see it during Unmarshal.
	d := Default()
	v.SetDefault("zone.ip_address", d.Zone.IPAddress)
	v.SetDefault("zone.domain", d.Zone.Domain)
	v.SetDefault("options.create_backups", d.Options.CreateBackups)
	v.SetDefault("options.restart_service", d.Options.RestartService)
	v.SetDefault("options.include_samples", d.Options.IncludeSamples)
	v.SetDefault("paths.bind_dir", d.Paths.BindDir)
	v.SetDefault("paths.named_conf_local", d.Paths.NamedConfLocal)
	v.SetDefault("commands.restart", d.Commands.Restart)
	v.SetDefault("commands.check_zone", d.Commands.CheckZone)
	v.SetDefault("commands.check_conf", d.Commands.CheckConf)
	v.SetDefault("verify.mode", string(d.Verify.Mode))
	v.SetDefault("locale", d.Locale)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.structured", d.Logging.Structured)
	v.SetDefault("logging.structured_format", d.Logging.StructuredFormat)
	v.SetDefault("logging.include_pid", d.Logging.IncludePID)
	v.SetDefault("api.enabled", d.API.Enabled)
	v.SetDefault("api.host", d.API.Host)
	v.SetDefault("api.port", d.API.Port)
	v.SetDefault("api.api_key", d.API.APIKey)
	v.SetDefault("database.path", d.Database.Path)
	return v
}

// Validate validates and normalizes the configuration.
// Zone address and domain are checked by zonegen at generation time, not here.
func (cfg *Config) Validate() error {
	// Normalize paths
	if cfg.Paths.BindDir == "" {
		cfg.Paths.BindDir = "/etc/bind"
	}
	if cfg.Paths.NamedConfLocal == "" {
		cfg.Paths.NamedConfLocal = filepath.Join(cfg.Paths.BindDir, "named.conf.local")
	}

	// Normalize commands
	d := Default()
	if strings.TrimSpace(cfg.Commands.Restart) == "" {
		cfg.Commands.Restart = d.Commands.Restart
	}
	if strings.TrimSpace(cfg.Commands.CheckZone) == "" {
		cfg.Commands.CheckZone = d.Commands.CheckZone
	}
	if strings.TrimSpace(cfg.Commands.CheckConf) == "" {
		cfg.Commands.CheckConf = d.Commands.CheckConf
	}

	// Verification mode
	cfg.Verify.Mode = VerifyMode(strings.ToLower(strings.TrimSpace(string(cfg.Verify.Mode))))
	switch cfg.Verify.Mode {
	case "":
		cfg.Verify.Mode = VerifyNamed
	case VerifyNamed, VerifyBuiltin, VerifyNone:
	default:
		return fmt.Errorf("verify.mode must be one of named, builtin, none (got %q)", cfg.Verify.Mode)
	}

	// Locale
	cfg.Locale = strings.ToLower(strings.TrimSpace(cfg.Locale))
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.Locale != "en" && cfg.Locale != "fr" {
		return fmt.Errorf("locale must be en or fr (got %q)", cfg.Locale)
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize management API
	if cfg.API.Host == "" {
		cfg.API.Host = "127.0.0.1"
	}
	if cfg.API.Enabled {
		if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
			return errors.New("api.port must be 1..65535")
		}
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = d.Database.Path
	}

	return nil
}
