package config

import "github.com/jroosing/autodns/internal/zonegen"

// VerifyMode selects how written zones are checked.
type VerifyMode string

const (
	// VerifyNamed runs named-checkzone and named-checkconf.
	VerifyNamed VerifyMode = "named"
	// VerifyBuiltin parses the written zones in-process.
	VerifyBuiltin VerifyMode = "builtin"
	// VerifyNone skips verification.
	VerifyNone VerifyMode = "none"
)

// ZoneConfig is the address and domain the zones are generated for.
type ZoneConfig struct {
	IPAddress string `json:"ip_address" mapstructure:"ip_address"`
	Domain    string `json:"domain" mapstructure:"domain"`
}

// OptionsConfig mirrors zonegen.Options.
type OptionsConfig struct {
	CreateBackups  bool `json:"create_backups" mapstructure:"create_backups"`
	RestartService bool `json:"restart_service" mapstructure:"restart_service"`
	IncludeSamples bool `json:"include_samples" mapstructure:"include_samples"`
}

// PathsConfig locates the BIND configuration directory.
type PathsConfig struct {
	BindDir        string `json:"bind_dir" mapstructure:"bind_dir"`
	NamedConfLocal string `json:"named_conf_local" mapstructure:"named_conf_local"`
}

// CommandsConfig holds the command lines used to control BIND.
// Each is split with shell quoting rules before execution.
type CommandsConfig struct {
	Restart   string `json:"restart" mapstructure:"restart"`
	CheckZone string `json:"check_zone" mapstructure:"check_zone"`
	CheckConf string `json:"check_conf" mapstructure:"check_conf"`
}

// VerifyConfig controls post-write verification.
type VerifyConfig struct {
	Mode VerifyMode `json:"mode" mapstructure:"mode"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level" mapstructure:"level"`
	Structured       bool              `json:"structured" mapstructure:"structured"`
	StructuredFormat string            `json:"structured_format" mapstructure:"structured_format"`
	IncludePID       bool              `json:"include_pid" mapstructure:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty" mapstructure:"extra_fields"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is treated as a secret and is never returned by API endpoints.
type APIConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Host    string `json:"host" mapstructure:"host"`
	Port    int    `json:"port" mapstructure:"port"`
	APIKey  string `json:"api_key,omitempty" mapstructure:"api_key"`
}

// DatabaseConfig locates the SQLite history database.
type DatabaseConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// Config is the root configuration structure.
type Config struct {
	Zone     ZoneConfig     `json:"zone" mapstructure:"zone"`
	Options  OptionsConfig  `json:"options" mapstructure:"options"`
	Paths    PathsConfig    `json:"paths" mapstructure:"paths"`
	Commands CommandsConfig `json:"commands" mapstructure:"commands"`
	Verify   VerifyConfig   `json:"verify" mapstructure:"verify"`
	Locale   string         `json:"locale" mapstructure:"locale"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
	API      APIConfig      `json:"api" mapstructure:"api"`
	Database DatabaseConfig `json:"database" mapstructure:"database"`
}

// ZoneOptions converts the options section for the generator.
func (cfg *Config) ZoneOptions() zonegen.Options {
	return zonegen.Options{
		CreateBackups:  cfg.Options.CreateBackups,
		RestartService: cfg.Options.RestartService,
		IncludeSamples: cfg.Options.IncludeSamples,
	}
}

// Input builds the generator input from the zone and options sections.
func (cfg *Config) Input() zonegen.Input {
	return zonegen.Input{
		IPAddress: cfg.Zone.IPAddress,
		Domain:    cfg.Zone.Domain,
		Options:   cfg.ZoneOptions(),
	}
}

// Generator returns a zonegen.Generator for the configured BIND layout.
func (cfg *Config) Generator() zonegen.Generator {
	return zonegen.Generator{BindDir: cfg.Paths.BindDir, NamedConfLocal: cfg.Paths.NamedConfLocal}
}
