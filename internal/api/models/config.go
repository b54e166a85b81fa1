package models

import "github.com/jroosing/autodns/internal/config"

// APIConfigResponse is a redacted version of APIConfig (no api_key exposed).
type APIConfigResponse struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

// ConfigResponse is the API response for GET /config.
type ConfigResponse struct {
	Zone     config.ZoneConfig     `json:"zone"`
	Options  config.OptionsConfig  `json:"options"`
	Paths    config.PathsConfig    `json:"paths"`
	Commands config.CommandsConfig `json:"commands"`
	Verify   config.VerifyConfig   `json:"verify"`
	Locale   string                `json:"locale"`
	Logging  config.LoggingConfig  `json:"logging"`
	API      APIConfigResponse     `json:"api"`
	Database config.DatabaseConfig `json:"database"`
}
