package models

import (
	"github.com/jroosing/autodns/internal/bind"
	"github.com/jroosing/autodns/internal/database"
	"github.com/jroosing/autodns/internal/zonegen"
)

// OptionsRequest carries generator switches. Omitted fields keep their stored value.
type OptionsRequest struct {
	CreateBackups  *bool `json:"create_backups,omitempty"`
	RestartService *bool `json:"restart_service,omitempty"`
	IncludeSamples *bool `json:"include_samples,omitempty"`
}

// SettingsRequest replaces the stored zone input.
type SettingsRequest struct {
	IPAddress string          `json:"ip_address" binding:"required"`
	Domain    string          `json:"domain" binding:"required"`
	Options   *OptionsRequest `json:"options,omitempty"`
}

// GenerateRequest overrides the stored settings for a single preview or apply.
// Empty fields fall back to the stored settings.
type GenerateRequest struct {
	IPAddress string          `json:"ip_address,omitempty"`
	Domain    string          `json:"domain,omitempty"`
	Options   *OptionsRequest `json:"options,omitempty"`
}

// SettingsResponse is the zone input currently in effect.
type SettingsResponse struct {
	IPAddress string          `json:"ip_address"`
	Domain    string          `json:"domain"`
	Options   zonegen.Options `json:"options"`
	Source    string          `json:"source"`
}

// DeriveResponse lists the names derived from one address.
type DeriveResponse struct {
	IPAddress string               `json:"ip_address"`
	Derived   zonegen.DerivedParts `json:"derived"`
}

// ZoneRecord represents a single DNS record in a zone.
type ZoneRecord struct {
	Name  string `json:"name"`
	TTL   uint32 `json:"ttl"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ZoneFile is one rendered zone with the records it parses to.
type ZoneFile struct {
	Name    string       `json:"name"`
	Path    string       `json:"path"`
	Text    string       `json:"text"`
	Records []ZoneRecord `json:"records"`
}

// ConfSnippet is the text appended to named.conf.local.
type ConfSnippet struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

// PreviewResponse is returned by POST /zones/preview.
type PreviewResponse struct {
	GenerationID string               `json:"generation_id,omitempty"`
	Derived      zonegen.DerivedParts `json:"derived"`
	Forward      ZoneFile             `json:"forward"`
	Reverse      ZoneFile             `json:"reverse"`
	NamedConf    ConfSnippet          `json:"named_conf"`
}

// ApplyResponse is returned by POST /zones/apply.
type ApplyResponse struct {
	PreviewResponse
	Report *bind.ApplyReport `json:"report,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// GenerationListResponse contains stored generations, newest first.
type GenerationListResponse struct {
	Generations []database.Generation `json:"generations"`
	Count       int                   `json:"count"`
}
