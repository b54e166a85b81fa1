// Package zonegen derives BIND9 forward and reverse zone files and the
// matching named.conf.local stanzas from an IPv4 address and a domain.
//
// Everything in this package is pure: no file access, no processes, no
// global state. Callers validate with Validate (or let Generate do it) and
// hand the resulting Artifacts to a writer.
package zonegen

import "path/filepath"

// DefaultBindDir is where Debian/Ubuntu keep BIND9 configuration.
const DefaultBindDir = "/etc/bind"

// Options are the per-run behavior switches.
type Options struct {
	CreateBackups  bool `json:"create_backups" yaml:"create_backups"`
	RestartService bool `json:"restart_service" yaml:"restart_service"`
	IncludeSamples bool `json:"include_samples" yaml:"include_samples"`
}

// DefaultOptions enables every switch.
func DefaultOptions() Options {
	return Options{CreateBackups: true, RestartService: true, IncludeSamples: true}
}

// Input is one generation request.
type Input struct {
	IPAddress string  `json:"ip_address" yaml:"ip_address"`
	Domain    string  `json:"domain" yaml:"domain"`
	Options   Options `json:"options" yaml:"options"`
}

// Paths locates the three files an artifact set is written to.
type Paths struct {
	ForwardZone    string `json:"forward_zone" yaml:"forward_zone"`
	ReverseZone    string `json:"reverse_zone" yaml:"reverse_zone"`
	NamedConfLocal string `json:"named_conf_local" yaml:"named_conf_local"`
}

// All returns the paths in write order.
func (p Paths) All() []string {
	return []string{p.ForwardZone, p.ReverseZone, p.NamedConfLocal}
}

// ResolvePaths builds the target paths. An empty bindDir means DefaultBindDir;
// an empty namedConfLocal means <bindDir>/named.conf.local.
func ResolvePaths(bindDir, namedConfLocal, domain, ip string) Paths {
	if bindDir == "" {
		bindDir = DefaultBindDir
	}
	if namedConfLocal == "" {
		namedConfLocal = filepath.Join(bindDir, "named.conf.local")
	}
	return Paths{
		ForwardZone:    filepath.Join(bindDir, "db."+domain),
		ReverseZone:    filepath.Join(bindDir, "db."+NetworkPrefix(ip)),
		NamedConfLocal: namedConfLocal,
	}
}

// Artifacts is the rendered output of one run.
type Artifacts struct {
	Input       Input        `json:"input" yaml:"input"`
	Derived     DerivedParts `json:"derived" yaml:"derived"`
	Paths       Paths        `json:"paths" yaml:"paths"`
	ForwardZone string       `json:"forward_zone" yaml:"forward_zone"`
	ReverseZone string       `json:"reverse_zone" yaml:"reverse_zone"`
	ConfSnippet string       `json:"conf_snippet" yaml:"conf_snippet"`
}

// ForwardZoneName is the zone name registered for the forward zone.
func (a *Artifacts) ForwardZoneName() string { return a.Input.Domain }

// ReverseZoneName is the zone name registered for the reverse zone.
func (a *Artifacts) ReverseZoneName() string { return a.Derived.ReverseZone }

// Generator renders artifacts for a fixed BIND directory layout.
type Generator struct {
	BindDir        string
	NamedConfLocal string
}

// Generate validates in and renders all three artifacts. On a validation
// failure nothing is rendered.
func (g Generator) Generate(in Input) (*Artifacts, error) {
	if err := Validate(in.IPAddress, in.Domain); err != nil {
		return nil, err
	}

	paths := ResolvePaths(g.BindDir, g.NamedConfLocal, in.Domain, in.IPAddress)
	return &Artifacts{
		Input:       in,
		Derived:     Derive(in.IPAddress),
		Paths:       paths,
		ForwardZone: RenderForwardZone(in.IPAddress, in.Domain, in.Options.IncludeSamples),
		ReverseZone: RenderReverseZone(in.IPAddress, in.Domain, in.Options.IncludeSamples),
		ConfSnippet: RenderConfigSnippet(in.Domain, paths.ForwardZone, paths.ReverseZone, in.IPAddress),
	}, nil
}

// Generate renders with the default BIND layout.
func Generate(in Input) (*Artifacts, error) {
	return Generator{}.Generate(in)
}
