package bind

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jroosing/autodns/internal/zone"
	"github.com/spf13/afero"
)

// Checker verifies written zone files and the nameserver configuration.
type Checker interface {
	CheckZone(ctx context.Context, zoneName, path string) error
	CheckConf(ctx context.Context) error
}

// NamedChecker shells out to named-checkzone and named-checkconf.
type NamedChecker struct {
	CheckZoneCommand string
	CheckConfCommand string
	Runner           Runner
}

func (c *NamedChecker) runner() Runner {
	if c.Runner == nil {
		return ExecRunner{}
	}
	return c.Runner
}

func (c *NamedChecker) CheckZone(ctx context.Context, zoneName, path string) error {
	out, err := c.runner().Run(ctx, c.CheckZoneCommand, zoneName, path)
	if err != nil {
		return &CheckError{Zone: zoneName, Path: path, Output: strings.TrimSpace(out), Err: err}
	}
	return nil
}

func (c *NamedChecker) CheckConf(ctx context.Context) error {
	out, err := c.runner().Run(ctx, c.CheckConfCommand)
	if err != nil {
		return &CheckError{Output: strings.TrimSpace(out), Err: err}
	}
	return nil
}

// BuiltinChecker verifies files without BIND tools installed. Zones must
// parse and carry an SOA and NS at the apex; the config file must only
// reference zone files that exist and must not register a zone twice.
type BuiltinChecker struct {
	Fs             afero.Fs
	NamedConfLocal string
}

func (c *BuiltinChecker) CheckZone(_ context.Context, zoneName, path string) error {
	fail := func(err error) error {
		return &CheckError{Zone: zoneName, Path: path, Err: err}
	}

	b, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return fail(err)
	}
	z, err := zone.ParseText(string(b), zoneName)
	if err != nil {
		return fail(err)
	}
	if z.SOA() == nil {
		return fail(errors.New("no SOA record"))
	}
	if len(z.Lookup(z.Origin, "NS")) == 0 {
		return fail(errors.New("no NS record at zone apex"))
	}
	return nil
}

var zoneStanzaRE = regexp.MustCompile(`zone\s+"([^"]+)"\s*\{[^}]*?file\s+"([^"]+)"\s*;[^}]*\}\s*;`)

func (c *BuiltinChecker) CheckConf(_ context.Context) error {
	b, err := afero.ReadFile(c.Fs, c.NamedConfLocal)
	if err != nil {
		return &CheckError{Path: c.NamedConfLocal, Err: err}
	}
	text := string(b)
	if strings.Count(text, "{") != strings.Count(text, "}") {
		return &CheckError{Path: c.NamedConfLocal, Err: errors.New("unbalanced braces")}
	}

	seen := make(map[string]bool)
	for _, m := range zoneStanzaRE.FindAllStringSubmatch(text, -1) {
		name, file := strings.ToLower(strings.TrimSuffix(m[1], ".")), m[2]
		if seen[name] {
			return &CheckError{Path: c.NamedConfLocal, Err: fmt.Errorf("zone %q already defined", m[1])}
		}
		seen[name] = true

		exists, err := afero.Exists(c.Fs, file)
		if err != nil {
			return &CheckError{Path: c.NamedConfLocal, Err: err}
		}
		if !exists {
			return &CheckError{Path: c.NamedConfLocal, Err: fmt.Errorf("zone %q: file %s not found", m[1], file)}
		}
	}
	return nil
}

// NoopChecker accepts everything.
type NoopChecker struct{}

func (NoopChecker) CheckZone(context.Context, string, string) error { return nil }
func (NoopChecker) CheckConf(context.Context) error                 { return nil }
