// Package zone parses rendered BIND zone text back into records so that
// generated output can be inspected and checked without external tools.
package zone

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/miekg/dns"
)

// Record is one resource record in presentation form.
type Record struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Class string `json:"class"`
	TTL   uint32 `json:"ttl"`
	Value string `json:"value"`
}

// SOA holds the parsed start-of-authority fields.
type SOA struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

type Zone struct {
	Origin     string
	DefaultTTL uint32
	Records    []Record

	soa       *SOA
	nameIndex map[string][]int // normalized name -> indices into Records
}

// LoadFile parses the zone file at path relative to origin.
func LoadFile(path, origin string) (*Zone, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(string(b), origin, path)
}

// ParseText parses zone text. Relative owner names and '@' resolve against origin.
func ParseText(text, origin string) (*Zone, error) {
	return parse(text, origin, "")
}

func parse(text, origin, file string) (*Zone, error) {
	if strings.TrimSpace(origin) == "" {
		return nil, errors.New("zone origin is required")
	}
	origin = dns.Fqdn(origin)

	zp := dns.NewZoneParser(strings.NewReader(text), origin, file)
	z := &Zone{Origin: origin, Records: make([]Record, 0)}

	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		hdr := rr.Header()
		if z.DefaultTTL == 0 {
			z.DefaultTTL = hdr.Ttl
		}
		if soa, isSOA := rr.(*dns.SOA); isSOA && z.soa == nil {
			z.soa = &SOA{
				MName:   soa.Ns,
				RName:   soa.Mbox,
				Serial:  soa.Serial,
				Refresh: soa.Refresh,
				Retry:   soa.Retry,
				Expire:  soa.Expire,
				Minimum: soa.Minttl,
			}
		}
		z.Records = append(z.Records, Record{
			Name:  hdr.Name,
			Type:  dns.TypeToString[hdr.Rrtype],
			Class: dns.ClassToString[hdr.Class],
			TTL:   hdr.Ttl,
			Value: rdataString(rr),
		})
	}
	if err := zp.Err(); err != nil {
		return nil, fmt.Errorf("parse zone %s: %w", origin, err)
	}

	z.buildIndex()
	return z, nil
}

// rdataString strips the header from the presentation form of rr.
func rdataString(rr dns.RR) string {
	full := rr.String()
	hdr := rr.Header().String()
	return strings.TrimSpace(strings.TrimPrefix(full, hdr))
}

func (z *Zone) buildIndex() {
	z.nameIndex = make(map[string][]int, len(z.Records))
	for i, rr := range z.Records {
		key := normalize(rr.Name)
		z.nameIndex[key] = append(z.nameIndex[key], i)
	}
}

func normalize(name string) string {
	return strings.ToLower(dns.Fqdn(name))
}

// ContainsName reports whether qname is at or below the zone origin.
func (z *Zone) ContainsName(qname string) bool {
	return dns.IsSubDomain(normalize(z.Origin), normalize(qname))
}

// NameExists checks if any records exist for the given name.
func (z *Zone) NameExists(qname string) bool {
	return len(z.nameIndex[normalize(qname)]) > 0
}

// Lookup returns the records at qname with type qtype ("A", "PTR", ...).
func (z *Zone) Lookup(qname, qtype string) []Record {
	indices := z.nameIndex[normalize(qname)]
	if len(indices) == 0 {
		return nil
	}

	out := make([]Record, 0, len(indices))
	for _, idx := range indices {
		rr := z.Records[idx]
		if strings.EqualFold(rr.Type, qtype) {
			out = append(out, rr)
		}
	}
	return out
}

// SOA returns the zone's SOA, or nil if the text had none.
func (z *Zone) SOA() *SOA {
	return z.soa
}

// Sorted returns a copy of the records ordered by name, type, then value.
func (z *Zone) Sorted() []Record {
	recs := append([]Record(nil), z.Records...)
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Value < b.Value
	})
	return recs
}

// DiscoverZoneFiles returns the sorted db.* files in dir.
func DiscoverZoneFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "db.") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
