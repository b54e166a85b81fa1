package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jroosing/autodns/internal/zone"
)

func main() {
	origin := flag.String("origin", "", "Zone origin (default: derived from a db.<name> file name)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: print-zone [-origin name] path/to/zonefile\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	name := *origin
	if name == "" {
		name = originFromPath(path)
	}
	if name == "" {
		fmt.Fprintf(os.Stderr, "cannot derive origin from %s; pass -origin\n", path)
		os.Exit(2)
	}

	z, err := zone.LoadFile(path, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load zone: %v\n", err)
		os.Exit(1)
	}
	printZone(os.Stdout, z)
}

// originFromPath maps db.<domain> to <domain> and db.<a.b.c> to c.b.a.in-addr.arpa.
func originFromPath(path string) string {
	base := filepath.Base(path)
	name, ok := strings.CutPrefix(base, "db.")
	if !ok || name == "" {
		return ""
	}
	parts := strings.Split(name, ".")
	if len(parts) == 3 && allDigits(parts) {
		return parts[2] + "." + parts[1] + "." + parts[0] + ".in-addr.arpa"
	}
	return name
}

func allDigits(parts []string) bool {
	for _, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return false
		}
	}
	return true
}

func printZone(w io.Writer, z *zone.Zone) {
	fmt.Fprintf(w, "ORIGIN: %s\n", z.Origin)
	fmt.Fprintf(w, "DEFAULT_TTL: %d\n", z.DefaultTTL)
	if soa := z.SOA(); soa != nil {
		fmt.Fprintf(w, "SOA: %s %s serial=%d refresh=%d retry=%d expire=%d minimum=%d\n",
			soa.MName, soa.RName, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.Minimum)
	}
	fmt.Fprintln(w, "RECORDS:")
	for _, rr := range z.Sorted() {
		fmt.Fprintf(w, "  %s %d %s %s %s\n", rr.Name, rr.TTL, rr.Class, rr.Type, rr.Value)
	}
}
