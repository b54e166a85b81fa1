package zonegen

import (
	"fmt"
	"strings"
)

// SOA timer values of the deployed zone format. Serial is fixed; it is not
// bumped between runs.
const (
	DefaultTTL       = 604800
	SOASerial        = 2
	SOARefresh       = 604800
	SOARetry         = 86400
	SOAExpire        = 2419200
	SOANegativeCache = 604800
)

// soaPreamble writes the $TTL directive, the SOA record and the apex NS record.
// Both zones share it and both name the forward domain.
func soaPreamble(b *strings.Builder, domain string) {
	fmt.Fprintf(b, "$TTL    %d\n", DefaultTTL)
	fmt.Fprintf(b, "@       IN      SOA     ns.%s. root.%s. (\n", domain, domain)
	fmt.Fprintf(b, "%31d         ; Serial\n", SOASerial)
	fmt.Fprintf(b, "%31d         ; Refresh\n", SOARefresh)
	fmt.Fprintf(b, "%31d         ; Retry\n", SOARetry)
	fmt.Fprintf(b, "%31d         ; Expire\n", SOAExpire)
	fmt.Fprintf(b, "%31d )       ; Negative Cache TTL\n", SOANegativeCache)
	b.WriteString(";\n")
	fmt.Fprintf(b, "@       IN      NS      ns.%s.\n", domain)
}

// RenderForwardZone renders the zone file for domain.
func RenderForwardZone(ip, domain string, includeSamples bool) string {
	var b strings.Builder
	soaPreamble(&b, domain)
	fmt.Fprintf(&b, "ns      IN      A       %s\n", ip)
	fmt.Fprintf(&b, "@       IN      A       %s\n", ip)

	if includeSamples {
		fmt.Fprintf(&b, "www     IN      A       %s\n", ip)
		fmt.Fprintf(&b, "mail    IN      A       %s\n", ip)
		fmt.Fprintf(&b, "webmail IN      CNAME   mail.%s.\n", domain)
	}
	return b.String()
}

// RenderReverseZone renders the in-addr.arpa zone holding the PTR records for ip.
// With samples enabled the same owner name gets three additional PTR records.
func RenderReverseZone(ip, domain string, includeSamples bool) string {
	owner := PTROwnerName(ip)

	var b strings.Builder
	soaPreamble(&b, domain)
	fmt.Fprintf(&b, "%s  IN      PTR     %s.\n", owner, domain)

	if includeSamples {
		for _, host := range []string{"ns", "www", "mail"} {
			fmt.Fprintf(&b, "%s  IN      PTR     %s.%s.\n", owner, host, domain)
		}
	}
	return b.String()
}

// RenderConfigSnippet renders the two master zone stanzas appended to named.conf.local.
func RenderConfigSnippet(domain, forwardPath, reversePath, ip string) string {
	var b strings.Builder
	b.WriteString("\n")
	writeMasterStanza(&b, domain, forwardPath)
	b.WriteString("\n")
	writeMasterStanza(&b, ReverseZoneRegistrationName(ip), reversePath)
	return b.String()
}

func writeMasterStanza(b *strings.Builder, zoneName, path string) {
	fmt.Fprintf(b, "zone \"%s\" {\n", zoneName)
	b.WriteString("    type master;\n")
	fmt.Fprintf(b, "    file \"%s\";\n", path)
	b.WriteString("};\n")
}
