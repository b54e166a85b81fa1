package zonegen

import "strings"

const (
	inAddrArpa     = "in-addr.arpa"
	inAddrArpaFQDN = ".in-addr.arpa."
)

// Octets splits a dotted-quad address into its four components.
// The address must already have passed ValidateIP.
func Octets(ip string) [4]string {
	var out [4]string
	copy(out[:], strings.SplitN(ip, ".", 4))
	return out
}

// ReverseZonePrefix returns the network octets in reverse order,
// e.g. 192.168.183.17 -> "183.168.192".
func ReverseZonePrefix(ip string) string {
	o := Octets(ip)
	return o[2] + "." + o[1] + "." + o[0]
}

// PTROwnerName returns the fully qualified owner name of the PTR record
// for ip, e.g. "17.183.168.192.in-addr.arpa.".
func PTROwnerName(ip string) string {
	o := Octets(ip)
	return o[3] + "." + ReverseZonePrefix(ip) + inAddrArpaFQDN
}

// ReverseZoneRegistrationName returns the zone name used in named.conf,
// e.g. "183.168.192.in-addr.arpa". It carries no trailing dot.
func ReverseZoneRegistrationName(ip string) string {
	o := Octets(ip)
	return o[2] + "." + o[1] + "." + o[0] + "." + inAddrArpa
}

// NetworkPrefix returns the first three octets in forward order,
// e.g. "192.168.183". It names the reverse zone file on disk.
func NetworkPrefix(ip string) string {
	o := Octets(ip)
	return o[0] + "." + o[1] + "." + o[2]
}

// DerivedParts bundles every address-derived string used while rendering.
type DerivedParts struct {
	ReversePrefix string `json:"reverse_prefix" yaml:"reverse_prefix"`
	PTROwner      string `json:"ptr_owner" yaml:"ptr_owner"`
	ReverseZone   string `json:"reverse_zone" yaml:"reverse_zone"`
	NetworkPrefix string `json:"network_prefix" yaml:"network_prefix"`
}

// Derive computes all derived parts for ip.
func Derive(ip string) DerivedParts {
	return DerivedParts{
		ReversePrefix: ReverseZonePrefix(ip),
		PTROwner:      PTROwnerName(ip),
		ReverseZone:   ReverseZoneRegistrationName(ip),
		NetworkPrefix: NetworkPrefix(ip),
	}
}
