package zonegen

import (
	"strconv"
	"strings"
)

// ValidateIP checks that ip is a dotted quad with every octet in 0..255.
func ValidateIP(ip string) error {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return &ValidationError{Kind: ErrInvalidAddress, Value: ip}
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return &ValidationError{Kind: ErrInvalidAddress, Value: ip}
		}
		// Leading zeros are rejected, as net/netip does.
		if len(p) > 1 && p[0] == '0' {
			return &ValidationError{Kind: ErrInvalidAddress, Value: ip}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 || strings.ContainsAny(p, "+-") {
			return &ValidationError{Kind: ErrInvalidAddress, Value: ip}
		}
	}
	return nil
}

// ValidateDomain performs the deliberately loose domain check: non-empty
// and containing at least one dot.
func ValidateDomain(domain string) error {
	if domain == "" || !strings.Contains(domain, ".") {
		return &ValidationError{Kind: ErrInvalidDomain, Value: domain}
	}
	return nil
}

// Validate runs the address check, then the domain check.
func Validate(ip, domain string) error {
	if err := ValidateIP(ip); err != nil {
		return err
	}
	return ValidateDomain(domain)
}
