package util

import (
	"fmt"
	"net"
	"strings"
)

// IPVersion returns 4 or 6 for an IP address, with or without a CIDR suffix.
// Returns 0 for anything unparseable.
func IPVersion(s string) int {
	host := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		host = s[:i]
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return 0
	}
	if ip.To4() != nil {
		return 4
	}
	return 6
}

// ValidateCIDR checks that s is valid CIDR notation of the given IP version.
func ValidateCIDR(s string, version int) error {
	ip, _, err := net.ParseCIDR(s)
	if err != nil {
		return fmt.Errorf("invalid CIDR notation: %s", s)
	}
	if v := versionOf(ip); v != version {
		return fmt.Errorf("address %s is IPv%d, expected IPv%d", s, v, version)
	}
	return nil
}

// ValidateIP checks that s is a bare IP address of the given IP version.
func ValidateIP(s string, version int) error {
	ip := net.ParseIP(s)
	if ip == nil {
		return fmt.Errorf("invalid IP address: %s", s)
	}
	if v := versionOf(ip); v != version {
		return fmt.Errorf("address %s is IPv%d, expected IPv%d", s, v, version)
	}
	return nil
}

func versionOf(ip net.IP) int {
	if ip.To4() != nil {
		return 4
	}
	return 6
}

// FilterByVersion returns the addresses whose family matches version.
// Unparseable entries are kept when keepUnknown is set.
func FilterByVersion(addrs []string, version int, keepUnknown bool) []string {
	var out []string
	for _, a := range addrs {
		v := IPVersion(a)
		if v == version || (v == 0 && keepUnknown) {
			out = append(out, a)
		}
	}
	return out
}

// ExcludeVersion returns the addresses whose family does not match version.
func ExcludeVersion(addrs []string, version int) []string {
	var out []string
	for _, a := range addrs {
		if IPVersion(a) != version {
			out = append(out, a)
		}
	}
	return out
}
