// Package privacy masks client network identifiers before they reach logs.
package privacy

import (
	"fmt"
	"net"
)

const (
	unknown = "unknown"
	invalid = "invalid"
)

// AnonymizeIP truncates an address to its network: the last octet of an IPv4
// address is zeroed (/24) and an IPv6 address keeps only its /48 prefix.
// Empty input yields "unknown" and unparseable input yields "invalid".
func AnonymizeIP(ip string) string {
	if ip == "" || ip == unknown {
		return unknown
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return invalid
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// AnonymizeAddr is AnonymizeIP for an http.Request RemoteAddr, which usually
// carries a port. The port is dropped.
func AnonymizeAddr(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return AnonymizeIP(remoteAddr)
	}
	return AnonymizeIP(host)
}
