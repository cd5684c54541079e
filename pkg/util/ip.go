package util

import "net"

// HostMask is the all-ones IPv4 netmask. A route whose destination carries
// this mask (or no mask at all) targets a single host.
const HostMask = "255.255.255.255"

// IsHostMask reports whether mask selects a single host: the all-ones
// mask or an absent (empty) mask.
func IsHostMask(mask string) bool {
	return mask == "" || mask == HostMask
}

// IsValidIPv4 checks if a string is a valid IPv4 address
func IsValidIPv4(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	return ip != nil && ip.To4() != nil
}

// IsValidNetmask checks if a string is a valid dotted-quad IPv4 netmask
// (contiguous ones followed by zeros).
func IsValidNetmask(mask string) bool {
	ip := net.ParseIP(mask)
	if ip == nil {
		return false
	}
	v4 := ip.To4()
	if v4 == nil {
		return false
	}
	// Size returns (0, 0) for non-contiguous masks.
	_, bits := net.IPv4Mask(v4[0], v4[1], v4[2], v4[3]).Size()
	return bits == 32
}
