package domain

import "net/netip"

const (
	ScopePrivate = "Private"
	ScopePublic  = "Public"
)

// privateRanges are evaluated top to bottom; the first match wins. Besides
// RFC1918, loopback and link-local this covers the special-purpose blocks
// the calculator buckets as non-public: this-network, CGN, documentation,
// benchmarking, multicast and the reserved class E space.
var privateRanges = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("224.0.0.0/4"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

// classOf returns the legacy address class (A-E) from the leading bits of
// the first octet. Display-only; independent of the mask.
func classOf(a Addr) string {
	switch first := a.Octets()[0]; {
	case first < 128:
		return "A"
	case first < 192:
		return "B"
	case first < 224:
		return "C"
	case first < 240:
		return "D"
	default:
		return "E"
	}
}

func scopeOf(a Addr) string {
	ip := a.Netip()
	for _, p := range privateRanges {
		if p.Contains(ip) {
			return ScopePrivate
		}
	}
	return ScopePublic
}
