package domain

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Report holds every derived attribute of a subnet. All fields are values;
// a Report is built once per calculation and never mutated.
type Report struct {
	Network     Addr
	Broadcast   Addr
	Mask        Mask
	Wildcard    Mask
	PrefixLen   int
	CIDR        string
	FirstHost   Addr
	LastHost    Addr
	HasHosts    bool
	UsableHosts uint64
	Class       string
	Scope       string
	ReverseDNS  string
	BinaryID    string
	BinaryMask  string
	Summary     string
}

// BuildReport derives the full subnet report for a validated address and
// mask. It never fails.
func BuildReport(addr Addr, mask Mask) Report {
	network := addr & Addr(mask)
	prefixLen := mask.Bits()

	rng := netipx.RangeOfPrefix(netip.PrefixFrom(network.Netip(), prefixLen))
	broadcast := addrFromNetip(rng.To())

	first, last, usable, hasHosts := hostRange(network, broadcast, prefixLen)

	r := Report{
		Network:     network,
		Broadcast:   broadcast,
		Mask:        mask,
		Wildcard:    mask.Wildcard(),
		PrefixLen:   prefixLen,
		CIDR:        fmt.Sprintf("%s/%d", network, prefixLen),
		FirstHost:   first,
		LastHost:    last,
		HasHosts:    hasHosts,
		UsableHosts: usable,
		Class:       classOf(network),
		Scope:       scopeOf(network),
		ReverseDNS:  network.ReverseDomain(),
		BinaryID:    network.Binary(),
		BinaryMask:  mask.Binary(),
	}
	r.Summary = r.summary()
	return r
}

// hostRange applies the usable-host convention: /31 networks are RFC3021
// point-to-point links with both addresses usable, /32 has none, and
// everything wider excludes the network and broadcast addresses.
func hostRange(network, broadcast Addr, prefixLen int) (first, last Addr, usable uint64, ok bool) {
	switch {
	case prefixLen == 32:
		return 0, 0, 0, false
	case prefixLen == 31:
		return network, broadcast, 2, true
	default:
		return network + 1, broadcast - 1, (uint64(1) << (32 - prefixLen)) - 2, true
	}
}

// HostRangeString renders the usable range for display, "N/A" when the
// subnet has no usable hosts.
func (r Report) HostRangeString() string {
	if !r.HasHosts {
		return "N/A"
	}
	return fmt.Sprintf("%s - %s", r.FirstHost, r.LastHost)
}

// summary is the plain-text block offered for copying, one attribute per
// line.
func (r Report) summary() string {
	return fmt.Sprintf(
		"Network Address: %s\n"+
			"Binary ID: %s\n"+
			"Subnet Mask: %s\n"+
			"Binary Subnet Mask: %s\n"+
			"Wildcard Mask: %s\n"+
			"Broadcast Address: %s\n"+
			"CIDR Notation: %s\n"+
			"Usable Host IP Range: %s\n"+
			"Number of Usable Hosts: %s\n"+
			"IP Class: %s\n"+
			"IP Type: %s\n"+
			"in-addr.arpa: %s",
		r.Network,
		r.BinaryID,
		r.Mask,
		r.BinaryMask,
		r.Wildcard,
		r.Broadcast,
		r.CIDR,
		r.HostRangeString(),
		formatCount(r.UsableHosts),
		r.Class,
		r.Scope,
		r.ReverseDNS,
	)
}
