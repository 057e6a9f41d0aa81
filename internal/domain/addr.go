package domain

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strings"
)

// Addr is an IPv4 address as a 32-bit unsigned integer, network byte order.
type Addr uint32

// Mask is an IPv4 subnet mask. A valid mask is a contiguous run of 1-bits
// followed by a contiguous run of 0-bits.
type Mask uint32

func addrFromNetip(ip netip.Addr) Addr {
	b := ip.As4()
	return Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (a Addr) Octets() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

func (a Addr) String() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// Binary renders the address as dotted octets in base 2,
// e.g. "11000000.10101000.00000001.00000000".
func (a Addr) Binary() string {
	o := a.Octets()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", o[0], o[1], o[2], o[3])
}

// ReverseDomain is the in-addr.arpa lookup name for the address.
func (a Addr) ReverseDomain() string {
	o := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa", o[3], o[2], o[1], o[0])
}

// PrefixMask returns the mask whose leading n bits are set.
func PrefixMask(n int) (Mask, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: prefix length %d out of range", ErrInvalidInput, n)
	}
	if n == 0 {
		return 0, nil
	}
	return Mask(^uint32(0) << (32 - n)), nil
}

// Bits is the prefix length of the mask.
func (m Mask) Bits() int {
	return bits.OnesCount32(uint32(m))
}

// IsContiguous reports whether the set bits form a single run from the
// most significant bit.
func (m Mask) IsContiguous() bool {
	p, err := PrefixMask(m.Bits())
	return err == nil && p == m
}

// Wildcard is the bitwise complement of the mask.
func (m Mask) Wildcard() Mask {
	return ^m
}

func (m Mask) String() string {
	return Addr(m).String()
}

func (m Mask) Binary() string {
	return Addr(m).Binary()
}

// formatCount renders n with thousands separators, e.g. "65,536".
func formatCount(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
