package domain

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseExpression parses a free-form address/mask expression into an
// (Addr, Mask) pair. Accepted forms, checked in order:
//
//	A.B.C.D/N      CIDR notation
//	A.B.C.D M...   dotted quad plus contiguous subnet mask
//	A.B.C.D W...   dotted quad plus wildcard mask (complemented)
//	A.B.C.D        bare address, mask defaults to /32
func ParseExpression(s string) (Addr, Mask, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("%w: empty expression", ErrInvalidInput)
	}

	if ipPart, prefixPart, ok := strings.Cut(s, "/"); ok {
		addr, err := parseQuad(ipPart)
		if err != nil {
			return 0, 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(prefixPart))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: prefix length %q is not a number", ErrInvalidInput, prefixPart)
		}
		mask, err := PrefixMask(n)
		if err != nil {
			return 0, 0, err
		}
		return addr, mask, nil
	}

	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		addr, err := parseQuad(fields[0])
		if err != nil {
			return 0, 0, err
		}
		return addr, Mask(^uint32(0)), nil
	case 2:
		addr, err := parseQuad(fields[0])
		if err != nil {
			return 0, 0, err
		}
		quad, err := parseQuad(fields[1])
		if err != nil {
			return 0, 0, err
		}
		if mask := Mask(quad); mask.IsContiguous() {
			return addr, mask, nil
		}
		// Not a subnet mask, so treat it as a wildcard mask. The complement
		// still has to be a prefix mask for the result to describe a subnet.
		mask := Mask(quad).Wildcard()
		if !mask.IsContiguous() {
			return 0, 0, fmt.Errorf("%w: %q is neither a subnet mask nor a wildcard mask", ErrInvalidInput, fields[1])
		}
		return addr, mask, nil
	default:
		return 0, 0, fmt.Errorf("%w: expected address, address/prefix or address and mask", ErrInvalidInput)
	}
}

func parseQuad(s string) (Addr, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || !ip.Is4() {
		return 0, fmt.Errorf("%w: %q is not an IPv4 dotted quad", ErrInvalidInput, s)
	}
	return addrFromNetip(ip), nil
}
